package export

import (
	"context"
	"errors"
	"fmt"

	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"go.uber.org/zap"
)

const DefaultBatchSize = 50

var ErrExportNotFound = errors.New("export not found")

// ProgressSink receives the completed fraction after every batch.
type ProgressSink interface {
	SetProgress(ctx context.Context, fraction float64) error
}

// Job drives a queued export through the Runner one batch at a time.
type Job struct {
	exports   ExportStore
	runner    *Runner
	export    *exportdomain.Export
	batchSize int
	log       *zap.Logger
}

func NewJob(ctx context.Context, exports ExportStore, runner *Runner, exportID uint, batchSize int, log *zap.Logger) (*Job, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	exp, err := exports.FindByID(ctx, exportID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %d: %v", ErrExportNotFound, exportID, err)
	}
	return &Job{
		exports:   exports,
		runner:    runner,
		export:    exp,
		batchSize: batchSize,
		log:       log.With(zap.Uint("export_id", exportID)),
	}, nil
}

func (j *Job) Export() *exportdomain.Export {
	return j.export
}

// Steps is the number of batches needed to cover the export total.
func (j *Job) Steps() int {
	if j.export.Total <= 0 {
		return 0
	}
	return (j.export.Total + j.batchSize - 1) / j.batchSize
}

func (j *Job) Execute(ctx context.Context, progress ProgressSink) error {
	steps := j.Steps()
	if steps == 0 {
		return ErrNoSubmissions
	}
	j.log.Info("export started", zap.Int("total", j.export.Total), zap.Int("steps", steps))

	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		page := &Page{Limit: j.batchSize, Offset: i * j.batchSize}
		err := j.runner.Run(ctx, j.export, page)
		if errors.Is(err, ErrNoSubmissions) && i > 0 {
			// submissions removed since the export was counted
			j.log.Warn("export ended early", zap.Int("step", i+1))
			break
		}
		if err != nil {
			return fmt.Errorf("export batch %d/%d: %w", i+1, steps, err)
		}
		if progress != nil {
			if err := progress.SetProgress(ctx, float64(i+1)/float64(steps)); err != nil {
				j.log.Warn("progress update failed", zap.Error(err))
			}
		}
	}

	if err := j.exports.UpdateColumns(ctx, j.export.ID, map[string]any{"finished": true}); err != nil {
		return fmt.Errorf("mark export finished: %w", err)
	}
	j.export.Finished = true
	if progress != nil {
		_ = progress.SetProgress(ctx, 1)
	}
	j.log.Info("export finished", zap.Int("resolved", j.export.Resolved))
	return nil
}
