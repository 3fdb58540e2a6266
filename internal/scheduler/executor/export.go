package executor

import (
	"context"
	"errors"

	"github.com/linskybing/forms-go/internal/domain/job"
	"github.com/linskybing/forms-go/internal/events"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/storage"
	"go.uber.org/zap"
)

// ExportExecutor runs export jobs batch by batch.
type ExportExecutor struct {
	exports   export.ExportStore
	runner    *export.Runner
	jobs      job.Repository
	mirror    storage.Mirror
	publisher events.Publisher
	log       *zap.Logger
}

func NewExportExecutor(exports export.ExportStore, runner *export.Runner, jobs job.Repository, mirror storage.Mirror, publisher events.Publisher, log *zap.Logger) *ExportExecutor {
	if log == nil {
		log = zap.NewNop()
	}
	if mirror == nil {
		mirror = storage.NoopMirror{}
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &ExportExecutor{
		exports:   exports,
		runner:    runner,
		jobs:      jobs,
		mirror:    mirror,
		publisher: publisher,
		log:       log,
	}
}

// jobProgress stores batch progress on the job row.
type jobProgress struct {
	jobs job.Repository
	id   uint
}

func (p jobProgress) SetProgress(ctx context.Context, fraction float64) error {
	if p.jobs == nil {
		return nil
	}
	return p.jobs.UpdateProgress(ctx, p.id, fraction)
}

func (e *ExportExecutor) Execute(ctx context.Context, j *job.Job) error {
	exportID := j.Payload.Data().ExportID
	if exportID == 0 {
		return payloadError(j)
	}
	opts, err := e.runner.Options(ctx)
	if err != nil {
		return err
	}
	ej, err := export.NewJob(ctx, e.exports, e.runner, exportID, opts.BatchSize, e.log)
	if err != nil {
		return Permanent(err)
	}

	err = ej.Execute(ctx, jobProgress{jobs: e.jobs, id: j.ID})
	exp := ej.Export()
	if err != nil {
		e.publish(ctx, events.Event{
			Type:     events.TypeExportFailed,
			FormID:   exp.FormID,
			EntityID: exp.ID,
			Data:     map[string]any{"error": err.Error()},
		})
		if errors.Is(err, export.ErrNoSubmissions) || errors.Is(err, export.ErrNoColumns) || errors.Is(err, export.ErrNoFile) {
			return Permanent(err)
		}
		return err
	}

	if _, err := e.mirror.Upload(ctx, exp.File); err != nil {
		e.log.Warn("export mirror failed", zap.Uint("export_id", exp.ID), zap.Error(err))
	}
	e.publish(ctx, events.Event{
		Type:     events.TypeExportFinished,
		FormID:   exp.FormID,
		EntityID: exp.ID,
		Data:     map[string]any{"resolved": exp.Resolved, "total": exp.Total},
	})
	return nil
}

func (e *ExportExecutor) publish(ctx context.Context, ev events.Event) {
	if err := e.publisher.Publish(ctx, ev); err != nil {
		e.log.Warn("event not published", zap.String("type", ev.Type), zap.Error(err))
	}
}
