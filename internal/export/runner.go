package export

import (
	"context"
	"errors"
	"fmt"

	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/submission"
	"go.uber.org/zap"
)

var (
	ErrNoSubmissions = errors.New("no submissions exists (with given criteria)")
	ErrNoColumns     = errors.New("no fields selected for export")
	ErrNoFile        = errors.New("export has no output file")
)

// Query selects the submissions of one export batch.
type Query struct {
	FormID uint
	// IDs, when set, takes precedence over Filter.
	IDs    []uint
	Filter Filter
	// MaxID bounds the result to rows visible when the export was created.
	MaxID  uint
	Limit  int
	Offset int
}

type FormSource interface {
	FindWithFields(ctx context.Context, id uint) (*form.Form, error)
}

// SubmissionSource returns submissions newest first.
type SubmissionSource interface {
	FindSubmissions(ctx context.Context, q Query) ([]submission.Submission, error)
	CountSubmissions(ctx context.Context, q Query) (int64, error)
}

type ExportStore interface {
	FindByID(ctx context.Context, id uint) (*exportdomain.Export, error)
	UpdateColumns(ctx context.Context, id uint, values map[string]any) error
}

type Options struct {
	Delimiter rune
	Yes       string
	No        string
	Layout    LayoutOptions
	BatchSize int
}

// OptionsFunc resolves the current export settings.
type OptionsFunc func(ctx context.Context) (Options, error)

type Page struct {
	Limit  int
	Offset int
}

// QueryFor builds the submission query for an export.
func QueryFor(exp *exportdomain.Export, f *form.Form) Query {
	q := Query{FormID: exp.FormID, MaxID: exp.SnapshotID}
	if len(exp.SubmissionIDs) > 0 {
		q.IDs = append([]uint(nil), exp.SubmissionIDs...)
		return q
	}
	q.Filter = BuildFilter(f.Fields, exp.Criteria.Data())
	return q
}

// Runner writes export batches to the export's file.
type Runner struct {
	forms       FormSource
	submissions SubmissionSource
	exports     ExportStore
	options     OptionsFunc
	log         *zap.Logger
}

func NewRunner(forms FormSource, submissions SubmissionSource, exports ExportStore, options OptionsFunc, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		forms:       forms,
		submissions: submissions,
		exports:     exports,
		options:     options,
		log:         log,
	}
}

// Run writes one page of submissions, or all of them when page is nil. The
// first page recreates the file with a header; later pages append. Nothing is
// written when the page selects no submissions.
func (r *Runner) Run(ctx context.Context, exp *exportdomain.Export, page *Page) error {
	if exp.File == "" {
		return ErrNoFile
	}
	opts, err := r.options(ctx)
	if err != nil {
		return fmt.Errorf("load export options: %w", err)
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ';'
	}
	f, err := r.forms.FindWithFields(ctx, exp.FormID)
	if err != nil {
		return fmt.Errorf("load form %d: %w", exp.FormID, err)
	}
	cols := SelectColumns(f, exp.Mapping.Data())
	if len(cols) == 0 {
		return ErrNoColumns
	}

	q := QueryFor(exp, f)
	if page != nil {
		q.Limit = page.Limit
		q.Offset = page.Offset
	}
	subs, err := r.submissions.FindSubmissions(ctx, q)
	if err != nil {
		return fmt.Errorf("load submissions: %w", err)
	}
	if len(subs) == 0 {
		return ErrNoSubmissions
	}

	layout := NewLayout(cols, NewFormatter(opts.Yes, opts.No), opts.Layout)
	first := page == nil || page.Offset == 0
	var w rowWriter
	if first {
		w, err = createWriter(exp.File, exp.Format, opts.Delimiter, layout.Header())
		exp.Resolved = 0
	} else {
		w, err = appendWriter(exp.File, exp.Format, opts.Delimiter)
	}
	if err != nil {
		return err
	}
	for _, s := range subs {
		if err := w.WriteRows(layout.Rows(s)); err != nil {
			_ = w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	exp.Resolved += len(subs)
	if exp.Resolved > exp.Total {
		exp.Resolved = exp.Total
	}
	r.log.Debug("export batch written",
		zap.Uint("export_id", exp.ID),
		zap.Int("rows", len(subs)),
		zap.Int("resolved", exp.Resolved),
		zap.Int("total", exp.Total),
	)
	if exp.ID == 0 {
		return nil
	}
	return r.exports.UpdateColumns(ctx, exp.ID, map[string]any{"resolved": exp.Resolved})
}

// Options resolves the current settings.
func (r *Runner) Options(ctx context.Context) (Options, error) {
	return r.options(ctx)
}
