package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jobsvc "github.com/linskybing/forms-go/internal/application/job"
	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/job"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/repository"
	"github.com/linskybing/forms-go/internal/storage"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var (
	ErrExportNotFinished = errors.New("export is not finished yet")
	ErrExportFileMissing = errors.New("export file no longer exists")
)

// ExportFiles is the part of export.FileStore the service needs.
type ExportFiles interface {
	Reserve(handle, ext string) (string, error)
	Temp(ext string) (string, error)
	Remove(path string) error
}

// SaveResult describes a saved export. Temporary is set for exports run
// right away: Path then points at a scratch file the caller serves and removes.
type SaveResult struct {
	Export    *exportdomain.Export `json:"export"`
	Job       *job.Job             `json:"job,omitempty"`
	Path      string               `json:"-"`
	Temporary bool                 `json:"temporary"`
}

// ExportStatus is an export with the state of its latest job.
type ExportStatus struct {
	Export   *exportdomain.Export `json:"export"`
	Job      *job.Job             `json:"job,omitempty"`
	Progress float64              `json:"progress"`
}

type ExportService struct {
	Repos  *repository.Repos
	runner *export.Runner
	files  ExportFiles
	jobs   *jobsvc.Service
	mirror storage.Mirror
	log    *zap.Logger
}

func NewExportService(repos *repository.Repos, runner *export.Runner, files ExportFiles, jobs *jobsvc.Service, mirror storage.Mirror, log *zap.Logger) *ExportService {
	if mirror == nil {
		mirror = storage.NoopMirror{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportService{
		Repos:  repos,
		runner: runner,
		files:  files,
		jobs:   jobs,
		mirror: mirror,
		log:    log,
	}
}

func (s *ExportService) List(ctx context.Context, formID *uint) ([]exportdomain.Export, error) {
	return s.Repos.Export.List(ctx, formID)
}

func (s *ExportService) Get(ctx context.Context, id uint) (*exportdomain.Export, error) {
	exp, err := s.Repos.Export.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrExportNotFound)
	}
	return exp, nil
}

// Status returns the export with its latest job.
func (s *ExportService) Status(ctx context.Context, id uint) (*ExportStatus, error) {
	exp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	st := &ExportStatus{Export: exp, Progress: exp.Progress()}
	if exp.Finished {
		st.Progress = 1
	}
	if s.jobs != nil {
		j, err := s.jobs.LatestForExport(ctx, id)
		if err != nil {
			return nil, err
		}
		st.Job = j
	}
	return st, nil
}

func (s *ExportService) loadForm(ctx context.Context, id uint) (*form.Form, error) {
	f, err := s.Repos.Form.FindWithFields(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrFormNotFound)
	}
	return f, nil
}

// count fixes the snapshot bound and total of an export.
func (s *ExportService) count(ctx context.Context, exp *exportdomain.Export, f *form.Form) error {
	snapshot, err := s.Repos.Submission.MaxSubmissionID(ctx, f.ID)
	if err != nil {
		return err
	}
	exp.SnapshotID = snapshot
	total, err := s.Repos.Submission.CountSubmissions(ctx, export.QueryFor(exp, f))
	if err != nil {
		return err
	}
	if total == 0 {
		return export.ErrNoSubmissions
	}
	exp.Total = int(total)
	exp.Resolved = 0
	return nil
}

// Save creates an export. Exports started right away are written at once to
// a scratch file and not stored; the others are stored and queued.
func (s *ExportService) Save(ctx context.Context, input exportdomain.SaveExportDTO) (*SaveResult, error) {
	f, err := s.loadForm(ctx, input.FormID)
	if err != nil {
		return nil, err
	}
	format := strings.ToLower(input.Format)
	if format == "" {
		format = exportdomain.FormatCSV
	}
	if format != exportdomain.FormatCSV && format != exportdomain.FormatXLSX {
		return nil, invalid("unknown export format %q", input.Format)
	}

	exp := &exportdomain.Export{
		FormID:         f.ID,
		Name:           strings.TrimSpace(input.Name),
		Format:         format,
		SubmissionIDs:  datatypes.NewJSONSlice(input.SubmissionIDs),
		Criteria:       datatypes.NewJSONType(input.Criteria),
		Mapping:        datatypes.NewJSONType(input.Mapping),
		StartRightAway: input.StartRightAway,
	}
	if len(input.Mapping) > 0 && len(export.SelectColumns(f, input.Mapping)) == 0 {
		return nil, export.ErrNoColumns
	}
	if err := s.count(ctx, exp, f); err != nil {
		return nil, err
	}

	if exp.StartRightAway {
		return s.runNow(ctx, exp)
	}

	path, err := s.files.Reserve(f.Handle, exp.Extension())
	if err != nil {
		return nil, err
	}
	exp.File = path
	var j *job.Job
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Export.Create(ctx, exp); err != nil {
			return err
		}
		var err error
		j, err = s.enqueue(ctx, r, exp)
		return err
	})
	if err != nil {
		_ = s.files.Remove(path)
		return nil, err
	}
	s.wake()
	return &SaveResult{Export: exp, Job: j}, nil
}

// ExportSubmissions writes the given submissions of a form right away.
func (s *ExportService) ExportSubmissions(ctx context.Context, formID uint, ids []uint, format string) (*SaveResult, error) {
	if len(ids) == 0 {
		return nil, invalid("no submissions selected")
	}
	return s.Save(ctx, exportdomain.SaveExportDTO{
		FormID:         formID,
		Name:           "Submissions",
		Format:         format,
		SubmissionIDs:  ids,
		StartRightAway: true,
	})
}

func (s *ExportService) runNow(ctx context.Context, exp *exportdomain.Export) (*SaveResult, error) {
	path, err := s.files.Temp(exp.Extension())
	if err != nil {
		return nil, err
	}
	exp.File = path
	if err := s.runner.Run(ctx, exp, nil); err != nil {
		_ = s.files.Remove(path)
		return nil, err
	}
	exp.Finished = true
	return &SaveResult{Export: exp, Path: path, Temporary: true}, nil
}

// enqueue creates the export job through the repos of the running
// transaction. The worker is woken by wake once the transaction commits.
func (s *ExportService) enqueue(ctx context.Context, r *repository.Repos, exp *exportdomain.Export) (*job.Job, error) {
	if s.jobs == nil {
		return nil, nil
	}
	j, err := s.jobs.WithRepo(r.Job).EnqueueExport(ctx, exp.ID)
	if err != nil {
		return nil, fmt.Errorf("queue export %d: %w", exp.ID, err)
	}
	return j, nil
}

func (s *ExportService) cancelJobs(ctx context.Context, r *repository.Repos, exportID uint) error {
	if s.jobs == nil {
		return nil
	}
	return s.jobs.WithRepo(r.Job).CancelForExport(ctx, exportID)
}

func (s *ExportService) wake() {
	if s.jobs != nil {
		s.jobs.Notify()
	}
}

// Restart recounts an export, writes it to a new file and queues it again.
// The previous file is kept until the restarted export is stored.
func (s *ExportService) Restart(ctx context.Context, id uint) (*SaveResult, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f, err := s.loadForm(ctx, current.FormID)
	if err != nil {
		return nil, err
	}
	exp := *current
	if err := s.count(ctx, &exp, f); err != nil {
		return nil, err
	}
	path, err := s.files.Reserve(f.Handle, exp.Extension())
	if err != nil {
		return nil, err
	}
	exp.File = path
	exp.Finished = false

	var j *job.Job
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := s.cancelJobs(ctx, r, exp.ID); err != nil {
			return err
		}
		if err := r.Export.Save(ctx, &exp); err != nil {
			return err
		}
		var err error
		j, err = s.enqueue(ctx, r, &exp)
		return err
	})
	if err != nil {
		_ = s.files.Remove(path)
		return nil, err
	}
	s.removeArtifacts(ctx, current.ID, current.File)
	s.wake()
	return &SaveResult{Export: &exp, Job: j}, nil
}

// Delete removes the export, its queued jobs and its file.
func (s *ExportService) Delete(ctx context.Context, id uint) error {
	exp, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := s.cancelJobs(ctx, r, id); err != nil {
			return err
		}
		return r.Export.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.removeArtifacts(ctx, exp.ID, exp.File)
	return nil
}

// Download returns the file of a finished export and the name to serve it as.
func (s *ExportService) Download(ctx context.Context, id uint) (string, string, error) {
	exp, err := s.Get(ctx, id)
	if err != nil {
		return "", "", err
	}
	if !exp.Finished {
		return "", "", ErrExportNotFinished
	}
	if exp.File == "" {
		return "", "", ErrExportFileMissing
	}
	if _, err := os.Stat(exp.File); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", ErrExportFileMissing
		}
		return "", "", err
	}
	return exp.File, filepath.Base(exp.File), nil
}

// TotalByCriteria counts the submissions an export with the given criteria would write.
func (s *ExportService) TotalByCriteria(ctx context.Context, input exportdomain.CountDTO) (int64, error) {
	f, err := s.loadForm(ctx, input.FormID)
	if err != nil {
		return 0, err
	}
	q := export.Query{FormID: f.ID, Filter: export.BuildFilter(f.Fields, input.Criteria)}
	return s.Repos.Submission.CountSubmissions(ctx, q)
}

// Discard removes the scratch file of an export run right away.
func (s *ExportService) Discard(res *SaveResult) {
	if res == nil || !res.Temporary {
		return
	}
	if err := s.files.Remove(res.Path); err != nil {
		s.log.Warn("temp export not removed", zap.String("path", res.Path), zap.Error(err))
	}
}

func (s *ExportService) removeArtifacts(ctx context.Context, exportID uint, file string) {
	if file == "" {
		return
	}
	if err := s.files.Remove(file); err != nil {
		s.log.Warn("export file not removed", zap.Uint("export_id", exportID), zap.Error(err))
	}
	if err := s.mirror.Remove(ctx, file); err != nil {
		s.log.Warn("export mirror not removed", zap.Uint("export_id", exportID), zap.Error(err))
	}
}
