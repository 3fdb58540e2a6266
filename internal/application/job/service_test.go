package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/forms-go/internal/domain/job"
	"github.com/linskybing/forms-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify() { c.n++ }

func setup(t *testing.T) (*Service, *mock.MockJobRepo, *countingNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	repo := mock.NewMockJobRepo(ctrl)
	n := &countingNotifier{}
	return NewService(repo, n), repo, n
}

func TestEnqueueExport(t *testing.T) {
	svc, repo, n := setup(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, j *job.Job) error {
		assert.Equal(t, job.JobTypeExport, j.Type)
		assert.Equal(t, job.JobStatusQueued, j.Status)
		assert.Equal(t, uint(4), j.Payload.Data().ExportID)
		j.ID = 10
		return nil
	})

	j, err := svc.EnqueueExport(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, uint(10), j.ID)
	assert.Equal(t, 1, n.n)
}

func TestEnqueueExport_CreateFails(t *testing.T) {
	svc, repo, n := setup(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.EnqueueExport(context.Background(), 4)
	assert.ErrorContains(t, err, "db down")
	assert.Zero(t, n.n)
}

func TestWithRepo_DefersNotify(t *testing.T) {
	svc, _, n := setup(t)
	ctrl := gomock.NewController(t)
	txRepo := mock.NewMockJobRepo(ctrl)
	ctx := context.Background()

	txRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	_, err := svc.WithRepo(txRepo).EnqueueExport(ctx, 4)
	require.NoError(t, err)
	assert.Zero(t, n.n)

	svc.Notify()
	assert.Equal(t, 1, n.n)
}

func TestLatestForExport(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	repo.EXPECT().FindByExportID(ctx, uint(4)).Return([]job.Job{{ID: 3}, {ID: 8}, {ID: 5}}, nil)
	j, err := svc.LatestForExport(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, uint(8), j.ID)

	repo.EXPECT().FindByExportID(ctx, uint(5)).Return(nil, nil)
	j, err = svc.LatestForExport(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, j)
}

func TestCancelForExport_OnlyQueued(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	repo.EXPECT().FindByExportID(ctx, uint(4)).Return([]job.Job{
		{ID: 1, Status: job.JobStatusQueued},
		{ID: 2, Status: job.JobStatusRunning},
		{ID: 3, Status: job.JobStatusQueued},
	}, nil)
	repo.EXPECT().Delete(ctx, uint(1)).Return(nil)
	repo.EXPECT().Delete(ctx, uint(3)).Return(nil)

	require.NoError(t, svc.CancelForExport(ctx, 4))
}

func TestRetryJob(t *testing.T) {
	svc, repo, n := setup(t)
	ctx := context.Background()
	started := time.Now().Add(-time.Minute)

	repo.EXPECT().FindByID(ctx, uint(2)).Return(&job.Job{ID: 2, Status: job.JobStatusCompleted}, nil)
	_, err := svc.RetryJob(ctx, 2)
	assert.ErrorIs(t, err, ErrJobNotRetryable)

	repo.EXPECT().FindByID(ctx, uint(3)).Return(&job.Job{
		ID:           3,
		Status:       job.JobStatusFailed,
		Attempts:     3,
		ErrorMessage: "boom",
		StartedAt:    &started,
	}, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	j, err := svc.RetryJob(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, job.JobStatusQueued, j.Status)
	assert.Zero(t, j.Attempts)
	assert.Empty(t, j.ErrorMessage)
	assert.Nil(t, j.StartedAt)
	assert.Equal(t, 1, n.n)
}
