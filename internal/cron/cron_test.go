package cron

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/linskybing/forms-go/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmissions struct {
	calls int
	err   error
}

func (f *fakeSubmissions) CleanUp(context.Context) (int64, error) {
	f.calls++
	return 2, f.err
}

type fakeRefs []string

func (f fakeRefs) ReferencedFiles(context.Context) ([]string, error) { return f, nil }

type fakeSweeper struct{ swept bool }

func (f *fakeSweeper) Sweep() { f.swept = true }

func TestCleanupRun(t *testing.T) {
	files := export.NewFileStore(t.TempDir())
	kept, err := files.Reserve("kept", "csv")
	require.NoError(t, err)
	stale, err := files.Reserve("stale", "csv")
	require.NoError(t, err)
	fresh, err := files.Reserve("fresh", "csv")
	require.NoError(t, err)

	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(kept, old, old))

	subs := &fakeSubmissions{}
	sweeper := &fakeSweeper{}
	c := &Cleanup{
		Submissions: subs,
		Exports:     fakeRefs{kept},
		Files:       files,
		Tokens:      sweeper,
	}
	c.Run(context.Background())

	assert.Equal(t, 1, subs.calls)
	assert.True(t, sweeper.swept)
	assert.FileExists(t, kept)
	assert.FileExists(t, fresh)
	assert.NoFileExists(t, stale)
}

func TestCleanupRun_SubmissionErrorDoesNotStopFiles(t *testing.T) {
	files := export.NewFileStore(t.TempDir())
	stale, err := files.Reserve("stale", "csv")
	require.NoError(t, err)

	c := &Cleanup{
		Submissions: &fakeSubmissions{err: errors.New("db down")},
		Exports:     fakeRefs(nil),
		Files:       files,
		Now:         func() time.Time { return time.Now().Add(2 * time.Hour) },
	}
	c.Run(context.Background())
	assert.NoFileExists(t, filepath.Clean(stale))
}

func TestStartCleanupTask_RunsOnStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	StartCleanupTask(ctx, &Cleanup{Submissions: cleanupFunc(func() { close(done) })})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup did not run on start")
	}
}

type cleanupFunc func()

func (f cleanupFunc) CleanUp(context.Context) (int64, error) {
	f()
	return 0, nil
}
