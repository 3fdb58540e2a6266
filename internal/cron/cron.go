package cron

import (
	"context"
	"log"
	"os"
	"time"
)

const (
	CleanupInterval = 24 * time.Hour
	// OrphanGrace keeps files younger than this; a queued export may not be stored yet.
	OrphanGrace = time.Hour
)

type SubmissionCleaner interface {
	CleanUp(ctx context.Context) (int64, error)
}

type ExportRefs interface {
	ReferencedFiles(ctx context.Context) ([]string, error)
}

type ExportFiles interface {
	Orphans(referenced []string) ([]string, error)
	Remove(path string) error
}

// Sweeper drops expired entries of an in-memory store.
type Sweeper interface {
	Sweep()
}

type Cleanup struct {
	Submissions SubmissionCleaner
	Exports     ExportRefs
	Files       ExportFiles
	Tokens      Sweeper
	Now         func() time.Time
}

// Run performs one cleanup pass. Failures are logged and do not stop the
// remaining steps.
func (c *Cleanup) Run(ctx context.Context) {
	if c.Submissions != nil {
		n, err := c.Submissions.CleanUp(ctx)
		if err != nil {
			log.Printf("Failed to clean up old submissions: %v", err)
		} else if n > 0 {
			log.Printf("Removed %d old submissions", n)
		}
	}
	if c.Exports != nil && c.Files != nil {
		removed, err := c.removeOrphans(ctx)
		if err != nil {
			log.Printf("Failed to clean up export files: %v", err)
		} else if removed > 0 {
			log.Printf("Removed %d orphaned export files", removed)
		}
	}
	if c.Tokens != nil {
		c.Tokens.Sweep()
	}
}

func (c *Cleanup) removeOrphans(ctx context.Context) (int, error) {
	refs, err := c.Exports.ReferencedFiles(ctx)
	if err != nil {
		return 0, err
	}
	orphans, err := c.Files.Orphans(refs)
	if err != nil {
		return 0, err
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	removed := 0
	for _, path := range orphans {
		info, err := os.Stat(path)
		if err != nil || now().Sub(info.ModTime()) < OrphanGrace {
			continue
		}
		if err := c.Files.Remove(path); err != nil {
			log.Printf("Failed to remove export file %s: %v", path, err)
			continue
		}
		removed++
	}
	return removed, nil
}

// StartCleanupTask runs the cleanup immediately and then once a day until
// ctx is cancelled.
func StartCleanupTask(ctx context.Context, c *Cleanup) {
	go func() {
		log.Println("Starting background cleanup task")

		// Run immediately on startup
		c.Run(ctx)

		ticker := time.NewTicker(CleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Println("Running scheduled cleanup...")
				c.Run(ctx)
			}
		}
	}()
}
