// Package backup provides an optional scheduled snapshot of the store file.
// The ledger itself stays single-writer and request-driven; the snapshotter
// only copies the file sideways on a cron schedule as a safety net against
// accidental deletion of the one file holding all data.
package backup

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Snapshotter copies the store file into a backup directory on a schedule.
type Snapshotter struct {
	path string
	dir  string
	cron *cron.Cron
}

// NewSnapshotter creates a Snapshotter for the given store file and backup directory.
func NewSnapshotter(path, dir string) *Snapshotter {
	return &Snapshotter{
		path: path,
		dir:  dir,
		cron: cron.New(),
	}
}

// Start schedules snapshots with the given cron expression (e.g. "0 3 * * *")
// and starts the scheduler.
func (s *Snapshotter) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.Snapshot(); err != nil {
			log.Printf("WARNING: scheduled backup failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	log.Printf("Scheduled store backups (%s) to %s", schedule, s.dir)
	return nil
}

// Stop stops the scheduler. A snapshot already in flight completes.
func (s *Snapshotter) Stop() {
	s.cron.Stop()
}

// Snapshot copies the store file to the backup directory with a timestamped
// name. A missing store file is not an error; there is nothing to back up yet.
func (s *Snapshotter) Snapshot() error {
	src, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")
	name := fmt.Sprintf("%s-%s%s", baseName(s.path), stamp, filepath.Ext(s.path))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy store file: %w", err)
	}

	return dst.Sync()
}

func baseName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
