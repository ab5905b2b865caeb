package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const backupTimeFormat = "2006-01-02-15-04-05.000"

// RotateOptions bounds the size and number of log files.
type RotateOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultRotateOptions returns the limits used when none are configured.
func DefaultRotateOptions() RotateOptions {
	return RotateOptions{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 14, Compress: true}
}

// LogRotator is an io.WriteCloser that renames the log file to a timestamped
// backup once it exceeds the size limit, then prunes old backups.
type LogRotator struct {
	mu         sync.Mutex
	path       string
	maxSize    int64 // bytes
	maxAge     time.Duration
	maxBackups int
	compress   bool
	file       *os.File
	size       int64
	now        func() time.Time
}

// NewLogRotator opens path for appending.
func NewLogRotator(path string, opts RotateOptions) (*LogRotator, error) {
	r := &LogRotator{
		path:       path,
		maxSize:    int64(opts.MaxSizeMB) * 1024 * 1024,
		maxAge:     time.Duration(opts.MaxAgeDays) * 24 * time.Hour,
		maxBackups: opts.MaxBackups,
		compress:   opts.Compress,
		now:        time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) open() error {
	const filePerm = 0o640

	if info, err := os.Stat(r.path); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = f
	return nil
}

// Write appends p, rotating first if p would overflow the size limit.
// A zero size limit disables rotation.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	r.file = nil

	backup := r.path + "." + r.now().Format(backupTimeFormat)
	if err := os.Rename(r.path, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		// a failed compression keeps the plain backup
		if err := compressFile(backup); err == nil {
			_ = os.Remove(backup)
		}
	}

	r.prune()
	return r.open()
}

func compressFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// Backups returns the rotated files of the log, oldest first.
func (r *LogRotator) Backups() ([]string, error) {
	dir, base := filepath.Split(r.path)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type backup struct {
		path string
		mod  time.Time
	}
	var backups []backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), base+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, backup{path: filepath.Join(dir, e.Name()), mod: info.ModTime()})
	}

	slices.SortFunc(backups, func(a, b backup) int {
		if c := a.mod.Compare(b.mod); c != 0 {
			return c
		}
		return strings.Compare(a.path, b.path)
	})

	paths := make([]string, len(backups))
	for i, b := range backups {
		paths[i] = b.path
	}
	return paths, nil
}

func (r *LogRotator) prune() {
	backups, err := r.Backups()
	if err != nil {
		return
	}

	var kept []string
	for _, b := range backups {
		if r.maxAge > 0 {
			if info, err := os.Stat(b); err == nil && r.now().Sub(info.ModTime()) > r.maxAge {
				_ = os.Remove(b)
				continue
			}
		}
		kept = append(kept, b)
	}

	if r.maxBackups > 0 && len(kept) > r.maxBackups {
		for _, b := range kept[:len(kept)-r.maxBackups] {
			_ = os.Remove(b)
		}
	}
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
