package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore owns the directory export files are written to.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Reserve creates an empty file named after the form handle. On collision a
// numeric suffix is appended: handle.csv, handle1.csv, handle2.csv...
func (s *FileStore) Reserve(handle, ext string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	base := sanitize(handle)
	for i := 0; ; i++ {
		name := base
		if i > 0 {
			name += strconv.Itoa(i)
		}
		path := filepath.Join(s.dir, name+"."+ext)
		fh, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("reserve export file: %w", err)
		}
		if err := fh.Close(); err != nil {
			return "", err
		}
		return path, nil
	}
}

// Temp creates a uniquely named scratch file for exports served immediately.
func (s *FileStore) Temp(ext string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	fh, err := os.CreateTemp(s.dir, "tmp-export-*."+ext)
	if err != nil {
		return "", fmt.Errorf("create temp export file: %w", err)
	}
	name := fh.Name()
	return name, fh.Close()
}

// Remove deletes an export file. Missing files are not an error.
func (s *FileStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Orphans lists files in the export directory not referenced by any export.
func (s *FileStore) Orphans(referenced []string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(referenced))
	for _, p := range referenced {
		if p != "" {
			keep[filepath.Clean(p)] = true
		}
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := filepath.Join(s.dir, e.Name())
		if !keep[filepath.Clean(p)] {
			out = append(out, p)
		}
	}
	return out, nil
}

func sanitize(handle string) string {
	var b strings.Builder
	for _, r := range handle {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "export"
	}
	return b.String()
}
