// Package storage keeps uploaded files in a directory on disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ukaji3/xltables-go/pkg/xltables"
)

// FileInfo describes a stored file.
type FileInfo struct {
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mimetype,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// Store saves, lists and removes files under a single directory.
type Store struct {
	dir string
	now func() time.Time
}

// New creates the directory if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes src under "<unix millis>-<base name>" and returns its info.
func (s *Store) Save(originalName string, src io.Reader) (FileInfo, error) {
	base := filepath.Base(strings.ReplaceAll(originalName, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		return FileInfo{}, fmt.Errorf("invalid file name %q", originalName)
	}
	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), base)
	path := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return FileInfo{}, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return FileInfo{}, err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return FileInfo{}, err
	}

	return s.Stat(name)
}

// List returns every regular file in the store, sorted by name.
func (s *Store) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := s.Stat(entry.Name())
		if err != nil {
			continue
		}
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Filename < files[j].Filename })
	return files, nil
}

// Stat returns the info of a stored file.
func (s *Store) Stat(name string) (FileInfo, error) {
	path, err := s.Path(name)
	if err != nil {
		return FileInfo{}, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	info := FileInfo{
		Filename: name,
		Path:     path,
		Size:     st.Size(),
		// Birth time is not portable; the modification time stands in.
		CreatedAt:  st.ModTime(),
		ModifiedAt: st.ModTime(),
	}
	if mt, err := mimetype.DetectFile(path); err == nil {
		info.MimeType = mt.String()
	}
	return info, nil
}

// Path resolves a stored file name. It fails with xltables.ErrFileNotFound
// when the name escapes the directory or the file does not exist.
func (s *Store) Path(name string) (string, error) {
	if !validName(name) {
		return "", xltables.ErrFileNotFound
	}
	path := filepath.Join(s.dir, name)
	st, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", xltables.ErrFileNotFound
	}
	if err != nil {
		return "", err
	}
	if st.IsDir() {
		return "", xltables.ErrFileNotFound
	}
	return path, nil
}

// Delete removes a stored file.
func (s *Store) Delete(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "\x00")
}
