// Package store provides data persistence for the portfolio tracker.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	stockoerrors "stocko/internal/errors"
	"stocko/internal/models"
)

// DefaultFileName is the persisted data file, located next to the
// executable unless overridden by configuration.
const DefaultFileName = "stocko_data.json"

// FileStore persists the full Collections as a single JSON file. Each
// command loads once, mutates in memory, and saves once; a save
// overwrites the whole file, so the last writer wins across processes.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultDataPath returns the default data file path, next to the
// running executable.
func DefaultDataPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted collections. A missing file is not an error:
// it yields an empty but initialized Collections.
func (s *FileStore) Load() (*models.Collections, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewCollections(), nil
		}
		return nil, stockoerrors.NewReadDataError(s.path, err)
	}

	var c models.Collections
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, stockoerrors.NewReadDataError(s.path, err)
	}

	// Older files may omit a bucket entirely.
	if c.Portfolio == nil {
		c.Portfolio = make(map[string]models.Position)
	}
	if c.Watchlist == nil {
		c.Watchlist = make(map[string]models.Position)
	}
	if c.Archive == nil {
		c.Archive = make(map[string]models.Position)
	}

	return &c, nil
}

// Save serializes the collections and atomically replaces the persisted
// file. There are no partial or merge writes.
func (s *FileStore) Save(c *models.Collections) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return stockoerrors.NewSaveDataError(s.path, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".stocko_data-*.json")
	if err != nil {
		return stockoerrors.NewSaveDataError(s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return stockoerrors.NewSaveDataError(s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return stockoerrors.NewSaveDataError(s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return stockoerrors.NewSaveDataError(s.path, fmt.Errorf("replacing data file: %w", err))
	}

	return nil
}
