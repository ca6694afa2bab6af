package compstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dealscout/dealscout/internal/domain"
)

// Store is a file-based implementation of domain.CompStore.
type Store struct{}

// New creates a new file-based comp store.
func New() *Store {
	return &Store{}
}

// Load reads the saved comparables for dir. Returns (nil, nil) if none were saved.
func (s *Store) Load(dir string) ([]domain.ComparableListing, error) {
	data, err := os.ReadFile(compsPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // nothing saved is not an error
		}
		return nil, err
	}

	var file compsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", compsPath(dir), err)
	}
	return file.Comps, nil
}

// Save replaces the saved set, assigning an id to any comparable without one.
// The ids are written back into comps.
func (s *Store) Save(dir string, comps []domain.ComparableListing) error {
	if err := os.MkdirAll(storeDir(dir), 0755); err != nil {
		return err
	}

	for i := range comps {
		if comps[i].ID == "" {
			comps[i].ID = uuid.NewString()
		}
	}

	data, err := json.MarshalIndent(compsFile{Version: fileVersion, Comps: comps}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(compsPath(dir), data, 0644)
}

// Clear removes the saved set for dir.
func (s *Store) Clear(dir string) error {
	if err := os.Remove(compsPath(dir)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

const fileVersion = 1

type compsFile struct {
	Version int                        `json:"version"`
	Comps   []domain.ComparableListing `json:"comps"`
}

func storeDir(dir string) string {
	return filepath.Join(dir, ".dealscout")
}

func compsPath(dir string) string {
	return filepath.Join(dir, ".dealscout", "comps.json")
}
