package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"florestal/entities"
	"florestal/pkg/logger"
)

var (
	// ErrNotFound means no data file exists at the configured path.
	ErrNotFound = errors.New("data file not found")
	// ErrCorrupt means the file exists but is not a parseable dataset.
	ErrCorrupt = errors.New("data file is not valid JSON")
)

// Store owns the canonical dataset file. Every other component works on a
// loaded copy and routes changes back through Save. The mutex serializes
// load/save within one process; two processes sharing a file still race
// (last write wins, no merge).
type Store struct {
	path string
	mu   sync.Mutex
	log  *logger.Logger
}

func New(path string, log *logger.Logger) *Store {
	return &Store{path: path, log: log}
}

func (s *Store) Path() string { return s.path }

// Load reads and parses the dataset file. Callers that want the seed
// fallback should use LoadOrSeed; Load reports the failure cause so the
// choice stays with the caller.
func (s *Store) Load() (*entities.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (*entities.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var ds entities.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &ds, nil
}

// LoadOrSeed returns the persisted dataset, falling back to the seed when the
// file is missing or unreadable. The fallback is logged, never surfaced.
func (s *Store) LoadOrSeed() *entities.Dataset {
	ds, err := s.Load()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("dataset unreadable, using seed", "path", s.path, "err", err)
		}
		return Seed()
	}
	return ds
}

// Save overwrites the dataset file with a pretty-printed document. The write
// goes to a temp file in the same directory and is renamed into place so a
// crash cannot leave a truncated file.
func (s *Store) Save(ds *entities.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".dados-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// NextID is 1 for an empty list, else max(id)+1. Ids stay monotonic even
// when deletions leave holes.
func NextID(farms []entities.Farm) int {
	max := 0
	for _, f := range farms {
		if f.ID > max {
			max = f.ID
		}
	}
	return max + 1
}
