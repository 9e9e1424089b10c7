package backup

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/apisuite/apisuite/internal/notes/models"
)

var ErrNoBackup = errors.New("backup file not found")

// Store snapshots the full notes table to a JSON file. The file holds a flat
// array and is rewritten wholesale on every write under a single writer lock.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Write(notes []models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(notes, "", "  ")

	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

func (s *Store) Load() ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)

	if os.IsNotExist(err) {
		return nil, ErrNoBackup
	}

	if err != nil {
		return nil, err
	}

	var notes []models.Note

	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, err
	}

	return notes, nil
}
