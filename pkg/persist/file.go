package persist

import (
	"encoding/json"
	"os"
)

// FileStore persists snapshots as a JSON file on disk
type FileStore struct {
	Filename string
}

// NewFileStore returns a file-backed store
func NewFileStore(filename string) *FileStore {
	return &FileStore{Filename: filename}
}

// Load reads the snapshot file. A missing file is not an error: the table
// simply hasn't been saved yet.
func (s *FileStore) Load() (*Snapshot, error) {
	b, err := os.ReadFile(s.Filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var snapshot Snapshot
	if err := json.Unmarshal(b, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// Save writes the snapshot file
func (s *FileStore) Save(snapshot *Snapshot) error {
	b, err := json.MarshalIndent(snapshot, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.Filename, b, 0644)
}
