package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store owns the canonical ordered list of directories. It carries no UI
// state; scenes read cloned snapshots and only the router's commit step or
// an explicit overview delete/create mutates it.
type Store struct {
	directories []Directory
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith seeds a store with clones of the given directories.
func NewStoreWith(directories ...Directory) *Store {
	s := &Store{}
	for _, d := range directories {
		s.directories = append(s.directories, d.Clone())
	}
	return s
}

// Len reports the number of directories.
func (s *Store) Len() int {
	return len(s.directories)
}

// List returns a cloned snapshot in store order. Mutating the result never
// touches the store.
func (s *Store) List() []Directory {
	out := make([]Directory, len(s.directories))
	for i, d := range s.directories {
		out[i] = d.Clone()
	}
	return out
}

// Get returns a clone of the directory at index i.
func (s *Store) Get(i int) (Directory, error) {
	if i < 0 || i >= len(s.directories) {
		return Directory{}, fmt.Errorf("directory index %d out of range (have %d)", i, len(s.directories))
	}
	return s.directories[i].Clone(), nil
}

// IndexOf returns the position of the directory with the given identity,
// or -1 when it is not present.
func (s *Store) IndexOf(id uuid.UUID) int {
	for i, d := range s.directories {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Replace overwrites the directory at index i with a clone of d.
func (s *Store) Replace(i int, d Directory) error {
	if i < 0 || i >= len(s.directories) {
		return fmt.Errorf("directory index %d out of range (have %d)", i, len(s.directories))
	}
	s.directories[i] = d.Clone()
	return nil
}

// Append adds a clone of d at the end and returns its index.
func (s *Store) Append(d Directory) int {
	s.directories = append(s.directories, d.Clone())
	return len(s.directories) - 1
}

// Delete removes the directory at index i. Indices captured before a
// delete are invalid afterwards.
func (s *Store) Delete(i int) error {
	if i < 0 || i >= len(s.directories) {
		return fmt.Errorf("directory index %d out of range (have %d)", i, len(s.directories))
	}
	s.directories = append(s.directories[:i], s.directories[i+1:]...)
	return nil
}

// SetAll replaces the full contents with clones of the given directories.
// Used when the on-disk configuration changed underneath us.
func (s *Store) SetAll(directories []Directory) {
	s.directories = make([]Directory, len(directories))
	for i, d := range directories {
		s.directories[i] = d.Clone()
	}
}

type storeFile struct {
	Directories []Directory `json:"directories"`
}

// Load reads the store from the JSON configuration file. A missing file is
// not an error; it yields an empty store so first launch works.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	s := NewStore()
	s.SetAll(file.Directories)
	return s, nil
}

// Save writes the store to the JSON configuration file, creating parent
// directories when missing.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(storeFile{Directories: s.List()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
