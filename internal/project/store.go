package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Store errors.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrNotFound indicates no project with the requested id exists.
	ErrNotFound = errors.New("project not found")

	// ErrInvalidID indicates an empty or malformed project id.
	ErrInvalidID = errors.New("project id cannot be empty")

	// ErrInvalidStatus indicates an unknown status value on write.
	ErrInvalidStatus = errors.New("invalid project status")
)

// collectionFile is the fixed namespace the collection lives under.
const collectionFile = "projects.json"

// collection is the on-disk envelope around the project list.
type collection struct {
	Projects []Project `json:"projects"`
}

// Store is a file-backed project collection.
//
// Every operation reads the entire collection, mutates it in memory, and
// writes the entire collection back through an atomic tmp+rename. Safe for
// concurrent use within one process; concurrent processes are last-write-wins.
type Store struct {
	path string
	mu   sync.Mutex

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, collectionFile), now: time.Now}, nil
}

// Save persists a new project built from the given fields and returns it
// with generated id and timestamps.
func (s *Store) Save(p Project) (Project, error) {
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if !ValidStatus(p.Status) {
		return Project{}, fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.read()
	if err != nil {
		return Project{}, err
	}

	now := s.now().UTC()
	p.ID = NewID(now)
	p.CreatedAt = now
	p.UpdatedAt = now

	col.Projects = append(col.Projects, p)
	if err := s.write(col); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Get returns the project with the given id.
func (s *Store) Get(id string) (Project, error) {
	if id == "" {
		return Project{}, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.read()
	if err != nil {
		return Project{}, err
	}
	for _, p := range col.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns all projects, newest first.
func (s *Store) List() ([]Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make([]Project, len(col.Projects))
	copy(out, col.Projects)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update overwrites the stored project with the same id and bumps UpdatedAt.
// CreatedAt and ID are preserved from the stored record.
func (s *Store) Update(p Project) (Project, error) {
	if p.ID == "" {
		return Project{}, ErrInvalidID
	}
	if !ValidStatus(p.Status) {
		return Project{}, fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.read()
	if err != nil {
		return Project{}, err
	}

	for i, existing := range col.Projects {
		if existing.ID == p.ID {
			p.CreatedAt = existing.CreatedAt
			p.UpdatedAt = s.now().UTC()
			col.Projects[i] = p
			if err := s.write(col); err != nil {
				return Project{}, err
			}
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("%w: %s", ErrNotFound, p.ID)
}

// Delete removes the project with the given id. Deleting is explicit and
// irreversible; a missing id is an error, not a no-op.
func (s *Store) Delete(id string) error {
	if id == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.read()
	if err != nil {
		return err
	}

	for i, p := range col.Projects {
		if p.ID == id {
			col.Projects = append(col.Projects[:i], col.Projects[i+1:]...)
			return s.write(col)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// read loads the full collection. A missing file is an empty collection.
func (s *Store) read() (collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return collection{}, nil
		}
		return collection{}, fmt.Errorf("reading project store: %w", err)
	}

	var col collection
	if err := json.Unmarshal(data, &col); err != nil {
		return collection{}, fmt.Errorf("parsing project store: %w", err)
	}
	return col, nil
}

// write replaces the full collection atomically via tmp file and rename.
func (s *Store) write(col collection) error {
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding project store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing project store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing project store: %w", err)
	}
	return nil
}
