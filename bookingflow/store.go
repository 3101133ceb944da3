package bookingflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"safaribook/entity"
)

// ErrNoSession is returned by a SessionStore when nothing is persisted.
var ErrNoSession = errors.New("no stored session")

// SessionStore is the durable-storage capability for the Session entity. It
// is injected into the State constructor so tests can substitute an
// in-memory store.
type SessionStore interface {
	Load() (entity.Session, error)
	Save(entity.Session) error
	Clear() error
}

const sessionEntry = "park-auth.json"

// FileSessionStore keeps the session as a single fixed-name JSON entry in
// the state directory.
type FileSessionStore struct {
	dir string
}

func NewFileSessionStore(dir string) (*FileSessionStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create state dir: %w", err)
	}
	return &FileSessionStore{dir: dir}, nil
}

func (s *FileSessionStore) path() string {
	return filepath.Join(s.dir, sessionEntry)
}

func (s *FileSessionStore) Load() (entity.Session, error) {
	raw, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return entity.Session{}, ErrNoSession
	}
	if err != nil {
		return entity.Session{}, fmt.Errorf("could not read session entry: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return entity.Session{}, fmt.Errorf("corrupt session entry: %w", err)
	}
	return session, nil
}

func (s *FileSessionStore) Save(session entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not encode session: %w", err)
	}
	return os.WriteFile(s.path(), raw, 0o600)
}

func (s *FileSessionStore) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemorySessionStore is the in-memory substitute used in tests.
type MemorySessionStore struct {
	Stored  *entity.Session
	Corrupt bool // mimics an unparsable stored value

	Cleared int
}

func (s *MemorySessionStore) Load() (entity.Session, error) {
	if s.Corrupt {
		return entity.Session{}, errors.New("corrupt session entry")
	}
	if s.Stored == nil {
		return entity.Session{}, ErrNoSession
	}
	return *s.Stored, nil
}

func (s *MemorySessionStore) Save(session entity.Session) error {
	copied := session
	s.Stored = &copied
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.Stored = nil
	s.Corrupt = false
	s.Cleared++
	return nil
}
