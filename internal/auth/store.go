package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Kind is the type of signed-in identity.
type Kind string

const (
	KindParent Kind = "parent"
	KindStaff  Kind = "staff"
	KindAdmin  Kind = "admin"
)

// Identity is the signed-in user persisted across app restarts.
type Identity struct {
	Kind Kind   `json:"kind"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ErrNotSignedIn is returned by Current when no identity is stored.
var ErrNotSignedIn = errors.New("not signed in")

// Store persists the current identity to a JSON file. It is constructed
// once at startup and passed to whoever needs it; there is no ambient
// global signed-in state.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Current reads the stored identity, or ErrNotSignedIn when absent.
func (s *Store) Current() (*Identity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotSignedIn
		}
		return nil, fmt.Errorf("read login state: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("parse login state: %w", err)
	}
	if id.Kind == "" || id.ID == 0 {
		return nil, ErrNotSignedIn
	}
	return &id, nil
}

// Set writes the identity, replacing any previous login.
func (s *Store) Set(id Identity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode login state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write login state: %w", err)
	}
	return nil
}

// Clear removes the stored identity. Clearing an empty store is fine.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear login state: %w", err)
	}
	return nil
}
