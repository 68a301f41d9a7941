// Package profile persists the single user profile under the XDG config
// dir. Absent data means nobody is signed in.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type EmergencyContact struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	DOB     string `json:"dob"` // YYYY-MM-DD
	Work    string `json:"work"`
	Hobbies string `json:"hobbies"`
	// insertion order is display order; SOS reads, never mutates
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
}

// Store loads on start and saves on every mutation.
type Store struct {
	path    string
	current *Profile
}

func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "alowish", "profile.json")
}

// Open reads the profile at path. A missing file is not an error; Current
// simply returns nil until Save is called.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	s.current = &p
	return s, nil
}

// Current returns the signed-in profile, or nil.
func (s *Store) Current() *Profile {
	return s.current
}

// Contacts returns the emergency contact sequence, empty when signed out.
func (s *Store) Contacts() []EmergencyContact {
	if s.current == nil {
		return nil
	}
	return s.current.EmergencyContacts
}

// Save replaces the stored profile.
func (s *Store) Save(p Profile) error {
	s.current = &p
	return s.write()
}

// Clear signs the user out and removes the stored file.
func (s *Store) Clear() error {
	s.current = nil
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) AddContact(name, number string) (EmergencyContact, error) {
	if s.current == nil {
		return EmergencyContact{}, fmt.Errorf("no profile loaded")
	}
	c := EmergencyContact{ID: uuid.NewString(), Name: name, Number: number}
	s.current.EmergencyContacts = append(s.current.EmergencyContacts, c)
	return c, s.write()
}

func (s *Store) RemoveContact(id string) error {
	if s.current == nil {
		return fmt.Errorf("no profile loaded")
	}
	kept := s.current.EmergencyContacts[:0]
	for _, c := range s.current.EmergencyContacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.current.EmergencyContacts = kept
	return s.write()
}

func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
