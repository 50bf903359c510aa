// Package jsonstore keeps users, requirements and the reference lists in two
// JSON documents. Both documents are read once at Open, served from memory
// under a mutex and rewritten whole on every mutation. One process is
// assumed to own the files.
package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"cutlery/internal/model"
)

const (
	// RequirementFile holds requirements and reference lists.
	RequirementFile = "requirement.json"
	// UsersFile holds the flat user list.
	UsersFile = "users.json"
)

// RequirementDocument is the on-disk layout of RequirementFile.
type RequirementDocument struct {
	Requirements []model.Requirement  `json:"requirement"`
	Metals       []model.CatalogEntry `json:"metals"`
	Handles      []model.CatalogEntry `json:"handles"`
	CutleryTypes []model.CatalogEntry `json:"cutlery_types"`
}

func (d *RequirementDocument) category(c model.Category) *[]model.CatalogEntry {
	switch c {
	case model.CategoryMetals:
		return &d.Metals
	case model.CategoryHandles:
		return &d.Handles
	case model.CategoryCutleryTypes:
		return &d.CutleryTypes
	default:
		return nil
	}
}

// userRecord is the persisted form of model.User, which hides secrets from API output.
type userRecord struct {
	ID               int    `json:"id"`
	Username         string `json:"username"`
	PasswordHash     string `json:"password_hash"`
	IsAdmin          bool   `json:"is_admin"`
	IntegrationToken string `json:"integration_token,omitempty"`
}

func toRecord(u *model.User) userRecord {
	return userRecord{
		ID:               u.ID,
		Username:         u.Username,
		PasswordHash:     u.PasswordHash,
		IsAdmin:          u.IsAdmin,
		IntegrationToken: u.IntegrationToken,
	}
}

func (r userRecord) toModel() model.User {
	return model.User{
		ID:               r.ID,
		Username:         r.Username,
		PasswordHash:     r.PasswordHash,
		IsAdmin:          r.IsAdmin,
		IntegrationToken: r.IntegrationToken,
	}
}

// Store owns both documents.
type Store struct {
	fs        afero.Fs
	reqPath   string
	usersPath string

	mu    sync.Mutex
	doc   RequirementDocument
	users []userRecord
}

// Open loads the documents under dir, treating missing files as empty.
func Open(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		fs:        fs,
		reqPath:   filepath.Join(dir, RequirementFile),
		usersPath: filepath.Join(dir, UsersFile),
	}
	if err := s.read(s.reqPath, &s.doc); err != nil {
		return nil, err
	}
	if err := s.read(s.usersPath, &s.users); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) read(path string, v interface{}) error {
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// write replaces path with the indented encoding of v through a temp file.
func (s *Store) write(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// commitDocument persists doc and adopts it only when the write succeeds.
// Callers hold s.mu.
func (s *Store) commitDocument(doc RequirementDocument) error {
	if err := s.write(s.reqPath, doc); err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// commitUsers persists users and adopts them only when the write succeeds.
// Callers hold s.mu.
func (s *Store) commitUsers(users []userRecord) error {
	if err := s.write(s.usersPath, users); err != nil {
		return err
	}
	s.users = users
	return nil
}

// Document returns a copy of the requirement document.
func (s *Store) Document() RequirementDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDocument(s.doc)
}

func cloneDocument(d RequirementDocument) RequirementDocument {
	return RequirementDocument{
		Requirements: append([]model.Requirement{}, d.Requirements...),
		Metals:       append([]model.CatalogEntry{}, d.Metals...),
		Handles:      append([]model.CatalogEntry{}, d.Handles...),
		CutleryTypes: append([]model.CatalogEntry{}, d.CutleryTypes...),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

// Requirements returns the requirement repository view of the store.
func (s *Store) Requirements() *RequirementRepository {
	return &RequirementRepository{s: s}
}

// Catalog returns the reference list view of the store.
func (s *Store) Catalog() *CatalogRepository {
	return &CatalogRepository{s: s}
}
