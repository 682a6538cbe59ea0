// Package file persists the user collection as a single JSON document on
// disk: {"users": [...]}. Every operation is a full read-modify-write cycle
// serialized behind a process-wide mutex, and writes go through a temp file
// plus rename so a crash never leaves a half-written document.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/admindesk/user-service/internal/core/domain"
)

// UserRepository implements ports.UserRepository over a flat JSON file.
type UserRepository struct {
	path string
	mu   sync.Mutex
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

type document struct {
	Users []userRecord `json:"users"`
}

// userRecord is the on-disk shape. It carries its own json tags because
// domain.User deliberately refuses to serialize the password hash.
type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Access       []string  `json:"access"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toRecord(u *domain.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Access:       u.Access,
		Comment:      u.Comment,
		CreatedAt:    u.CreatedAt,
	}
}

func toDomain(r userRecord) domain.User {
	access := r.Access
	if access == nil {
		access = []string{}
	}
	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Access:       access,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

// load reads the document, initializing an empty one when the file does not
// exist yet. Callers must hold mu.
func (r *UserRepository) load() (*document, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &document{Users: []userRecord{}}, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	if doc.Users == nil {
		doc.Users = []userRecord{}
	}
	return &doc, nil
}

// save performs a full-document replace. Callers must hold mu.
func (r *UserRepository) save(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".users-*.json")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(doc.Users))
	for _, rec := range doc.Users {
		users = append(users, toDomain(rec))
	}
	return users, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range doc.Users {
		if rec.ID == id {
			user := toDomain(rec)
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range doc.Users {
		if domain.EmailEqual(rec.Email, email) {
			user := toDomain(rec)
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends the record. The uniqueness check and the write happen under
// one lock, so two concurrent creates with the same email cannot both pass.
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	for _, rec := range doc.Users {
		if domain.EmailEqual(rec.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}

	doc.Users = append(doc.Users, toRecord(user))
	return r.save(doc)
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	idx := -1
	for i, rec := range doc.Users {
		if rec.ID == user.ID {
			idx = i
			continue
		}
		if domain.EmailEqual(rec.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	if idx < 0 {
		return domain.ErrUserNotFound
	}

	doc.Users[idx] = toRecord(user)
	return r.save(doc)
}

func (r *UserRepository) Delete(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for i, rec := range doc.Users {
		if rec.ID == id {
			removed := toDomain(rec)
			doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
			if err := r.save(doc); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Ping reports whether the store directory is usable. Used by the readiness
// probe.
func (r *UserRepository) Ping(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.load()
	return err
}
