package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
)

const userIDPrefix = "user-"

// UserStore keeps the whole user list in one JSON file. A process-local
// mutex serialises read-modify-write cycles; cross-process writers are out of
// scope.
type UserStore struct {
	path string
	mu   sync.Mutex
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

func (u *UserStore) List(ctx context.Context) ([]model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.load()
}

func (u *UserStore) Get(ctx context.Context, id string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	users, err := u.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
}

func (u *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	users, err := u.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, repository.ErrNotFound)
}

func (u *UserStore) Create(ctx context.Context, user *model.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	users, err := u.load()
	if err != nil {
		return err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}

	user.ID = nextID(users)
	users = append(users, *user)
	return u.save(users)
}

func (u *UserStore) Update(ctx context.Context, user *model.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	users, err := u.load()
	if err != nil {
		return err
	}
	idx := -1
	for i := range users {
		if users[i].ID == user.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("user %s: %w", user.ID, repository.ErrNotFound)
	}
	for i := range users {
		if i != idx && strings.EqualFold(users[i].Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}

	users[idx] = *user
	return u.save(users)
}

func (u *UserStore) Delete(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	users, err := u.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			return u.save(users)
		}
	}
	return fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
}

func (u *UserStore) load() ([]model.User, error) {
	data, err := os.ReadFile(u.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.User{}, nil
		}
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

func (u *UserStore) save(users []model.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(u.path), 0o755); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(u.path), "users-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to save users: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	if err := os.Rename(tmpName, u.path); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// nextID generates user-<n> where n is one past the highest existing numeric
// suffix.
func nextID(users []model.User) string {
	max := 0
	for _, user := range users {
		suffix, ok := strings.CutPrefix(user.ID, userIDPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > max {
			max = n
		}
	}
	return userIDPrefix + strconv.Itoa(max+1)
}
