package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]*entity.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.PasswordHash = slices.Clone(u.PasswordHash)
	return &c
}

func (r *UserRepository) Save(_ context.Context, user *entity.User) error {
	const op = "adapter.repository.memory.UserRepository.Save"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return fmt.Errorf("%s: %w", op, entity.ErrUserExists)
	}

	email := normalizeEmail(user.Email)
	if _, ok := r.byEmail[email]; ok {
		return fmt.Errorf("%s: %w", op, entity.ErrEmailTaken)
	}

	r.users[user.ID] = cloneUser(user)
	r.byEmail[email] = user.ID

	return nil
}

func (r *UserRepository) RetrieveByID(_ context.Context, id string) (*entity.User, error) {
	const op = "adapter.repository.memory.UserRepository.RetrieveByID"

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
	}

	return cloneUser(user), nil
}

func (r *UserRepository) RetrieveByEmail(_ context.Context, email string) (*entity.User, error) {
	const op = "adapter.repository.memory.UserRepository.RetrieveByEmail"

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
	}

	return cloneUser(r.users[id]), nil
}
