package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/cleanwater/report-service/internal/domain"
)

// memoryUserRepository keeps users in a mutex-guarded map with an email index
// mirroring the unique constraint of the Postgres schema.
type memoryUserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	users   map[int64]domain.User
	byEmail map[string]int64
}

// NewMemoryUserRepository returns an in-memory implementation.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		nextID:  1,
		users:   make(map[int64]domain.User),
		byEmail: make(map[string]int64),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	if prev.Email != user.Email {
		if owner, taken := r.byEmail[user.Email]; taken && owner != user.ID {
			return ErrDuplicateEmail
		}
		delete(r.byEmail, prev.Email)
		r.byEmail[user.Email] = user.ID
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.users[id]
	return &user, nil
}

func (r *memoryUserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byEmail, user.Email)
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
