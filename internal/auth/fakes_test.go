package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rayan25nov/Blog-task-backend/internal/models"
	"github.com/rayan25nov/Blog-task-backend/internal/store"
)

type memUsers struct {
	mu   sync.Mutex
	byID map[string]models.User
	seq  int
	err  error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]models.User{}}
}

func (m *memUsers) CreateUser(_ context.Context, name, email, hashedPw string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byID {
		if u.Email == email {
			return nil, fmt.Errorf("create user: %w", store.ErrDuplicate)
		}
	}
	m.seq++
	now := time.Now()
	u := models.User{
		ID:        fmt.Sprintf("user-%d", m.seq),
		Name:      name,
		Email:     email,
		Password:  hashedPw,
		Blogs:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.byID[u.ID] = u
	return &u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) UpdateUser(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[u.ID]; !ok {
		return nil, store.ErrNotFound
	}
	for id, other := range m.byID {
		if id != u.ID && other.Email == u.Email {
			return nil, fmt.Errorf("update user: %w", store.ErrDuplicate)
		}
	}
	updated := *u
	updated.UpdatedAt = time.Now()
	m.byID[u.ID] = updated
	return &updated, nil
}

// seed stores a user directly, bypassing validation.
func (m *memUsers) seed(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[u.ID] = u
}

type memBlogs struct {
	blogs map[string]models.Blog
	err   error
}

func (m *memBlogs) GetByIDs(_ context.Context, ids []string) ([]models.Blog, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Blog{}
	for _, id := range ids {
		if b, ok := m.blogs[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}
