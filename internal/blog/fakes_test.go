package blog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rayan25nov/Blog-task-backend/internal/models"
	"github.com/rayan25nov/Blog-task-backend/internal/store"
)

// memBlogs keeps blogs in insertion order.
type memBlogs struct {
	mu      sync.Mutex
	blogs   []models.Blog
	listErr error
}

func (m *memBlogs) Insert(_ context.Context, b *models.Blog) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	b.ID = primitive.NewObjectID()
	m.blogs = append(m.blogs, *b)
	return b, nil
}

func (m *memBlogs) List(context.Context) ([]models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.blogs)
	slices.Reverse(out)
	if out == nil {
		out = []models.Blog{}
	}
	return out, nil
}

func (m *memBlogs) ListByUser(_ context.Context, userID string) ([]models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Blog{}
	for _, b := range m.blogs {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBlogs) ListIDsByUser(ctx context.Context, userID string) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	blogs, _ := m.ListByUser(ctx, userID)
	ids := []string{}
	for _, b := range blogs {
		ids = append(ids, b.ID.Hex())
	}
	return ids, nil
}

func (m *memBlogs) index(id string) int {
	for i, b := range m.blogs {
		if b.ID.Hex() == id {
			return i
		}
	}
	return -1
}

func (m *memBlogs) GetByID(_ context.Context, id string) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	b := m.blogs[i]
	return &b, nil
}

func (m *memBlogs) Update(_ context.Context, id string, p models.BlogPatch) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	b := &m.blogs[i]
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.CreatedAt != nil {
		b.CreatedAt = *p.CreatedAt
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	b.UpdatedAt = time.Now().UTC()
	out := *b
	return &out, nil
}

func (m *memBlogs) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	m.blogs = slices.Delete(m.blogs, i, i+1)
	return nil
}

// memOwners maps user id to the owner list.
type memOwners struct {
	mu        sync.Mutex
	lists     map[string][]string
	removeErr error
}

func newMemOwners(users ...string) *memOwners {
	m := &memOwners{lists: map[string][]string{}}
	for _, u := range users {
		m.lists[u] = []string{}
	}
	return m
}

func (m *memOwners) AppendBlog(_ context.Context, userID, blogID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list, ok := m.lists[userID]
	if !ok {
		return store.ErrNotFound
	}
	if !slices.Contains(list, blogID) {
		m.lists[userID] = append(list, blogID)
	}
	return nil
}

func (m *memOwners) RemoveBlog(_ context.Context, userID, blogID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removeErr != nil {
		return m.removeErr
	}
	list, ok := m.lists[userID]
	if !ok {
		return store.ErrNotFound
	}
	m.lists[userID] = slices.DeleteFunc(list, func(id string) bool { return id == blogID })
	return nil
}

func (m *memOwners) list(userID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.lists[userID])
}

// memMedia records uploads by URL.
type memMedia struct {
	mu        sync.Mutex
	objects   map[string][]byte
	seq       int
	uploadErr error
}

func newMemMedia() *memMedia {
	return &memMedia{objects: map[string][]byte{}}
}

func (m *memMedia) Upload(_ context.Context, filename string, r io.Reader, _ int64, _ string) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	url := fmt.Sprintf("http://media.test/blog-images/post/%d-%s", m.seq, filename)
	m.objects[url] = data
	return url, nil
}

func (m *memMedia) Delete(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[url]; !ok {
		return errors.New("no such object")
	}
	delete(m.objects, url)
	return nil
}

func (m *memMedia) has(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[url]
	return ok
}
