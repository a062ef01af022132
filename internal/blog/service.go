// Package blog implements blog post CRUD and keeps each owner's list of
// blog ids in step with the blog records.
package blog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/rayan25nov/Blog-task-backend/internal/models"
	"github.com/rayan25nov/Blog-task-backend/internal/store"
)

var (
	ErrBlogNotFound  = errors.New("blog not found")
	ErrForbidden     = errors.New("not the owner of this blog")
	ErrNoImage       = errors.New("no image provided")
	ErrOwnerNotFound = errors.New("owner not found")
)

// BlogStore persists blog records.
type BlogStore interface {
	Insert(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	ListByUser(ctx context.Context, userID string) ([]models.Blog, error)
	ListIDsByUser(ctx context.Context, userID string) ([]string, error)
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	Update(ctx context.Context, id string, patch models.BlogPatch) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}

// OwnerStore maintains the blog id list on the user record.
type OwnerStore interface {
	AppendBlog(ctx context.Context, userID, blogID string) error
	RemoveBlog(ctx context.Context, userID, blogID string) error
}

// MediaStore hosts blog images.
type MediaStore interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

// Image is an uploaded file on its way to the media store.
type Image struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Service implements the blog operations.
type Service struct {
	blogs  BlogStore
	owners OwnerStore
	media  MediaStore
	log    *zap.Logger
}

func NewService(blogs BlogStore, owners OwnerStore, media MediaStore, log *zap.Logger) *Service {
	return &Service{blogs: blogs, owners: owners, media: media, log: log}
}

// Create uploads the image, stores the blog and records it on the owner.
func (s *Service) Create(ctx context.Context, userID string, in models.BlogInput, img *Image) (*models.Blog, error) {
	if img == nil || img.Body == nil {
		return nil, ErrNoImage
	}

	url, err := s.media.Upload(ctx, img.Filename, img.Body, img.Size, img.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	blog, err := s.blogs.Insert(ctx, &models.Blog{
		Title:       in.Title,
		Description: in.Description,
		Image:       url,
		UserID:      userID,
		CreatedAt:   in.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	if err := s.owners.AppendBlog(ctx, userID, blog.ID.Hex()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("append blog to owner: %w", err)
	}
	return blog, nil
}

// List returns every blog, newest first.
func (s *Service) List(ctx context.Context) ([]models.Blog, error) {
	return s.blogs.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return blog, nil
}

// Update applies patch to a blog the caller owns. A new image replaces the
// old one in the media store.
func (s *Service) Update(ctx context.Context, userID, id string, patch models.BlogPatch, img *Image) (*models.Blog, error) {
	current, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if img != nil && img.Body != nil {
		if current.Image != "" {
			if err := s.media.Delete(ctx, current.Image); err != nil {
				return nil, fmt.Errorf("delete old image: %w", err)
			}
		}
		url, err := s.media.Upload(ctx, img.Filename, img.Body, img.Size, img.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		patch.Image = &url
	}

	updated, err := s.blogs.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return updated, nil
}

// Delete removes the image, the record and the owner's reference to it.
// Failing to update the owner list is logged and does not fail the call.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	current, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}

	if current.Image != "" {
		if err := s.media.Delete(ctx, current.Image); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBlogNotFound
		}
		return fmt.Errorf("delete blog: %w", err)
	}

	if err := s.owners.RemoveBlog(ctx, current.UserID, current.ID.Hex()); err != nil {
		s.log.Warn("remove blog from owner list",
			zap.String("user_id", current.UserID),
			zap.String("blog_id", current.ID.Hex()),
			zap.Error(err),
		)
	}
	return nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Blog, error) {
	return s.blogs.ListByUser(ctx, userID)
}

func (s *Service) ListOwnIDs(ctx context.Context, userID string) ([]string, error) {
	return s.blogs.ListIDsByUser(ctx, userID)
}

func (s *Service) owned(ctx context.Context, userID, id string) (*models.Blog, error) {
	blog, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog.UserID != userID {
		return nil, ErrForbidden
	}
	return blog, nil
}
