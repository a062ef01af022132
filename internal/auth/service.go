package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/rayan25nov/Blog-task-backend/internal/models"
	"github.com/rayan25nov/Blog-task-backend/internal/store"
)

const (
	MinPasswordLength = 6
	BcryptCost        = 10
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, hashedPw string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) (*models.User, error)
}

// BlogFinder expands a user's owner list into blog records.
type BlogFinder interface {
	GetByIDs(ctx context.Context, ids []string) ([]models.Blog, error)
}

// Service implements signup, signin and profile management.
type Service struct {
	users    UserStore
	blogs    BlogFinder
	tokens   *TokenIssuer
	validate *validator.Validate
}

func NewService(users UserStore, blogs BlogFinder, tokens *TokenIssuer) *Service {
	return &Service{
		users:    users,
		blogs:    blogs,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Signup validates and stores a new user. No session is created.
func (s *Service) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)

	if !s.validEmail(req.Email) {
		return nil, ErrInvalidEmail
	}
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	_, err := s.users.GetUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if len(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, req.Name, req.Email, hashed)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// Signin checks the credentials and returns a signed token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Signin(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID)
}

// UpdateProfile applies each provided field on its own. An invalid email or
// a too-short password is skipped, not rejected.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if len(req.Password) >= MinPasswordLength {
		hashed, err := hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if email := normalizeEmail(req.Email); email != "" && s.validEmail(email) {
		user.Email = email
	}

	updated, err := s.users.UpdateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, ErrUserExists
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return updated, nil
}

// GetProfile returns the user with its blogs expanded, in owner-list order.
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	blogs, err := s.blogs.GetByIDs(ctx, user.Blogs)
	if err != nil {
		return nil, fmt.Errorf("load blogs: %w", err)
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}

	return &models.Profile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Blogs:     blogs,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (s *Service) loadUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

func (s *Service) validEmail(email string) bool {
	return s.validate.Var(email, "required,email") == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
