package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/rayan25nov/Blog-task-backend/internal/models"
)

func newTestService(t *testing.T) (*Service, *memUsers, *memBlogs) {
	t.Helper()
	users := newMemUsers()
	blogs := &memBlogs{blogs: map[string]models.Blog{}}
	return NewService(users, blogs, NewTokenIssuer("test-secret", TokenTTL)), users, blogs
}

func TestSignup_HashesPassword(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	for i, pw := range []string{"abcdef", "P@ssw0rd!#$%", strings.Repeat("x", 64)} {
		email := fmt.Sprintf("user%d@example.com", i)
		u, err := svc.Signup(ctx, models.SignupRequest{Name: "A", Email: email, Password: pw})
		require.NoError(t, err)

		stored, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.NotEqual(t, pw, stored.Password)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(pw)))

		cost, err := bcrypt.Cost([]byte(stored.Password))
		require.NoError(t, err)
		assert.Equal(t, BcryptCost, cost)
	}
}

func TestSignup_NormalizesEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	u, err := svc.Signup(context.Background(), models.SignupRequest{Name: "  A  ", Email: " Mixed@Example.COM ", Password: "abcdef"})
	require.NoError(t, err)
	assert.Equal(t, "mixed@example.com", u.Email)
	assert.Equal(t, "A", u.Name)
}

func TestSignup_Rejections(t *testing.T) {
	tests := []struct {
		name string
		req  models.SignupRequest
		want error
	}{
		{"invalid email", models.SignupRequest{Name: "A", Email: "not-an-email", Password: "abcdef"}, ErrInvalidEmail},
		{"empty email", models.SignupRequest{Name: "A", Password: "abcdef"}, ErrInvalidEmail},
		{"missing name", models.SignupRequest{Email: "b@x.com", Password: "abcdef"}, ErrNameRequired},
		{"short password", models.SignupRequest{Name: "A", Email: "c@x.com", Password: "abc"}, ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			_, err := svc.Signup(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignup_DuplicateEmailAlwaysFails(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "abcdef"})
	require.NoError(t, err)

	for _, req := range []models.SignupRequest{
		{Name: "B", Email: "a@x.com", Password: "ghijkl"},
		{Name: "A", Email: "A@X.com", Password: "abcdef"},
		{Name: "C", Email: "a@x.com", Password: "x"},
	} {
		_, err := svc.Signup(ctx, req)
		require.ErrorIs(t, err, ErrUserExists, req.Email)
	}
}

func TestSignup_StoreError(t *testing.T) {
	svc, users, _ := newTestService(t)
	users.err = errors.New("db down")

	_, err := svc.Signup(context.Background(), models.SignupRequest{Name: "A", Email: "a@x.com", Password: "abcdef"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserExists)
}

func TestSignin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "abcdef"})
	require.NoError(t, err)

	token, err := svc.Signin(ctx, "A@x.com", "abcdef")
	require.NoError(t, err)
	claims, err := svc.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)

	_, err = svc.Signin(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Signin(ctx, "nobody@x.com", "abcdef")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_AppliesFieldsIndependently(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "abcdef"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, u.ID, models.UpdateProfileRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email, "invalid email is ignored")

	stored, _ := users.GetUserByID(ctx, u.ID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("abcdef")),
		"short password is ignored")

	updated, err = svc.UpdateProfile(ctx, u.ID, models.UpdateProfileRequest{
		Email:    "New@X.com",
		Password: "newpassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "new@x.com", updated.Email)

	_, err = svc.Signin(ctx, "new@x.com", "newpassword")
	require.NoError(t, err)
}

func TestUpdateProfile_EmailTakenByOtherUser(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "abcdef"})
	require.NoError(t, err)
	_, err = svc.Signup(ctx, models.SignupRequest{Name: "B", Email: "b@x.com", Password: "abcdef"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, u.ID, models.UpdateProfileRequest{Email: "b@x.com"})
	require.ErrorIs(t, err, ErrUserExists)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpdateProfile(context.Background(), "ghost", models.UpdateProfileRequest{Name: "X"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile_ExpandsBlogsInOwnerOrder(t *testing.T) {
	svc, users, blogs := newTestService(t)
	ctx := context.Background()

	first, second := primitive.NewObjectID(), primitive.NewObjectID()
	blogs.blogs[first.Hex()] = models.Blog{ID: first, Title: "first", UserID: "u1"}
	blogs.blogs[second.Hex()] = models.Blog{ID: second, Title: "second", UserID: "u1"}
	users.seed(models.User{
		ID:    "u1",
		Name:  "A",
		Email: "a@x.com",
		Blogs: []string{second.Hex(), "dangling", first.Hex()},
	})

	p, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, p.Blogs, 2)
	assert.Equal(t, "second", p.Blogs[0].Title)
	assert.Equal(t, "first", p.Blogs[1].Title)

	_, err = svc.GetProfile(ctx, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile_BlogStoreError(t *testing.T) {
	svc, users, blogs := newTestService(t)
	users.seed(models.User{ID: "u1", Email: "a@x.com"})
	blogs.err = errors.New("mongo down")

	_, err := svc.GetProfile(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
