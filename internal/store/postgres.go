package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/rayan25nov/Blog-task-backend/internal/models"
	"github.com/rayan25nov/Blog-task-backend/internal/store/migrations"
)

const uniqueViolation = "23505"

const userColumns = `id, name, email, password, blogs, created_at, updated_at`

// PostgresStore handles user CRUD against PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate applies the embedded goose migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) CreateUser(ctx context.Context, name, email, hashedPassword string) (*models.User, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		name, email, hashedPassword,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// UpdateUser persists name, email and password of u. The blogs list is
// owned by AppendBlog/RemoveBlog and is not written here.
func (s *PostgresStore) UpdateUser(ctx context.Context, u *models.User) (*models.User, error) {
	if _, err := uuid.Parse(u.ID); err != nil {
		return nil, ErrNotFound
	}
	row := s.pool.QueryRow(ctx,
		`UPDATE users
		 SET name = $2, email = $3, password = $4, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.Password,
	)
	updated, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// AppendBlog adds blogID to the user's blog list unless it is already
// there, so replaying it is harmless.
func (s *PostgresStore) AppendBlog(ctx context.Context, userID, blogID string) error {
	return s.execOnUser(ctx,
		`UPDATE users
		 SET blogs = CASE WHEN $2::text = ANY(blogs) THEN blogs ELSE array_append(blogs, $2::text) END,
		     updated_at = NOW()
		 WHERE id = $1`,
		userID, blogID,
	)
}

// RemoveBlog drops every occurrence of blogID from the user's blog list.
func (s *PostgresStore) RemoveBlog(ctx context.Context, userID, blogID string) error {
	return s.execOnUser(ctx,
		`UPDATE users SET blogs = array_remove(blogs, $2::text), updated_at = NOW() WHERE id = $1`,
		userID, blogID,
	)
}

func (s *PostgresStore) execOnUser(ctx context.Context, sql, userID, blogID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return ErrNotFound
	}
	tag, err := s.pool.Exec(ctx, sql, userID, blogID)
	if err != nil {
		return fmt.Errorf("update user blogs: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Blogs, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err)
	}
	if u.Blogs == nil {
		u.Blogs = []string{}
	}
	return &u, nil
}

func mapPgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
