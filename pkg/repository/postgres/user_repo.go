package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/auth"
)

// uniqueViolation is the SQLSTATE postgres returns for duplicate keys.
const uniqueViolation = "23505"

// AdminRepository реализует auth.UserRepository поверх PostgreSQL.
type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) (*AdminRepository, error) {
	repo := &AdminRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *AdminRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS admins (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *AdminRepository) Create(ctx context.Context, u auth.User) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO admins (id, email, password_hash, is_admin, created_at)
VALUES ($1, $2, $3, $4, $5)
`, u.ID, strings.ToLower(u.Email), u.PasswordHash, u.IsAdmin, u.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return auth.ErrUserAlreadyExists
	}
	return err
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	var (
		u       auth.User
		created time.Time
	)
	err := r.pool.QueryRow(ctx, `
SELECT id, email, password_hash, is_admin, created_at FROM admins WHERE email = $1
`, strings.ToLower(email)).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsAdmin, &created)
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.User{}, auth.ErrNotFound
	}
	if err != nil {
		return auth.User{}, err
	}
	u.CreatedAt = created.UTC()
	return u, nil
}
