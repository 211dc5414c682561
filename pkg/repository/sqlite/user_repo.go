package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/auth"
)

// AdminRepository implements auth.UserRepository on sqlite.
type AdminRepository struct {
	db *sql.DB
}

func NewAdminRepository(ctx context.Context, db *sql.DB) (*AdminRepository, error) {
	repo := &AdminRepository{db: db}
	if err := repo.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *AdminRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS admins (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin INTEGER NOT NULL DEFAULT 1,
	created_at INTEGER NOT NULL
);
`)
	return err
}

func (r *AdminRepository) Create(ctx context.Context, u auth.User) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO admins (id, email, password_hash, is_admin, created_at)
VALUES (?, ?, ?, ?, ?)
`, u.ID.String(), strings.ToLower(u.Email), u.PasswordHash, u.IsAdmin, u.CreatedAt.UnixNano())
	var sqliteErr *sqlitedrv.Error
	if errors.As(err, &sqliteErr) && isUniqueViolation(sqliteErr.Code()) {
		return auth.ErrUserAlreadyExists
	}
	return err
}

// isUniqueViolation accepts both the extended and the primary result code.
func isUniqueViolation(code int) bool {
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	var (
		u       auth.User
		id      string
		created int64
	)
	err := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, is_admin, created_at FROM admins WHERE email = ?
`, strings.ToLower(email)).Scan(&id, &u.Email, &u.PasswordHash, &u.IsAdmin, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.User{}, auth.ErrNotFound
	}
	if err != nil {
		return auth.User{}, err
	}
	if u.ID, err = uuid.Parse(id); err != nil {
		return auth.User{}, err
	}
	u.CreatedAt = time.Unix(0, created).UTC()
	return u, nil
}
