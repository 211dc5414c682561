package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/paid"
)

// PaidVacancyRepository хранит оплаченные вакансии во встроенной sqlite.
// created_at is kept as unix nanoseconds so ORDER BY stays numeric.
type PaidVacancyRepository struct {
	db *sql.DB
}

func NewPaidVacancyRepository(ctx context.Context, db *sql.DB) (*PaidVacancyRepository, error) {
	r := &PaidVacancyRepository{db: db}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PaidVacancyRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS paid_vacancies (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	employer TEXT NOT NULL DEFAULT '',
	employer_logo TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL,
	date TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_paid_vacancies_created ON paid_vacancies(created_at DESC);
`)
	return err
}

func (r *PaidVacancyRepository) Create(ctx context.Context, v paid.Vacancy) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO paid_vacancies (id, name, employer, employer_logo, city, tags, url, date, color, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, v.ID.String(), strings.TrimSpace(v.Name), v.Employer, v.EmployerLogo, v.City, v.Tags, v.URL, v.Date, v.Color, v.CreatedAt.UnixNano())
	return err
}

func (r *PaidVacancyRepository) GetByID(ctx context.Context, id uuid.UUID) (paid.Vacancy, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, employer, employer_logo, city, tags, url, date, color, created_at
FROM paid_vacancies WHERE id = ?
`, id.String())
	v, err := scanPaidVacancy(row)
	if errors.Is(err, sql.ErrNoRows) {
		return paid.Vacancy{}, paid.ErrNotFound
	}
	return v, err
}

func (r *PaidVacancyRepository) List(ctx context.Context, limit, offset int) ([]paid.Vacancy, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, employer, employer_logo, city, tags, url, date, color, created_at
FROM paid_vacancies
ORDER BY created_at DESC
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []paid.Vacancy{}
	for rows.Next() {
		v, err := scanPaidVacancy(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, rows.Err()
}

func (r *PaidVacancyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM paid_vacancies WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return paid.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPaidVacancy(row scanner) (paid.Vacancy, error) {
	var (
		v       paid.Vacancy
		id      string
		created int64
	)
	if err := row.Scan(&id, &v.Name, &v.Employer, &v.EmployerLogo, &v.City, &v.Tags, &v.URL, &v.Date, &v.Color, &created); err != nil {
		return paid.Vacancy{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return paid.Vacancy{}, err
	}
	v.ID = parsed
	v.CreatedAt = time.Unix(0, created).UTC()
	return v, nil
}
