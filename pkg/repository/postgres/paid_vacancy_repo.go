package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/paid"
)

// PaidVacancyRepository хранит оплаченные вакансии.
type PaidVacancyRepository struct {
	pool *pgxpool.Pool
}

func NewPaidVacancyRepository(pool *pgxpool.Pool) (*PaidVacancyRepository, error) {
	r := &PaidVacancyRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PaidVacancyRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS paid_vacancies (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	employer TEXT NOT NULL DEFAULT '',
	employer_logo TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL,
	date TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
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
	_, err := r.pool.Exec(ctx, `
INSERT INTO paid_vacancies (id, name, employer, employer_logo, city, tags, url, date, color, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, v.ID, strings.TrimSpace(v.Name), v.Employer, v.EmployerLogo, v.City, v.Tags, v.URL, v.Date, v.Color, v.CreatedAt)
	return err
}

func (r *PaidVacancyRepository) GetByID(ctx context.Context, id uuid.UUID) (paid.Vacancy, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, employer, employer_logo, city, tags, url, date, color, created_at
FROM paid_vacancies WHERE id = $1
`, id)
	v, err := scanPaidVacancy(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return paid.Vacancy{}, paid.ErrNotFound
		}
		return paid.Vacancy{}, err
	}
	return v, nil
}

func (r *PaidVacancyRepository) List(ctx context.Context, limit, offset int) ([]paid.Vacancy, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, name, employer, employer_logo, city, tags, url, date, color, created_at
FROM paid_vacancies
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
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
	cmd, err := r.pool.Exec(ctx, `DELETE FROM paid_vacancies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return paid.ErrNotFound
	}
	return nil
}

func scanPaidVacancy(row pgx.Row) (paid.Vacancy, error) {
	var v paid.Vacancy
	var created time.Time
	if err := row.Scan(&v.ID, &v.Name, &v.Employer, &v.EmployerLogo, &v.City, &v.Tags, &v.URL, &v.Date, &v.Color, &created); err != nil {
		return paid.Vacancy{}, err
	}
	v.CreatedAt = created.UTC()
	return v, nil
}
