package paid

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/jobs"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/taxonomy"
)

// featuredLimit caps how many paid vacancies are shown above the search results.
const featuredLimit = 20

// UseCase инкапсулирует работу с оплаченными вакансиями.
type UseCase interface {
	Create(ctx context.Context, v Vacancy) (Vacancy, error)
	Get(ctx context.Context, id uuid.UUID) (Vacancy, error)
	List(ctx context.Context, limit, offset int) ([]Vacancy, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Featured(ctx context.Context) ([]jobs.Job, error)
}

type service struct {
	repo Repository
	tax  *taxonomy.Taxonomy
	now  func() time.Time
}

func NewService(repo Repository, tax *taxonomy.Taxonomy) UseCase {
	return &service{repo: repo, tax: tax, now: time.Now}
}

func (s *service) Create(ctx context.Context, v Vacancy) (Vacancy, error) {
	v.Name = strings.TrimSpace(v.Name)
	v.URL = strings.TrimSpace(v.URL)
	if v.Name == "" {
		return Vacancy{}, ErrValidation("name is required")
	}
	if v.URL == "" {
		return Vacancy{}, ErrValidation("url is required")
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	now := s.now().UTC()
	if strings.TrimSpace(v.Date) == "" {
		v.Date = now.Format(time.DateOnly)
	}
	if strings.TrimSpace(v.EmployerLogo) == "" {
		v.EmployerLogo = jobs.NoPhoto
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return Vacancy{}, err
	}
	return v, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Vacancy, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Vacancy, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Featured returns the newest paid vacancies in front-end shape.
func (s *service) Featured(ctx context.Context) ([]jobs.Job, error) {
	vs, err := s.repo.List(ctx, featuredLimit, 0)
	if err != nil {
		return nil, err
	}
	out := make([]jobs.Job, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Present(s.tax))
	}
	return out, nil
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
