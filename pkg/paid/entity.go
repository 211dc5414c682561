package paid

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/jobs"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/tagger"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/taxonomy"
)

// Vacancy оплаченная (продвигаемая) вакансия, хранится локально.
// Tags is free text; tag membership is recomputed on every Present.
type Vacancy struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Employer     string    `json:"employer"`
	EmployerLogo string    `json:"employer_logo"`
	City         string    `json:"city"`
	Tags         string    `json:"tags"`
	URL          string    `json:"url"`
	Date         string    `json:"date"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
}

// Present serializes the vacancy for the front end, matching taxonomy aliases against the raw tag text.
func (v Vacancy) Present(tax *taxonomy.Taxonomy) jobs.Job {
	return jobs.Job{
		Name:         v.Name,
		Employer:     v.Employer,
		EmployerLogo: v.EmployerLogo,
		Tags:         jobs.NewTags(tagger.Tag(tax, v.Tags), v.City),
		URL:          v.URL,
		Date:         v.Date,
		Color:        v.Color,
	}
}

var ErrNotFound = errors.New("paid vacancy not found")

// Repository порт для хранения оплаченных вакансий.
type Repository interface {
	Create(ctx context.Context, v Vacancy) error
	GetByID(ctx context.Context, id uuid.UUID) (Vacancy, error)
	List(ctx context.Context, limit, offset int) ([]Vacancy, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
