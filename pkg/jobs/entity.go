package jobs

import (
	"context"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/query"
)

// NoPhoto is served when an employer has no logo.
const NoPhoto = "/static/nophoto.png"

// Job is a listing in the shape the front end renders.
type Job struct {
	Name         string `json:"name"`
	Employer     string `json:"employer"`
	EmployerLogo string `json:"employer_logo"`
	Tags         Tags   `json:"tags"`
	URL          string `json:"url"`
	Date         string `json:"date"`
	Color        string `json:"color,omitempty"`
}

// Tags lists are sets; they are never null in JSON.
type Tags struct {
	Type []string `json:"type"`
	Tech []string `json:"tech"`
	City string   `json:"city"`
}

// Result is one page of presented jobs.
type Result struct {
	Jobs  []Job `json:"jobs"`
	Pages int   `json:"pages"`
}

// UseCase: поиск, фильтрация и подготовка вакансий для фронтенда.
type UseCase interface {
	Load(ctx context.Context, sel query.Selection, page int) (Result, error)
	Get(ctx context.Context, listingURL string) (Job, error)
}
