package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/degree"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/query"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/taxonomy"
)

type service struct {
	fetcher listing.Fetcher
	filter  *degree.Filter
	tax     *taxonomy.Taxonomy
	log     *slog.Logger
}

func NewService(fetcher listing.Fetcher, filter *degree.Filter, tax *taxonomy.Taxonomy, log *slog.Logger) UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &service{fetcher: fetcher, filter: filter, tax: tax, log: log}
}

// Load runs the whole pipeline for one page: build query, fetch, drop degree listings, present.
func (s *service) Load(ctx context.Context, sel query.Selection, page int) (Result, error) {
	q := query.Build(sel)
	p, err := s.fetcher.FetchPage(ctx, q, page)
	if err != nil {
		return Result{}, fmt.Errorf("fetch page %d: %w", page, err)
	}
	kept, err := s.filter.Apply(ctx, p.Items)
	if err != nil {
		return Result{}, err
	}
	s.log.Debug("jobs loaded", "query", q, "page", page, "fetched", len(p.Items), "kept", len(kept))

	out := Result{Jobs: make([]Job, 0, len(kept)), Pages: p.Pages}
	for _, l := range kept {
		out.Jobs = append(out.Jobs, Present(s.tax, l))
	}
	return out, nil
}

// Get presents a single listing looked up by its URL or id.
func (s *service) Get(ctx context.Context, listingURL string) (Job, error) {
	l, err := s.fetcher.FetchDetail(ctx, listingURL)
	if err != nil {
		return Job{}, err
	}
	return Present(s.tax, l), nil
}
