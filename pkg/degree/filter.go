// Package degree drops vacancies that ask for a university degree.
package degree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/nlp"
)

// DefaultKeywords are matched as substrings of the normalized requirement + description.
var DefaultKeywords = []string{
	"высшее", "образование", "вуз", "профильное", "студент",
	"higher education", "university", "bachelor", "degree", "student",
}

// Filter excludes listings whose requirement or full description mentions a degree.
type Filter struct {
	fetcher  listing.Fetcher
	keywords []string
	log      *slog.Logger
}

// NewFilter returns a filter using keywords, or DefaultKeywords when none are given.
func NewFilter(fetcher listing.Fetcher, log *slog.Logger, keywords ...string) *Filter {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	norm := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = nlp.NormalizeText(k); k != "" {
			norm = append(norm, k)
		}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Filter{fetcher: fetcher, keywords: norm, log: log}
}

// Apply keeps the listings that do not require a degree, preserving order.
// Each listing costs one detail request, made sequentially.
//
// Listings without a requirement snippet are skipped, as are listings whose detail
// is malformed (ErrParse, ErrMissingField). Network failures abort the batch.
func (f *Filter) Apply(ctx context.Context, listings []listing.RawListing) ([]listing.RawListing, error) {
	out := make([]listing.RawListing, 0, len(listings))
	for _, l := range listings {
		if l.Snippet.Requirement == nil {
			f.log.Debug("skip listing without requirement", "id", l.ID)
			continue
		}
		detail, err := f.fetcher.FetchDetail(ctx, l.DetailRef())
		if err != nil {
			if errors.Is(err, listing.ErrParse) || errors.Is(err, listing.ErrMissingField) {
				f.log.Warn("skip listing with malformed detail", "id", l.ID, "err", err)
				continue
			}
			return nil, fmt.Errorf("fetch detail %s: %w", l.ID, err)
		}
		if f.Mentions(*l.Snippet.Requirement + " " + detail.Description) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// Mentions reports whether text contains any degree keyword. HTML markup and punctuation are ignored.
func (f *Filter) Mentions(text string) bool {
	text = nlp.NormalizeText(text)
	for _, k := range f.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
