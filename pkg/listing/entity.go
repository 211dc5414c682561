package listing

import (
	"context"
	"errors"
	"strings"
)

// RawListing: вакансия в том виде, в каком её отдаёт hh.ru.
// Nullable upstream fields are pointers.
type RawListing struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	AlternateURL string   `json:"alternate_url"`
	PublishedAt  string   `json:"published_at"`
	Employer     Employer `json:"employer"`
	Area         Area     `json:"area"`
	Snippet      Snippet  `json:"snippet"`
	// Description is only present in detail responses.
	Description string `json:"description,omitempty"`
}

type Employer struct {
	Name     string    `json:"name"`
	LogoURLs *LogoURLs `json:"logo_urls"`
}

type LogoURLs struct {
	Original string `json:"original"`
}

type Area struct {
	Name string `json:"name"`
}

type Snippet struct {
	Requirement    *string `json:"requirement"`
	Responsibility *string `json:"responsibility"`
}

// RequirementText returns the requirement snippet or "" when absent.
func (l RawListing) RequirementText() string {
	if l.Snippet.Requirement == nil {
		return ""
	}
	return *l.Snippet.Requirement
}

// DetailRef is what FetchDetail should be called with: the API url when known, else the id.
func (l RawListing) DetailRef() string {
	if l.URL != "" {
		return l.URL
	}
	return l.ID
}

// Page is one page of search results.
type Page struct {
	Items []RawListing
	Pages int
	Found int
}

// Fetcher порт к внешнему API вакансий.
type Fetcher interface {
	FetchPage(ctx context.Context, query string, page int) (Page, error)
	FetchDetail(ctx context.Context, listingURL string) (RawListing, error)
}

var (
	// ErrNetwork: upstream unreachable, timed out or answered with a non-2xx status.
	ErrNetwork = errors.New("upstream network error")
	// ErrParse: upstream body is not valid JSON or lacks the expected shape.
	ErrParse = errors.New("upstream parse error")
	// ErrMissingField: an expected upstream field is absent.
	ErrMissingField = errors.New("upstream field missing")
)

// DetailID extracts the trailing path segment of a listing URL, which hh.ru uses as the vacancy id.
// A bare id is returned unchanged.
func DetailID(listingURL string) string {
	s := listingURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}
