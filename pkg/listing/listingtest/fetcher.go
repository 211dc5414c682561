// Package listingtest provides an in-memory listing.Fetcher for tests.
package listingtest

import (
	"context"
	"sync"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
)

// Fetcher serves a fixed page and details keyed by vacancy id.
type Fetcher struct {
	mu sync.Mutex

	Page       listing.Page
	PageErr    error
	Details    map[string]listing.RawListing
	DetailErrs map[string]error

	Queries     []string
	PageNums    []int
	DetailCalls []string
}

var _ listing.Fetcher = (*Fetcher)(nil)

func (f *Fetcher) FetchPage(ctx context.Context, query string, page int) (listing.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Queries = append(f.Queries, query)
	f.PageNums = append(f.PageNums, page)
	if f.PageErr != nil {
		return listing.Page{}, f.PageErr
	}
	return f.Page, nil
}

func (f *Fetcher) FetchDetail(ctx context.Context, listingURL string) (listing.RawListing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := listing.DetailID(listingURL)
	f.DetailCalls = append(f.DetailCalls, id)
	if err, ok := f.DetailErrs[id]; ok {
		return listing.RawListing{}, err
	}
	if d, ok := f.Details[id]; ok {
		return d, nil
	}
	return listing.RawListing{ID: id}, nil
}

// Calls returns how many page and detail requests were made.
func (f *Fetcher) Calls() (pages, details int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Queries), len(f.DetailCalls)
}

// Ptr is a helper for nullable upstream strings.
func Ptr(s string) *string { return &s }
