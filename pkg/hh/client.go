package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
)

const (
	// PerPage is fixed: the front end always shows ten listings per page.
	PerPage = 10
	// Specialization 1 is "Информационные технологии, интернет, телеком".
	Specialization = 1

	defaultBaseURL   = "https://api.hh.ru"
	defaultUserAgent = "nocsdegree/1.0 (admin@nocsdegree.ru)"
)

// Client is a minimal hh.ru vacancies API client. It implements listing.Fetcher.
type Client struct {
	BaseURL   string
	UserAgent string
	httpDo    *http.Client
}

func New(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
		httpDo:    &http.Client{Timeout: timeout},
	}
}

var _ listing.Fetcher = (*Client)(nil)

type searchResponse struct {
	Items *[]listing.RawListing `json:"items"`
	Pages *int                  `json:"pages"`
	Found int                   `json:"found"`
}

// FetchPage requests one page of search results for the query.
func (c *Client) FetchPage(ctx context.Context, query string, page int) (listing.Page, error) {
	params := url.Values{}
	params.Set("text", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(PerPage))
	params.Set("specialization", strconv.Itoa(Specialization))

	body, err := c.get(ctx, c.BaseURL+"/vacancies?"+params.Encode())
	if err != nil {
		return listing.Page{}, err
	}
	var out searchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return listing.Page{}, fmt.Errorf("%w: search response: %w", listing.ErrParse, err)
	}
	if out.Items == nil || out.Pages == nil {
		return listing.Page{}, fmt.Errorf("%w: search response without items/pages", listing.ErrParse)
	}
	return listing.Page{Items: *out.Items, Pages: *out.Pages, Found: out.Found}, nil
}

// FetchDetail requests a single vacancy. listingURL may be any URL whose last path segment is the vacancy id.
func (c *Client) FetchDetail(ctx context.Context, listingURL string) (listing.RawListing, error) {
	id := listing.DetailID(listingURL)
	if id == "" {
		return listing.RawListing{}, fmt.Errorf("%w: no vacancy id in %q", listing.ErrMissingField, listingURL)
	}
	body, err := c.get(ctx, c.BaseURL+"/vacancies/"+url.PathEscape(id))
	if err != nil {
		return listing.RawListing{}, err
	}
	var out listing.RawListing
	if err := json.Unmarshal(body, &out); err != nil {
		return listing.RawListing{}, fmt.Errorf("%w: vacancy %s: %w", listing.ErrParse, id, err)
	}
	if out.ID == "" {
		return listing.RawListing{}, fmt.Errorf("%w: vacancy %s has no id", listing.ErrMissingField, id)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", listing.ErrNetwork, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", listing.ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: hh http %d: %s", listing.ErrNetwork, resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n])
	}
	return string(b)
}
