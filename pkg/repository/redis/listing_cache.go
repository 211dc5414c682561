package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
)

const keyPrefix = "hh:vacancy:"

// ListingCache wraps a listing.Fetcher and keeps vacancy details in redis.
// Search pages always go upstream; only FetchDetail is cached.
// Redis failures are logged and the call falls through to the wrapped fetcher.
type ListingCache struct {
	next listing.Fetcher
	rdb  *redis.Client
	ttl  time.Duration
	log  *slog.Logger
}

var _ listing.Fetcher = (*ListingCache)(nil)

func NewListingCache(next listing.Fetcher, rdb *redis.Client, ttl time.Duration, log *slog.Logger) *ListingCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if log == nil {
		log = slog.Default()
	}
	return &ListingCache{next: next, rdb: rdb, ttl: ttl, log: log}
}

func (c *ListingCache) FetchPage(ctx context.Context, query string, page int) (listing.Page, error) {
	return c.next.FetchPage(ctx, query, page)
}

func (c *ListingCache) FetchDetail(ctx context.Context, listingURL string) (listing.RawListing, error) {
	id := listing.DetailID(listingURL)
	if id == "" {
		return c.next.FetchDetail(ctx, listingURL)
	}
	key := keyPrefix + id

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached listing.RawListing
		if jerr := json.Unmarshal(data, &cached); jerr == nil {
			return cached, nil
		}
		c.log.Warn("drop corrupt cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.log.Warn("detail cache get", "key", key, "err", err)
	}

	detail, err := c.next.FetchDetail(ctx, listingURL)
	if err != nil {
		return listing.RawListing{}, err
	}
	if data, err := json.Marshal(detail); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn("detail cache set", "key", key, "err", err)
		}
	}
	return detail, nil
}
