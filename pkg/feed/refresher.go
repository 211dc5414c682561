// Package feed keeps the landing page job list warm.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/jobs"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/query"
)

// Loader is the part of jobs.UseCase the refresher needs.
type Loader interface {
	Load(ctx context.Context, sel query.Selection, page int) (jobs.Result, error)
}

// Refresher caches the default job list (query.Default(), page 0).
// With a zero interval nothing is cached and Latest always goes upstream.
type Refresher struct {
	loader   Loader
	interval time.Duration
	log      *slog.Logger
	cron     *cron.Cron

	mu     sync.RWMutex
	latest *jobs.Result
	at     time.Time
}

func NewRefresher(loader Loader, interval time.Duration, log *slog.Logger) *Refresher {
	if log == nil {
		log = slog.Default()
	}
	r := &Refresher{loader: loader, interval: interval, log: log}
	if interval > 0 {
		cronLog := cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelDebug))
		r.cron = cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		)
	}
	return r
}

// Start schedules "@every interval" refreshes and kicks off one right away.
func (r *Refresher) Start(ctx context.Context) error {
	if r.cron == nil {
		return nil
	}
	spec := "@every " + r.interval.String()
	if _, err := r.cron.AddFunc(spec, func() { r.refresh(ctx) }); err != nil {
		return fmt.Errorf("schedule feed refresh %q: %w", spec, err)
	}
	r.cron.Start()
	r.log.Info("feed refresher started", "spec", spec)

	go r.refresh(ctx)
	return nil
}

// Stop waits for a running refresh to finish.
func (r *Refresher) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}

// Refresh loads the default list and stores it. On failure the previous list is kept.
func (r *Refresher) Refresh(ctx context.Context) (jobs.Result, error) {
	res, err := r.loader.Load(ctx, query.Default(), 0)
	if err != nil {
		return jobs.Result{}, err
	}
	if r.interval > 0 {
		r.mu.Lock()
		r.latest = &res
		r.at = time.Now()
		r.mu.Unlock()
	}
	return res, nil
}

func (r *Refresher) refresh(ctx context.Context) {
	res, err := r.Refresh(ctx)
	if err != nil {
		r.log.Warn("feed refresh failed", "err", err)
		return
	}
	r.log.Info("feed refreshed", "jobs", len(res.Jobs), "pages", res.Pages)
}

// Latest returns the cached list, loading it synchronously when nothing is cached yet.
func (r *Refresher) Latest(ctx context.Context) (jobs.Result, error) {
	r.mu.RLock()
	cached := r.latest
	r.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}
	return r.Refresh(ctx)
}

// UpdatedAt is the time of the last successful refresh, zero if none.
func (r *Refresher) UpdatedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.at
}
