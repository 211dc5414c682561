package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/jobs"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/query"
)

type countingLoader struct {
	mu    sync.Mutex
	calls int
	sels  []query.Selection
	err   error
}

func (l *countingLoader) Load(_ context.Context, sel query.Selection, page int) (jobs.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	l.sels = append(l.sels, sel)
	if l.err != nil {
		return jobs.Result{}, l.err
	}
	return jobs.Result{Jobs: []jobs.Job{{Name: "job"}}, Pages: l.calls}, nil
}

func (l *countingLoader) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestLatest_NoInterval(t *testing.T) {
	loader := &countingLoader{}
	r := NewRefresher(loader, 0, quiet())
	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()

	first, err := r.Latest(context.Background())
	require.NoError(t, err)
	second, err := r.Latest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first.Pages)
	assert.Equal(t, 2, second.Pages)
	assert.Equal(t, query.Default(), loader.sels[0])
	assert.True(t, r.UpdatedAt().IsZero())
}

func TestLatest_Cached(t *testing.T) {
	loader := &countingLoader{}
	r := NewRefresher(loader, time.Hour, quiet())

	first, err := r.Latest(context.Background())
	require.NoError(t, err)
	second, err := r.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, loader.count())

	_, err = r.Refresh(context.Background())
	require.NoError(t, err)
	third, err := r.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, third.Pages)
	assert.False(t, r.UpdatedAt().IsZero())
}

func TestRefresh_FailureKeepsPrevious(t *testing.T) {
	loader := &countingLoader{}
	r := NewRefresher(loader, time.Hour, quiet())
	_, err := r.Refresh(context.Background())
	require.NoError(t, err)

	loader.err = errors.New("upstream down")
	_, err = r.Refresh(context.Background())
	assert.Error(t, err)

	got, err := r.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Pages)
}

func TestLatest_ErrorWithoutCache(t *testing.T) {
	down := errors.New("upstream down")
	r := NewRefresher(&countingLoader{err: down}, time.Hour, quiet())
	_, err := r.Latest(context.Background())
	assert.ErrorIs(t, err, down)
}

func TestStart_RefreshesImmediately(t *testing.T) {
	loader := &countingLoader{}
	r := NewRefresher(loader, time.Hour, quiet())
	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()

	assert.Eventually(t, func() bool { return !r.UpdatedAt().IsZero() }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, loader.count())
}
