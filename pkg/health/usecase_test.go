package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name  string
	err   error
	calls int
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error {
	s.calls++
	return s.err
}

func TestReady(t *testing.T) {
	db := &stubChecker{name: "sqlite"}
	cache := &stubChecker{name: "redis"}
	assert.NoError(t, NewService(db, cache).Ready(context.Background()))
	assert.Equal(t, 1, db.calls)
	assert.Equal(t, 1, cache.calls)
}

func TestReady_FirstFailureWins(t *testing.T) {
	down := errors.New("connection refused")
	db := &stubChecker{name: "postgres", err: down}
	cache := &stubChecker{name: "redis"}

	err := NewService(db, cache).Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.EqualError(t, err, "postgres: connection refused")
	assert.Zero(t, cache.calls)
}

func TestNewService_SkipsNil(t *testing.T) {
	assert.NoError(t, NewService(nil).Ready(context.Background()))
}
