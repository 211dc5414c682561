package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDSN(t *testing.T) {
	assert.True(t, IsDSN("sqlite://nocsdegree.db"))
	assert.False(t, IsDSN("postgres://user@localhost/db"))
	assert.False(t, IsDSN(""))
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.db")
	db, err := Open(context.Background(), Scheme+path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE t (x INTEGER)`)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestOpen_Empty(t *testing.T) {
	_, err := Open(context.Background(), Scheme)
	assert.Error(t, err)
}
