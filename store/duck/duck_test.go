package duck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcat/store"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

func TestNames(t *testing.T) {

	ctx := context.Background()

	dk, err := New("", "_tables", nopLogger{})
	require.NoError(t, err)
	defer dk.Close()

	require.NoError(t, dk.Seed(ctx, "caine", "tigru"))

	names, err := store.Load(ctx, dk)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"caine", "tigru"}, names)
	assert.Equal(t, "duck:memory:_tables", dk.Name())
}

func TestNamesMissingTable(t *testing.T) {

	dk, err := New("", "nope", nopLogger{})
	require.NoError(t, err)
	defer dk.Close()

	_, err = store.Load(context.Background(), dk)
	assert.ErrorIs(t, err, store.ErrCatalogLoad)
}
