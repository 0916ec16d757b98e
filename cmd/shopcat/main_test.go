package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcat/store"
	"shopcat/util"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

func TestLoadConfigDefaults(t *testing.T) {

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestLoadConfigOverrides(t *testing.T) {

	path := filepath.Join(t.TempDir(), "shopcat.yaml")
	data := []byte("store:\n  driver: duckdb\n  path: \"\"\n  table: catalog\nheader: [Name, Data Type]\nfrontend: tcell\n")
	require.NoError(t, os.WriteFile(path, data, fileMode))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "duckdb", cfg.Store.Driver)
	assert.Equal(t, "catalog", cfg.Store.Table)
	assert.Equal(t, "tcell", cfg.Frontend)
	assert.Equal(t, []string{"Name", "Data Type"}, cfg.Session.Header)
	assert.Equal(t, defaults.Session.Home, cfg.Session.Home)
	assert.Equal(t, defaults.Log, cfg.Log)
}

func TestSampleRoundTrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "shopcat.yaml")

	written, err := util.SampleConfig(defaults, path, fileMode)
	require.NoError(t, err)
	require.True(t, written)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestOpenStore(t *testing.T) {

	ctx := context.Background()

	cat, err := openStore(StoreConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "_tables"),
		Table:  "_tables",
	}, nopLogger{})
	require.NoError(t, err)
	defer cat.Close()

	require.NoError(t, cat.Seed(ctx, "caine"))
	names, err := store.Load(ctx, cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"caine"}, names)

	_, err = openStore(StoreConfig{Driver: "bogus"}, nopLogger{})
	assert.ErrorContains(t, err, "unknown store driver")
}
