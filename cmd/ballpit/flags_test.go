package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ballpit/internal/config"
	"github.com/zeusync/ballpit/internal/core/world"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseFlagsOverrides(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-width", "320", "-regular", "4", "-monster", "0",
		"-seed", "9", "-max-ticks", "50", "-runs", "3", "-parallel", "2",
		"-log-level", "debug", "-log-format", "json",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Canvas.Width)
	assert.Equal(t, 600, cfg.Canvas.Height)
	assert.Equal(t, world.Population{Regular: 4, Monster: 0, Repellent: 3}, cfg.Population)
	assert.EqualValues(t, 9, cfg.Seed)
	assert.EqualValues(t, 50, cfg.MaxTicks)
	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, 2, cfg.Parallel)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParseFlagsOverConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballpit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas:\n  width: 100\n  height: 80\nseed_phrase: marbles\n"), 0o600))

	cfg, err := parseFlags([]string{"-config", path, "-height", "90"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Canvas.Width, "from file")
	assert.Equal(t, 90, cfg.Canvas.Height, "flag wins over file")
	assert.Equal(t, "marbles", cfg.SeedPhrase)
}

func TestParseFlagsInvalid(t *testing.T) {
	_, err := parseFlags([]string{"-runs", "0"}, io.Discard)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = parseFlags([]string{"-bogus"}, io.Discard)
	assert.Error(t, err)
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", filepath.Join("..", "..", "configs", "ballpit.yaml")}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, world.DefaultPopulation(), cfg.Population)
	assert.Equal(t, "ballpit", cfg.SeedPhrase)
}
