package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanrabe/isocontour/config"
	"github.com/yanrabe/isocontour/stitch"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 2, cfg.CandidateRadius)
	assert.Equal(t, "crossed", cfg.SpliceTopology)
	assert.Equal(t, "positive", cfg.NaNPolicy)
	assert.True(t, cfg.NaNTreatedAsPositive())
	assert.Equal(t, stitch.TopologyCrossed, cfg.StitchOptions().Topology)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isocontour.yaml")
	cfg := config.Config{CandidateRadius: 3, SpliceTopology: "cheapest", NaNPolicy: "negative"}

	require.NoError(t, config.Save(path, cfg))
	got, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
	assert.False(t, got.NaNTreatedAsPositive())
	assert.Equal(t, stitch.TopologyCheapest, got.StitchOptions().Topology)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
