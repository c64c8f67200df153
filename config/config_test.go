package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvtsp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{config.GroupReal, config.GroupToy, config.GroupMedium}, cfg.Groups())
	assert.Len(t, cfg.InGroup(config.GroupReal), 3)
	assert.Len(t, cfg.InGroup(config.GroupToy), 3)
	assert.Len(t, cfg.InGroup(config.GroupMedium), 12)

	ship, err := cfg.Lookup("shipping")
	require.NoError(t, err)
	assert.True(t, ship.Shipping)
	assert.Equal(t, "Shipping graph", ship.Label())

	real2, err := cfg.Lookup("real-2")
	require.NoError(t, err)
	assert.Equal(t, "real_graphs/graph2/nodes.csv", real2.Nodes)

	_, err = cfg.Lookup("nope")
	assert.ErrorIs(t, err, config.ErrDatasetNotFound)
}

func TestResolve(t *testing.T) {
	cfg := config.Config{DataDir: "/srv/data"}

	d := cfg.Resolve(config.Dataset{Name: "x", Edges: "a/edges.csv", Nodes: "a/nodes.csv"})
	assert.Equal(t, filepath.Join("/srv/data", "a/edges.csv"), d.Edges)
	assert.Equal(t, filepath.Join("/srv/data", "a/nodes.csv"), d.Nodes)

	abs := cfg.Resolve(config.Dataset{Name: "y", Edges: "/tmp/e.csv"})
	assert.Equal(t, "/tmp/e.csv", abs.Edges)
	assert.Empty(t, abs.Nodes)
}

func TestValidate(t *testing.T) {
	cfg := config.Config{Datasets: []config.Dataset{{Name: "a", Edges: "a.csv"}, {Name: "a", Edges: "b.csv"}}}
	assert.ErrorIs(t, cfg.Validate(), config.ErrDuplicateDataset)

	cfg = config.Config{Datasets: []config.Dataset{{Name: "a"}}}
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidDataset)

	cfg = config.Config{LogLevel: "loud"}
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLogLevel)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(dir, "lvtsp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
datasets:
  - name: mine
    group: custom
    edges: mine.csv
    shipping: true
`), 0o644))

	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "data", cfg.DataDir)
	require.Len(t, cfg.Datasets, 1)
	assert.Equal(t, config.Dataset{Name: "mine", Group: "custom", Edges: "mine.csv", Shipping: true}, cfg.Datasets[0])

	require.NoError(t, os.WriteFile(path, []byte("datasets: [ {name: a, edges: a.csv}, {name: a, edges: b.csv} ]"), 0o644))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrDuplicateDataset)

	require.NoError(t, os.WriteFile(path, []byte("log_level: [unterminated"), 0o644))
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lvtsp.yaml")
	want := config.Default()
	want.LogLevel = "warn"

	require.NoError(t, config.Save(path, want))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
