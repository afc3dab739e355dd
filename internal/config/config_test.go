package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "gallery")
	require.NoError(t, err)
	assert.Equal(t, Default("gallery"), cfg)
	assert.Equal(t, 45, cfg.Gallery.Count)
	assert.Equal(t, "shape-demos - gallery", cfg.Window.Title)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("customizer:\n  width: 2.5\n  wireframe: true\ndebug:\n  show_fps: true\n"), 0644))

	cfg, err := Load(path, "customizer")
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), cfg.Customizer.Width)
	assert.True(t, cfg.Customizer.Wireframe)
	assert.True(t, cfg.Debug.ShowFPS)
	assert.Equal(t, float32(1), cfg.Customizer.Height)
	assert.Equal(t, "#44aa88", cfg.Customizer.Color)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0644))

	cfg, err := Load(path, "customizer")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Equal(t, Default("customizer"), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "customizer.yaml")
	cfg := Default("customizer")
	cfg.Customizer.Color = "#8844aa"
	cfg.Customizer.Depth = 4
	cfg.Font = "Inter"

	require.NoError(t, Save(path, cfg))
	got, err := Load(path, "customizer")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("config", "gallery.yaml"), Path("gallery"))
}
