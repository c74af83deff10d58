package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/handiism/minoise/internal/dataset"
	"github.com/handiism/minoise/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)

	p, err := settings.InitialProjection()
	require.NoError(t, err)
	assert.Equal(t, model.ProjectionUMAP, p)
	assert.IsType(t, &dataset.EmbeddedSource{}, settings.ToSource())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	want := DefaultSettings()
	want.DataDir = "/srv/minoise"
	want.Projection = "pca"
	want.FPS = 24
	want.AutoRotate = false
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.IsType(t, &dataset.DirSource{}, got.ToSource())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	file := DefaultSettings()
	file.FPS = 24
	require.NoError(t, file.Save(path))

	t.Setenv("MINOISE_FPS", "60")
	t.Setenv("MINOISE_DATA_URL", "https://example.com/minoise")
	t.Setenv("MINOISE_AUTO_ROTATE_SPEED", "1.5")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, got.FPS)
	assert.Equal(t, 1.5, got.AutoRotateSpeed)
	assert.IsType(t, &dataset.HTTPSource{}, got.ToSource())
}

func TestSettings_Conversions(t *testing.T) {
	s := DefaultSettings()

	policy := s.ToRetryPolicy()
	assert.Equal(t, 3, policy.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, policy.Cooldown)
	assert.Equal(t, 4.0, policy.Exponent)

	assert.Equal(t, 300*time.Millisecond, s.WatchDebounce())

	assert.False(t, s.CanWatch())
	s.Watch = true
	assert.False(t, s.CanWatch(), "needs a data directory")
	s.DataDir = "/srv/minoise"
	assert.True(t, s.CanWatch())

	s.Projection = "tsne"
	_, err := s.InitialProjection()
	assert.ErrorIs(t, err, model.ErrUnknownProjection)
}
