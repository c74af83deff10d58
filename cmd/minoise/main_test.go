package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/handiism/minoise/internal/dataset"
	"github.com/handiism/minoise/internal/logging"
	"github.com/handiism/minoise/internal/model"
	"github.com/handiism/minoise/internal/navigation"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand runs the root command with a config path that does not exist, so
// every setting is a default.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd.PersistentFlags())
	for _, sub := range rootCmd.Commands() {
		resetFlags(sub.Flags())
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.json")}, args...))
	err := execute()
	return out.String(), err
}

// resetFlags undoes the previous execution; cobra keeps flag values between
// runs.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestParseProjections(t *testing.T) {
	all, err := parseProjections(nil)
	require.NoError(t, err)
	assert.Equal(t, model.Projections(), all)

	got, err := parseProjections([]string{"umap"})
	require.NoError(t, err)
	assert.Equal(t, []model.Projection{model.ProjectionUMAP}, got)

	_, err = parseProjections([]string{"tsne"})
	assert.True(t, errors.Is(err, model.ErrUnknownProjection))
}

func TestNavigateTo(t *testing.T) {
	ds, err := dataset.NewLoader(dataset.NewEmbeddedSource()).Load(context.Background(), model.ProjectionPCA)
	require.NoError(t, err)

	loaded := func() *navigation.Controller {
		c := navigation.NewController(model.ProjectionPCA)
		c.ApplyLoad(navigation.LoadResult{Request: c.RequestLoad(model.ProjectionPCA), Dataset: ds})
		return c
	}

	c := loaded()
	require.NoError(t, navigateTo(c, ds, "rock", "Iron Meridian"))
	assert.Equal(t, navigation.LevelArtistSelected, c.State().Level())
	assert.Equal(t, "Iron Meridian", c.State().Artist().Name)

	err = navigateTo(loaded(), ds, "polka", "")
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))

	err = navigateTo(loaded(), ds, "rock", "Nobody")
	require.Error(t, err)

	err = navigateTo(loaded(), ds, "", "Iron Meridian")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := runCommand(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in sample")
	assert.Contains(t, out, "✓ pca")
	assert.Contains(t, out, "✓ umap")
	assert.Contains(t, out, "1 track(s) without coordinates")
}

func TestValidateCommand_MissingAssets(t *testing.T) {
	_, err := runCommand(t, "validate", "--data-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2")
}

func TestExecute_ClosesLogOnFailure(t *testing.T) {
	closed := 0
	initLogging = func(opts logging.Options) (func() error, error) {
		return func() error { closed++; return nil }, nil
	}
	t.Cleanup(func() { initLogging = logging.Initialize })

	_, err := runCommand(t, "validate", "--data-dir", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, 1, closed)

	_, err = runCommand(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, 2, closed)
}

func TestInspectCommand(t *testing.T) {
	out, err := runCommand(t, "inspect", "umap")
	require.NoError(t, err)
	assert.Contains(t, out, "UMAP: 5 genres, 20 artists, 100 tracks (99 positioned)")
	assert.Contains(t, out, "Iron Meridian")
}

func TestSnapshotCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rock.png")
	out, err := runCommand(t, "snapshot", "--genre", "rock", "--out", path, "--width", "160", "--height", "90")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
