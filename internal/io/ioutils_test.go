package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AC/DC: Live", "AC_DC_ Live"},
		{"Track...", "Track"},
		{"Name   with  spaces ", "Name with spaces"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.input))
		})
	}
}

func TestSnapshotName(t *testing.T) {
	assert.Equal(t, "minoise_umap_rock.png", SnapshotName("png", "umap", "rock", ""))
	assert.Equal(t, "minoise_pca_AC_DC.jpg", SnapshotName(".jpg", "pca", "AC/DC"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.txt")

	require.NoError(t, WriteFile(context.Background(), path, []byte("one")))
	require.NoError(t, WriteFile(context.Background(), path, []byte("two")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    ImageFormat
		wantErr bool
	}{
		{"scene.png", FormatPNG, false},
		{"scene.JPG", FormatJPEG, false},
		{"scene.jpeg", FormatJPEG, false},
		{"scene.webp", 0, true},
		{"scene", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDownscaleAndEncode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}

	small := Downscale(src, 10, 5)
	assert.Equal(t, image.Rect(0, 0, 10, 5), small.Bounds())

	var buf bytes.Buffer
	require.NoError(t, EncodeImage(&buf, small, FormatPNG))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	r, _, _, _ := decoded.At(5, 2).RGBA()
	assert.InDelta(t, 200, r>>8, 2)
}
