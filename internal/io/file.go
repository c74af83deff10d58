package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// WriteFile writes data to a file, creating the parent directory if
// necessary.
//
// The data is written to a temporary file next to path and renamed into
// place, so a dataset watcher never observes a half-written file.
//
// Example:
//
//	err := WriteFile(ctx, "/tmp/minoise/scene.png", pngBytes)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("AC/DC: Live")   // Returns "AC_DC_ Live"
//	SanitizeFileName("Track...")      // Returns "Track"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// SnapshotName builds a file name from name parts, e.g.
// SnapshotName("png", "umap", "rock", "Iron Meridian") returns
// "minoise_umap_rock_Iron Meridian.png".
func SnapshotName(ext string, parts ...string) string {
	name := "minoise"
	for _, p := range parts {
		if p = SanitizeFileName(p); p != "" {
			name += "_" + p
		}
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
