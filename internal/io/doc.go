// Package ioutils provides file system and image output utilities.
//
// This package contains functions for:
//   - Atomic file writing
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//   - Image downscaling and PNG/JPEG encoding for scene snapshots
//
// # File Operations
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "/path/to/scene.png", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("AC/DC: Live") // Returns "AC_DC_ Live"
//
// # Images
//
//	small := ioutils.Downscale(large, 800, 600)
//	format, _ := ioutils.FormatForPath("scene.jpg")
//	err := ioutils.EncodeImage(w, small, format)
package ioutils
