// Package config provides configuration management for minoise.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - MINOISE_* environment overrides
//   - Conversion to a dataset.Source and dataset.RetryPolicy
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// UMAP projection from the built-in sample
//	// 30 frames per second, auto-rotate at 0.8
//	// Camera 12 units from the scene center
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Every key can be overridden from the environment with the MINOISE_
// prefix, e.g. MINOISE_DATA_DIR or MINOISE_FPS.
//
// # Saving Settings
//
//	settings.DataDir = "/srv/minoise"
//	err := settings.Save("/path/to/config.json")
package config
