package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/handiism/minoise/internal/dataset"
	"github.com/handiism/minoise/internal/model"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override,
// e.g. MINOISE_PROJECTION=pca.
const EnvPrefix = "MINOISE"

// Settings holds all configuration options.
type Settings struct {
	// Dataset settings
	DataDir            string  `json:"data_dir" mapstructure:"data_dir"`
	DataURL            string  `json:"data_url" mapstructure:"data_url"`
	Projection         string  `json:"projection" mapstructure:"projection"`
	FetchMaxRetries    int     `json:"fetch_max_retries" mapstructure:"fetch_max_retries"`
	FetchRetryCooldown float64 `json:"fetch_retry_cooldown" mapstructure:"fetch_retry_cooldown"`
	FetchRetryExponent float64 `json:"fetch_retry_exponent" mapstructure:"fetch_retry_exponent"`
	PreloadConcurrency int     `json:"preload_concurrency" mapstructure:"preload_concurrency"`

	// Scene settings
	FPS             int     `json:"fps" mapstructure:"fps"`
	AutoRotate      bool    `json:"auto_rotate" mapstructure:"auto_rotate"`
	AutoRotateSpeed float64 `json:"auto_rotate_speed" mapstructure:"auto_rotate_speed"`
	CameraDistance  float64 `json:"camera_distance" mapstructure:"camera_distance"`
	GenreScale      float64 `json:"genre_scale" mapstructure:"genre_scale"`

	// Hot reload settings
	Watch           bool `json:"watch" mapstructure:"watch"`
	WatchDebounceMs int  `json:"watch_debounce_ms" mapstructure:"watch_debounce_ms"`

	// Log settings
	LogFile string `json:"log_file" mapstructure:"log_file"`
	LogJSON bool   `json:"log_json" mapstructure:"log_json"`
	Verbose bool   `json:"verbose" mapstructure:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataDir:            "",
		DataURL:            "",
		Projection:         model.DefaultProjection.String(),
		FetchMaxRetries:    3,
		FetchRetryCooldown: 0.2,
		FetchRetryExponent: 4.0,
		PreloadConcurrency: 2,

		FPS:             30,
		AutoRotate:      true,
		AutoRotateSpeed: 0.8,
		CameraDistance:  12,
		GenreScale:      3,

		Watch:           false,
		WatchDebounceMs: 300,

		LogFile: filepath.Join(os.TempDir(), "minoise.log"),
		LogJSON: false,
		Verbose: false,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "minoise", "config.json")
}

// Load reads settings from a JSON file, applying MINOISE_* environment
// overrides on top. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "read config %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat config %s", path)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.Wrapf(err, "unmarshal config %s", path)
	}

	return settings, nil
}

// newViper creates a viper instance carrying every default and bound to the
// environment.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// SetDefaults registers every default setting with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultSettings()

	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("data_url", d.DataURL)
	v.SetDefault("projection", d.Projection)
	v.SetDefault("fetch_max_retries", d.FetchMaxRetries)
	v.SetDefault("fetch_retry_cooldown", d.FetchRetryCooldown)
	v.SetDefault("fetch_retry_exponent", d.FetchRetryExponent)
	v.SetDefault("preload_concurrency", d.PreloadConcurrency)

	v.SetDefault("fps", d.FPS)
	v.SetDefault("auto_rotate", d.AutoRotate)
	v.SetDefault("auto_rotate_speed", d.AutoRotateSpeed)
	v.SetDefault("camera_distance", d.CameraDistance)
	v.SetDefault("genre_scale", d.GenreScale)

	v.SetDefault("watch", d.Watch)
	v.SetDefault("watch_debounce_ms", d.WatchDebounceMs)

	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_json", d.LogJSON)
	v.SetDefault("verbose", d.Verbose)
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// InitialProjection parses the configured projection.
func (s *Settings) InitialProjection() (model.Projection, error) {
	return model.ParseProjection(s.Projection)
}

// ToRetryPolicy converts the fetch settings to a dataset.RetryPolicy.
func (s *Settings) ToRetryPolicy() dataset.RetryPolicy {
	return dataset.RetryPolicy{
		MaxRetries: s.FetchMaxRetries,
		Cooldown:   time.Duration(s.FetchRetryCooldown * float64(time.Second)),
		Exponent:   s.FetchRetryExponent,
	}
}

// ToSource picks the dataset source: the base URL when set, then the data
// directory, then the built-in sample.
func (s *Settings) ToSource() dataset.Source {
	switch {
	case s.DataURL != "":
		return dataset.NewHTTPSource(s.DataURL, s.ToRetryPolicy())
	case s.DataDir != "":
		return dataset.NewDirSource(s.DataDir)
	default:
		return dataset.NewEmbeddedSource()
	}
}

// WatchDebounce returns the watcher debounce window.
func (s *Settings) WatchDebounce() time.Duration {
	return time.Duration(s.WatchDebounceMs) * time.Millisecond
}

// CanWatch reports whether hot reload applies: it needs a data directory
// and the watch flag.
func (s *Settings) CanWatch() bool {
	return s.Watch && s.DataURL == "" && s.DataDir != ""
}
