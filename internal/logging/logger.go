// Package logging owns the process-wide structured logger.
//
// Logger starts as a no-op so packages may log before Initialize runs.
// The interactive UI owns the terminal, so it logs to a file; command line
// subcommands log to stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance.
var Logger *zap.SugaredLogger

func init() {
	Logger = nopLogger()
}

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// Options controls where and how logs are written.
type Options struct {
	// File is the log file path. Empty means stderr.
	File string

	// JSON selects the JSON encoder instead of the console encoder.
	JSON bool

	// Verbose enables debug level.
	Verbose bool

	// Session is attached to every entry as the "session" field.
	// Empty means a new random session id.
	Session string
}

// Initialize replaces the global logger. The returned function flushes the
// logger and closes the log file, if any.
func Initialize(opts Options) (func() error, error) {
	var (
		out     io.Writer = os.Stderr
		closeFn           = func() error { return nil }
	)
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		out = f
		closeFn = f.Close
	}

	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}

	session := opts.Session
	if session == "" {
		session = NewSessionID()
	}

	core := zapcore.NewCore(newEncoder(opts.JSON), zapcore.AddSync(out), level)
	Logger = zap.New(core).Sugar().With("session", session)

	return func() error {
		_ = Logger.Sync()
		return closeFn()
	}, nil
}

// NewSessionID returns a random id for correlating the entries of one run.
func NewSessionID() string {
	return uuid.NewString()
}

func newEncoder(json bool) zapcore.Encoder {
	if json {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return zapcore.NewConsoleEncoder(cfg)
}

// Named returns a child of the global logger.
func Named(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Infow logs an info message with key-value pairs.
func Infow(msg string, keysAndValues ...interface{}) {
	Logger.Infow(msg, keysAndValues...)
}

// Warnw logs a warning with key-value pairs.
func Warnw(msg string, keysAndValues ...interface{}) {
	Logger.Warnw(msg, keysAndValues...)
}

// Errorw logs an error with key-value pairs.
func Errorw(msg string, keysAndValues ...interface{}) {
	Logger.Errorw(msg, keysAndValues...)
}

// Debugw logs a debug message with key-value pairs.
func Debugw(msg string, keysAndValues ...interface{}) {
	Logger.Debugw(msg, keysAndValues...)
}
