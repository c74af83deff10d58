package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/handiism/minoise/internal/config"
	"github.com/handiism/minoise/internal/logging"
	"github.com/spf13/cobra"
)

// Command line flags shared by every command.
var (
	configPath string
	dataDir    string
	dataURL    string
	verbose    bool
)

var (
	settings   *config.Settings
	closeLogFn = func() error { return nil }

	// initLogging is replaced in tests.
	initLogging = logging.Initialize
)

var rootCmd = &cobra.Command{
	Use:   "minoise",
	Short: "minoise - explore a music dataset in 3D",
	Long: `minoise - explore a music dataset in 3D.

Genres, artists and tracks are placed by a PCA or UMAP projection and can be
drilled into from the terminal.

Examples:
  minoise view                      # Interactive view of the built-in sample
  minoise view --data-dir ./assets  # View assets from a directory
  minoise center                    # Print the scene center per projection
  minoise validate --data-url URL   # Check that every asset loads
  minoise snapshot --genre rock     # Render a PNG of the rock genre`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(configPath)
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		applyFlags(cmd, s)
		settings = s

		// The interactive view owns the terminal.
		opts := logging.Options{JSON: s.LogJSON, Verbose: s.Verbose}
		if cmd.Name() == "view" {
			opts.File = s.LogFile
		}
		closeFn, err := initLogging(opts)
		if err != nil {
			return errors.Wrap(err, "initialize logger")
		}
		closeLogFn = closeFn
		return nil
	},
}

// applyFlags overrides settings with the flags the user actually set.
func applyFlags(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		s.DataDir = dataDir
	}
	if flags.Changed("data-url") {
		s.DataURL = dataURL
	}
	if flags.Changed("verbose") {
		s.Verbose = verbose
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultPath(), "Path to config file")
	flags.StringVar(&dataDir, "data-dir", "", "Directory holding the dataset assets")
	flags.StringVar(&dataURL, "data-url", "", "Base URL serving the dataset assets")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(centerCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// execute runs the root command and closes the log whether or not the
// command failed. Cobra skips post-run hooks after an error.
func execute() error {
	err := rootCmd.Execute()
	closeFn := closeLogFn
	closeLogFn = func() error { return nil }
	if cerr := closeFn(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "close log")
	}
	return err
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "  hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
