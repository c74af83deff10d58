package main

import (
	"fmt"
	"os"

	"github.com/handiism/minoise/internal/config"
	"github.com/handiism/minoise/internal/logging"
	"github.com/handiism/minoise/internal/tui"
)

func main() {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := logging.Initialize(logging.Options{
		File:    settings.LogFile,
		JSON:    settings.LogJSON,
		Verbose: settings.Verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	err = tui.Run(settings)
	_ = closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
