package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/janekbaraniewski/mediaplan/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg.Log, os.Getenv("MEDIAPLAN_DEBUG") != ""))

	root := cobra.Command{
		Use:   "mediaplan",
		Short: "mediaplan is a terminal calculator for media budgets and channel performance.",
		Run: func(_ *cobra.Command, _ []string) {
			runDashboard(cfg)
		},
	}

	root.AddCommand(newCalcCommand())
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger discards everything unless debug output was requested, since
// the dashboard owns the terminal.
func newLogger(cfg config.LogConfig, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
