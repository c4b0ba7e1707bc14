package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janekbaraniewski/mediaplan/internal/config"
	"github.com/janekbaraniewski/mediaplan/internal/tui"
)

func runDashboard(cfg config.Config) {
	if err := tui.LoadThemes(config.ConfigDir()); err != nil {
		slog.Debug("loading external themes", "error", err)
	}

	model := tui.NewModel(cfg)
	model.SetOnThemeChange(config.SaveTheme)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program := tea.NewProgram(model, tea.WithAltScreen())

	if err := config.Watch(ctx, config.ConfigPath(), func(next config.Config) {
		program.Send(tui.ConfigMsg(next))
	}); err != nil {
		slog.Debug("config watcher disabled", "error", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		slog.Error("TUI error", "error", err)
		os.Exit(1)
	}
}
