package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bupedit/internal/backend"
	"bupedit/internal/backup"
	"bupedit/internal/logging"
	"bupedit/internal/logging/events"
	"bupedit/internal/picker"
	"bupedit/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	StorePath string
	Chooser   string
	Width     int
	Height    int
	Verbose   bool
	Watch     bool
}

// Run bootstraps and executes the Bubble Tea program. The store loads
// before the program starts and saves after it exits; the UI itself never
// touches the disk.
func Run(cfg Config) error {
	store, err := backup.Load(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	events.App.StoreLoaded(cfg.StorePath, store.Len())

	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(cfg.StorePath, 500*time.Millisecond)
		if err != nil {
			// Watching is best-effort; editing works without it.
			logging.Error(err)
		} else {
			defer watcher.Stop()
		}
	}

	prompt := picker.CommandPrompt(cfg.Chooser)
	model := ui.NewModel(store, cfg.StorePath, prompt, cfg.Width, cfg.Height, cfg.Verbose, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	if m, ok := final.(*ui.Model); ok {
		if err := m.Store().Save(cfg.StorePath); err != nil {
			return fmt.Errorf("save configuration: %w", err)
		}
		events.App.StoreSaved(cfg.StorePath, m.Store().Len())
	}
	return nil
}
