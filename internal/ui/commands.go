package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"bupedit/internal/backend"
	"bupedit/internal/backup"
	"bupedit/internal/logging"
	"bupedit/internal/logging/events"
)

// waitForWatcherEvent blocks on the watcher channel inside a tea.Cmd and
// re-subscribes after every delivery, keeping exactly one reader alive.
func waitForWatcherEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return watcherDoneMsg{}
		}
		return watcherEventMsg{event: evt}
	}
}

// handleWatcherEvent reacts to the configuration file changing on disk.
// In the overview the store reloads immediately; while an editor is open
// the reload is deferred so the draft keeps editing a stable copy.
func (m *Model) handleWatcherEvent(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(watcherEventMsg)
	if !ok {
		return nil
	}
	if eventMsg.event.Err != nil {
		logging.Error(eventMsg.event.Err)
	} else if m.scene == SceneEditor {
		m.storeDirty = true
	} else {
		m.reloadStore()
		m.refreshList()
	}
	if m.watcher != nil {
		return waitForWatcherEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleWatcherDone(msg tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// reloadStore replaces the store contents from disk. Failures keep the
// in-memory state; the user's working set wins over a half-written file.
func (m *Model) reloadStore() {
	m.storeDirty = false
	if m.storePath == "" {
		return
	}
	loaded, err := backup.Load(m.storePath)
	if err != nil {
		logging.Error(err)
		return
	}
	m.store.SetAll(loaded.List())
	events.App.StoreReloaded(m.storePath, m.store.Len())
	m.showInfo(fmt.Sprintf("Reloaded %d directories from disk", m.store.Len()))
}
