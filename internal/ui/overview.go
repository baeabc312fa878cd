package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"bupedit/internal/logging/events"
)

// handleKeyMsg owns overview keyboard input. Editor keys never reach here;
// the active editor intercepts them in Update.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.scene != SceneOverview {
		return nil
	}
	switch key.String() {
	case "esc":
		// First esc clears the filter, a second quits.
		if m.list.Filter != "" {
			m.clearFilter()
			return nil
		}
		return tea.Quit
	case "ctrl+u":
		m.clearFilter()
		return nil
	case "ctrl+n":
		return func() tea.Msg { return newRequestedMsg{} }
	case "ctrl+d":
		if entry, ok := m.list.Current(); ok {
			index := entry.Index
			return func() tea.Msg { return deleteRequestedMsg{index: index} }
		}
		return nil
	case "enter":
		if entry, ok := m.list.Current(); ok {
			index := entry.Index
			return func() tea.Msg { return editRequestedMsg{index: index} }
		}
		return nil
	}
	switch key.Type {
	case tea.KeyUp:
		m.list.MoveCursorUp()
		m.syncViewport()
	case tea.KeyDown:
		m.list.MoveCursorDown()
		m.syncViewport()
	case tea.KeyHome:
		m.list.MoveCursorHome()
		m.syncViewport()
	case tea.KeyEnd:
		m.list.MoveCursorEnd()
		m.syncViewport()
	case tea.KeyPgUp:
		m.list.MoveCursorPageUp(m.maxVisibleItems())
		m.syncViewport()
	case tea.KeyPgDown:
		m.list.MoveCursorPageDown(m.maxVisibleItems())
		m.syncViewport()
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.list.DeleteFilterRune() {
			m.errMsg = ""
			m.infoMsg = ""
			events.Overview.FilterChanged(m.list.Filter, len(m.list.Items))
			m.syncViewport()
		}
	case tea.KeySpace:
		m.appendToFilter(" ")
	case tea.KeyRunes:
		if key.Alt {
			return nil
		}
		for _, r := range key.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.appendToFilter(string(key.Runes))
	}
	return nil
}

func (m *Model) appendToFilter(text string) {
	if !m.list.AppendFilter(text) {
		return
	}
	m.errMsg = ""
	m.infoMsg = ""
	events.Overview.FilterChanged(m.list.Filter, len(m.list.Items))
	m.syncViewport()
}

func (m *Model) clearFilter() {
	if !m.list.ClearFilter() {
		return
	}
	m.errMsg = ""
	m.infoMsg = ""
	events.Overview.FilterCleared()
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

// maxVisibleItems is the number of list rows that fit between the header
// and the footer.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 0
	}
	reserved := 5 // header, filter row, padding, footer
	visible := m.height - reserved
	if visible < 1 {
		visible = 1
	}
	return visible
}
