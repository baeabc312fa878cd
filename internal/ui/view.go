package ui

import (
	"fmt"
	"strings"

	"bupedit/internal/ui/editor"
)

const headerTitle = "bupedit"

// View implements tea.Model.
func (m *Model) View() string {
	if m.scene == SceneEditor && m.editor != nil {
		return m.viewEditor()
	}
	return m.viewOverview()
}

func (m *Model) viewOverview() string {
	lines := make([]string, 0, 16)
	lines = append(lines, styles.Header.Render(fmt.Sprintf("%s — %d directories", headerTitle, m.store.Len())))
	lines = append(lines, m.filterLine())
	lines = append(lines, "")

	if len(m.list.Items) == 0 {
		msg := "(no directories — ctrl+n creates one)"
		if m.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		lines = append(lines, styles.Info.Render(msg))
	} else {
		m.syncViewport()
		start := 0
		display := m.list.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(display) > maxItems {
			start = m.list.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(display) {
				start = len(display) - maxItems
			}
			display = display[start : start+maxItems]
		}
		for i, entry := range display {
			selected := start+i == m.list.Cursor
			indicator := "  "
			name := entry.Name
			if strings.TrimSpace(name) == "" {
				name = "(unnamed)"
			}
			if selected {
				indicator = styles.SelectedIndicator.Render("> ")
				lines = append(lines, indicator+styles.SelectedItem.Render(name))
			} else {
				indicator = styles.ItemIndicator.Render("  ")
				lines = append(lines, indicator+styles.Item.Render(name))
			}
		}
	}

	lines = append(lines, "")
	if m.errMsg != "" {
		lines = append(lines, styles.Error.Render(m.errMsg))
	}
	if m.infoMsg != "" {
		lines = append(lines, styles.Info.Render(m.infoMsg))
	}
	lines = append(lines, styles.Footer.Render("enter edit · ctrl+n new · ctrl+d delete · type to filter · esc quit"))
	return strings.Join(lines, "\n")
}

func (m *Model) filterLine() string {
	prompt := styles.FilterPrompt.Render("» ")
	if m.list.Filter == "" {
		return prompt + styles.FilterPlaceholder.Render("(type to filter)")
	}
	return prompt + styles.Filter.Render(m.list.Filter)
}

func (m *Model) viewEditor() string {
	e := m.editor
	lines := make([]string, 0, 24)
	lines = append(lines, styles.Header.Render(e.Title()))
	lines = append(lines, "")
	lines = append(lines, m.editorRow(e, editor.SectionName, -1, styles.Label.Render("Name     "), e.NameView()))

	lines = append(lines, "")
	lines = append(lines, styles.SectionTitle.Render(fmt.Sprintf("Sources (%d)", e.SourceCount())))
	if e.SourceCount() == 0 {
		lines = append(lines, styles.Placeholder.Render("  (none — alt+n adds one)"))
	}
	for i := 0; i < e.SourceCount(); i++ {
		view, awaiting := e.SourceView(i)
		row := m.editorRow(e, editor.SectionSource, i, "", view)
		if awaiting {
			row += " " + styles.Pending.Render("(choosing…)")
		}
		lines = append(lines, row)
	}

	lines = append(lines, "")
	lines = append(lines, styles.SectionTitle.Render(fmt.Sprintf("Excludes (%d)", e.ExcludeCount())))
	if e.ExcludeCount() == 0 {
		lines = append(lines, styles.Placeholder.Render("  (none — alt+x adds one)"))
	}
	for i := 0; i < e.ExcludeCount(); i++ {
		lines = append(lines, m.editorRow(e, editor.SectionExclude, i, "", e.ExcludeView(i)))
	}

	lines = append(lines, "")
	warnings := e.Warnings()
	for _, warning := range warnings {
		lines = append(lines, styles.Warning.Render(warning))
	}
	if err := e.Error(); err != "" {
		lines = append(lines, styles.Error.Render(err))
	}
	if len(warnings) > 0 || e.Error() != "" {
		lines = append(lines, "")
	}
	lines = append(lines, styles.Footer.Render(e.Help()))
	return strings.Join(lines, "\n")
}

func (m *Model) editorRow(e *editor.Editor, section editor.Section, index int, label, view string) string {
	focusedSection, focusedIndex := e.Focused()
	indicator := "  "
	if focusedSection == section && focusedIndex == index {
		indicator = styles.SelectedIndicator.Render("> ")
	}
	return indicator + label + view
}
