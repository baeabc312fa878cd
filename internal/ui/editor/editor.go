// Package editor implements the directory editor scene: a draft copy of
// one backup directory plus all of its per-field interaction state, edited
// in place and handed back to the router only on a validated save.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"bupedit/internal/backup"
	"bupedit/internal/logging/events"
	"bupedit/internal/picker"
	"bupedit/internal/ui/state"
)

// sourceRow holds one source path together with every piece of its UI
// state. Row granularity is what keeps the draft and its interaction state
// aligned: adding or removing a source is one Rows operation, never a set
// of parallel pushes that can be half-forgotten.
type sourceRow struct {
	input  textinput.Model
	picker picker.Model
}

type excludeRow struct {
	input textinput.Model
}

// Section identifies what currently has focus inside the editor.
type Section int

const (
	SectionName Section = iota
	SectionSource
	SectionExclude
)

// Editor is the edit-one-directory scene. It owns a disconnected draft;
// nothing here touches the store.
type Editor struct {
	id       uuid.UUID
	isNew    bool
	name     textinput.Model
	sources  state.Rows[sourceRow]
	excludes state.Rows[excludeRow]
	prompt   picker.PromptFunc

	// focus indexes the dynamic focus order: name, then each source row,
	// then each exclude row.
	focus int
	err   string
}

// New creates an editor over a fresh empty directory.
func New(prompt picker.PromptFunc) *Editor {
	e := newEditor(backup.NewDirectory(), prompt)
	e.isNew = true
	events.Editor.OpenNew()
	return e
}

// Edit creates an editor over a clone of the given directory. The caller
// passes a copy; the editor never holds a reference into the store.
func Edit(d backup.Directory, prompt picker.PromptFunc) *Editor {
	e := newEditor(d.Clone(), prompt)
	events.Editor.Open(d.Name, len(d.Sources), len(d.Excludes))
	return e
}

func newEditor(d backup.Directory, prompt picker.PromptFunc) *Editor {
	e := &Editor{id: d.ID, prompt: prompt}
	e.name = textinput.New()
	e.name.Placeholder = "Name"
	e.name.CharLimit = 128
	e.name.SetValue(d.Name)
	for _, source := range d.Sources {
		e.sources.Append(e.newSourceRow(source))
	}
	for _, exclude := range d.Excludes {
		e.excludes.Append(e.newExcludeRow(exclude))
	}
	e.name.Focus()
	return e
}

func (e *Editor) newSourceRow(value string) sourceRow {
	ti := textinput.New()
	ti.Placeholder = "/path/to/folder"
	ti.CharLimit = 1024
	ti.SetValue(value)
	return sourceRow{input: ti, picker: picker.New(e.prompt)}
}

func (e *Editor) newExcludeRow(value string) excludeRow {
	ti := textinput.New()
	ti.Placeholder = "glob pattern, e.g. *.tmp"
	ti.CharLimit = 512
	ti.SetValue(value)
	return excludeRow{input: ti}
}

// IsNew reports whether the editor was opened for a directory that does
// not exist in the store yet.
func (e *Editor) IsNew() bool {
	return e.isNew
}

// ID returns the identity of the directory being edited.
func (e *Editor) ID() uuid.UUID {
	return e.id
}

// Error returns the validation message currently shown, if any.
func (e *Editor) Error() string {
	return e.err
}

// Warnings lists the non-blocking validation notes for the current draft,
// such as duplicate sources. They never gate a save.
func (e *Editor) Warnings() []string {
	var out []string
	for _, v := range backup.Verify(e.Draft()) {
		if v.Warning {
			out = append(out, v.Message)
		}
	}
	return out
}

// ShowError surfaces a message in the editor without ending the session.
// The router uses it when its own commit-time re-check rejects a draft.
func (e *Editor) ShowError(msg string) {
	e.err = msg
}

// Draft materialises the current draft as a plain directory value.
func (e *Editor) Draft() backup.Directory {
	return backup.Directory{
		ID:   e.id,
		Name: e.name.Value(),
		Sources: state.Map(&e.sources, func(row *sourceRow) string {
			return row.input.Value()
		}),
		Excludes: state.Map(&e.excludes, func(row *excludeRow) string {
			return row.input.Value()
		}),
	}
}

// SourceCount reports the number of source rows.
func (e *Editor) SourceCount() int {
	return e.sources.Len()
}

// ExcludeCount reports the number of exclude rows.
func (e *Editor) ExcludeCount() int {
	return e.excludes.Len()
}

// Focused reports which section has focus and, for row sections, the row
// index.
func (e *Editor) Focused() (Section, int) {
	switch {
	case e.focus == 0:
		return SectionName, -1
	case e.focus <= e.sources.Len():
		return SectionSource, e.focus - 1
	default:
		return SectionExclude, e.focus - 1 - e.sources.Len()
	}
}

func (e *Editor) focusCount() int {
	return 1 + e.sources.Len() + e.excludes.Len()
}

func (e *Editor) clampFocus() {
	if e.focus < 0 {
		e.focus = 0
	}
	if max := e.focusCount() - 1; e.focus > max {
		e.focus = max
	}
}

func (e *Editor) moveFocus(delta int) tea.Cmd {
	n := e.focusCount()
	e.focus = ((e.focus+delta)%n + n) % n
	return e.applyFocus()
}

func (e *Editor) setFocus(index int) tea.Cmd {
	e.focus = index
	e.clampFocus()
	return e.applyFocus()
}

// applyFocus blurs every input and focuses the one the focus index names.
func (e *Editor) applyFocus() tea.Cmd {
	e.name.Blur()
	e.sources.Each(func(_ int, row *sourceRow) { row.input.Blur() })
	e.excludes.Each(func(_ int, row *excludeRow) { row.input.Blur() })
	section, index := e.Focused()
	switch section {
	case SectionName:
		return e.name.Focus()
	case SectionSource:
		var cmd tea.Cmd
		_ = e.sources.UpdateAt(index, func(row *sourceRow) {
			cmd = row.input.Focus()
		})
		return cmd
	default:
		var cmd tea.Cmd
		_ = e.excludes.UpdateAt(index, func(row *excludeRow) {
			cmd = row.input.Focus()
		})
		return cmd
	}
}

// Init returns the initial focus command.
func (e *Editor) Init() tea.Cmd {
	return e.applyFocus()
}

// Update processes one message. It follows the form protocol used across
// the UI: done reports a validated save (the caller should commit the
// draft), cancel reports an unconditional cancel (the caller should
// discard it). Edits are always permitted, including while a validation
// message is showing.
func (e *Editor) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	switch m := msg.(type) {
	case picker.ResultMsg:
		return e.handlePickerResult(m), false, false
	case tea.KeyMsg:
		return e.handleKey(m)
	}
	return nil, false, false
}

func (e *Editor) handleKey(msg tea.KeyMsg) (tea.Cmd, bool, bool) {
	switch msg.String() {
	case "esc":
		events.Editor.Cancel(events.EditorReasonEscape)
		return nil, false, true
	case "ctrl+s":
		draft := e.Draft()
		if errs := backup.Blocking(backup.Verify(draft)); len(errs) > 0 {
			e.err = errs[0].Message
			events.Editor.SaveBlocked(e.err)
			return nil, false, false
		}
		e.err = ""
		events.Editor.Submit(draft.Name, len(draft.Sources), len(draft.Excludes))
		return nil, true, false
	case "tab", "down":
		return e.moveFocus(1), false, false
	case "shift+tab", "up":
		return e.moveFocus(-1), false, false
	case "alt+n":
		return e.addSource(), false, false
	case "alt+x":
		return e.addExclude(), false, false
	case "ctrl+d":
		return e.removeFocusedRow(), false, false
	case "ctrl+o":
		return e.browseFocusedSource(), false, false
	}
	return e.updateFocusedInput(msg), false, false
}

// addSource appends an empty source row: the domain value and all of its
// shadow state arrive together in one append.
func (e *Editor) addSource() tea.Cmd {
	index := e.sources.Append(e.newSourceRow(""))
	e.err = ""
	events.Editor.AddSource(index)
	return e.setFocus(1 + index)
}

func (e *Editor) addExclude() tea.Cmd {
	index := e.excludes.Append(e.newExcludeRow(""))
	e.err = ""
	events.Editor.AddExclude(index)
	return e.setFocus(1 + e.sources.Len() + index)
}

// removeFocusedRow removes the row under focus. The row carries its own
// interaction state, so one RemoveAt retires value, input buffer, and any
// in-flight picker at once; a late picker answer for the removed row is
// discarded by its token.
func (e *Editor) removeFocusedRow() tea.Cmd {
	section, index := e.Focused()
	switch section {
	case SectionSource:
		if err := e.sources.RemoveAt(index); err != nil {
			return nil
		}
		e.err = ""
		events.Editor.RemoveSource(index)
	case SectionExclude:
		if err := e.excludes.RemoveAt(index); err != nil {
			return nil
		}
		e.err = ""
		events.Editor.RemoveExclude(index)
	default:
		return nil
	}
	e.clampFocus()
	return e.applyFocus()
}

func (e *Editor) browseFocusedSource() tea.Cmd {
	section, index := e.Focused()
	if section != SectionSource {
		return nil
	}
	var cmd tea.Cmd
	_ = e.sources.UpdateAt(index, func(row *sourceRow) {
		cmd = row.picker.Browse(index)
	})
	return cmd
}

// handlePickerResult routes a chooser answer to the row that asked for it.
// Rows may have shifted since the request went out, so the owner is found
// by token, not by the slot index captured at browse time.
func (e *Editor) handlePickerResult(msg picker.ResultMsg) tea.Cmd {
	owner := -1
	e.sources.Each(func(i int, row *sourceRow) {
		if row.picker.Token() == msg.Token {
			owner = i
		}
	})
	if owner < 0 {
		events.Picker.Discarded(msg.Token.String())
		return nil
	}
	_ = e.sources.UpdateAt(owner, func(row *sourceRow) {
		path, ok, err := row.picker.Accept(msg)
		switch {
		case err != nil:
			// A broken chooser must not look like a quiet cancel.
			e.err = "Folder chooser failed: " + err.Error()
		case ok:
			row.input.SetValue(path)
			row.input.CursorEnd()
			e.err = ""
		}
	})
	return nil
}

func (e *Editor) updateFocusedInput(msg tea.KeyMsg) tea.Cmd {
	section, index := e.Focused()
	var cmd tea.Cmd
	before := ""
	after := ""
	switch section {
	case SectionName:
		before = e.name.Value()
		e.name, cmd = e.name.Update(msg)
		after = e.name.Value()
	case SectionSource:
		_ = e.sources.UpdateAt(index, func(row *sourceRow) {
			before = row.input.Value()
			row.input, cmd = row.input.Update(msg)
			after = row.input.Value()
		})
	case SectionExclude:
		_ = e.excludes.UpdateAt(index, func(row *excludeRow) {
			before = row.input.Value()
			row.input, cmd = row.input.Update(msg)
			after = row.input.Value()
		})
	}
	if before != after {
		e.err = ""
	}
	return cmd
}

// SetName replaces the draft's name directly. Used by programmatic
// callers; interactive edits flow through the focused input.
func (e *Editor) SetName(name string) {
	e.name.SetValue(name)
	e.name.CursorEnd()
	e.err = ""
}

// SetSource replaces only the domain value of source row i.
func (e *Editor) SetSource(i int, path string) error {
	err := e.sources.UpdateAt(i, func(row *sourceRow) {
		row.input.SetValue(path)
		row.input.CursorEnd()
	})
	if err == nil {
		e.err = ""
	}
	return err
}

// SetExclude replaces only the domain value of exclude row i.
func (e *Editor) SetExclude(i int, pattern string) error {
	err := e.excludes.UpdateAt(i, func(row *excludeRow) {
		row.input.SetValue(pattern)
		row.input.CursorEnd()
	})
	if err == nil {
		e.err = ""
	}
	return err
}

// Title names the editor pane for rendering.
func (e *Editor) Title() string {
	if e.isNew {
		return "New Directory"
	}
	name := strings.TrimSpace(e.name.Value())
	if name == "" {
		return "Edit Directory"
	}
	return "Edit " + name
}

// NameView renders the name input.
func (e *Editor) NameView() string {
	return e.name.View()
}

// SourceView renders source row i and reports whether its picker is
// waiting on the external chooser.
func (e *Editor) SourceView(i int) (string, bool) {
	row, err := e.sources.At(i)
	if err != nil {
		return "", false
	}
	return row.input.View(), row.picker.State() == picker.AwaitingSelection
}

// ExcludeView renders exclude row i.
func (e *Editor) ExcludeView(i int) string {
	row, err := e.excludes.At(i)
	if err != nil {
		return ""
	}
	return row.input.View()
}

// SourcePickerState exposes the picker state for source row i.
func (e *Editor) SourcePickerState(i int) picker.State {
	row, err := e.sources.At(i)
	if err != nil {
		return picker.Idle
	}
	return row.picker.State()
}

// Help is the editor footer hint line.
func (e *Editor) Help() string {
	return "tab/shift+tab move · alt+n add source · alt+x add exclude · ctrl+d remove · ctrl+o browse · ctrl+s save · esc cancel"
}
