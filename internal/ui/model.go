package ui

import (
	"fmt"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"bupedit/internal/backend"
	"bupedit/internal/backup"
	"bupedit/internal/logging/events"
	"bupedit/internal/picker"
	"bupedit/internal/theme"
	"bupedit/internal/ui/editor"
	"bupedit/internal/ui/state"
)

// Scene is the active top-level mode. Exactly one scene owns the mutable
// state at any time: the store in the overview, the draft in the editor.
type Scene int

const (
	SceneOverview Scene = iota
	SceneEditor
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model is the scene router. It owns the single source of truth for which
// scene is active and mediates every commit and cancel; the editor never
// reaches the store except through the transitions here.
type Model struct {
	store     *backup.Store
	storePath string
	list      *state.List
	scene     Scene
	editor    *editor.Editor
	prompt    picker.PromptFunc
	watcher   *backend.Watcher

	// storeDirty defers on-disk reloads that arrive while an editor is
	// open; the draft is a disconnected copy, so the reload waits until
	// the scene returns to the overview or a commit needs resolution.
	storeDirty bool

	width   int
	height  int
	errMsg  string
	infoMsg string
	verbose bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the router in the overview scene.
func NewModel(store *backup.Store, storePath string, prompt picker.PromptFunc, width, height int, verbose bool, watcher *backend.Watcher) *Model {
	m := &Model{
		store:     store,
		storePath: storePath,
		prompt:    prompt,
		watcher:   watcher,
		width:     width,
		height:    height,
		verbose:   verbose,
		scene:     SceneOverview,
	}
	m.list = state.NewList(m.storeEntries())
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForWatcherEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages. The active editor sees key and
// picker messages first; everything else routes through the typed handler
// table, and messages with no handler for the current scene are ignored.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if handled, cmd := m.handleActiveEditor(msg); handled {
		return m, cmd
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(editRequestedMsg{}):   m.handleEditRequested,
		reflect.TypeOf(newRequestedMsg{}):    m.handleNewRequested,
		reflect.TypeOf(deleteRequestedMsg{}): m.handleDeleteRequested,
		reflect.TypeOf(commitRequestedMsg{}): m.handleCommitRequested,
		reflect.TypeOf(cancelRequestedMsg{}): m.handleCancelRequested,
		reflect.TypeOf(watcherEventMsg{}):    m.handleWatcherEvent,
		reflect.TypeOf(watcherDoneMsg{}):     m.handleWatcherDone,
		reflect.TypeOf(picker.ResultMsg{}):   m.handleStrayPickerResult,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// handleActiveEditor forwards key and picker messages to the editor while
// it is the active scene, translating its done/cancel outcome into the
// router's typed messages so every transition runs through the table.
func (m *Model) handleActiveEditor(msg tea.Msg) (bool, tea.Cmd) {
	if m.scene != SceneEditor || m.editor == nil {
		return false, nil
	}
	switch msg.(type) {
	case tea.KeyMsg, picker.ResultMsg:
	default:
		return false, nil
	}
	cmd, done, cancel := m.editor.Update(msg)
	if done {
		draft := m.editor.Draft()
		commit := func() tea.Msg { return commitRequestedMsg{draft: draft} }
		if cmd != nil {
			return true, tea.Batch(cmd, commit)
		}
		return true, commit
	}
	if cancel {
		cancelCmd := func() tea.Msg { return cancelRequestedMsg{} }
		if cmd != nil {
			return true, tea.Batch(cmd, cancelCmd)
		}
		return true, cancelCmd
	}
	return true, cmd
}

// Scene reports which scene is active.
func (m *Model) Scene() Scene {
	return m.scene
}

// Store exposes the domain store (tests and the app shutdown path).
func (m *Model) Store() *backup.Store {
	return m.store
}

// Editor exposes the active editor, or nil in the overview.
func (m *Model) Editor() *editor.Editor {
	return m.editor
}

// showInfo surfaces an informational message on the overview. Informational
// feedback is opt-in via the verbose flag; errors always show.
func (m *Model) showInfo(msg string) {
	if !m.verbose {
		return
	}
	m.infoMsg = msg
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	return nil
}

func (m *Model) handleEditRequested(msg tea.Msg) tea.Cmd {
	req, ok := msg.(editRequestedMsg)
	if !ok || m.scene != SceneOverview {
		return nil
	}
	d, err := m.store.Get(req.index)
	if err != nil {
		// UI-generated indices should always resolve; log and stay put.
		m.errMsg = err.Error()
		return nil
	}
	events.Overview.Edit(req.index, d.Name)
	m.editor = editor.Edit(d, m.prompt)
	m.scene = SceneEditor
	m.errMsg = ""
	m.infoMsg = ""
	return m.editor.Init()
}

func (m *Model) handleNewRequested(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(newRequestedMsg); !ok || m.scene != SceneOverview {
		return nil
	}
	events.Overview.New(m.store.Len())
	m.editor = editor.New(m.prompt)
	m.scene = SceneEditor
	m.errMsg = ""
	m.infoMsg = ""
	return m.editor.Init()
}

func (m *Model) handleDeleteRequested(msg tea.Msg) tea.Cmd {
	req, ok := msg.(deleteRequestedMsg)
	if !ok || m.scene != SceneOverview {
		return nil
	}
	d, err := m.store.Get(req.index)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	if err := m.store.Delete(req.index); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	events.Overview.Delete(req.index, d.Name)
	m.refreshList()
	m.showInfo(fmt.Sprintf("Deleted %s", displayName(d.Name)))
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

// handleCommitRequested is the commit step: re-validate the draft, resolve
// the remembered target, and write through. The editor already gated the
// save, but the router does not trust that alone; an invalid draft here is
// surfaced and the editor stays open.
func (m *Model) handleCommitRequested(msg tea.Msg) tea.Cmd {
	req, ok := msg.(commitRequestedMsg)
	if !ok || m.scene != SceneEditor || m.editor == nil {
		return nil
	}
	if errs := backup.Blocking(backup.Verify(req.draft)); len(errs) > 0 {
		m.editor.ShowError(errs[0].Message)
		events.Editor.CommitRejected(errs[0].Message)
		return nil
	}
	if m.storeDirty {
		m.reloadStore()
	}
	// The draft's identity resolves the target. If the directory vanished
	// from the store while the editor was open, the draft is appended
	// rather than silently overwriting whatever now sits at the old index.
	index := m.store.IndexOf(req.draft.ID)
	appended := index < 0
	if appended {
		m.store.Append(req.draft)
	} else if err := m.store.Replace(index, req.draft); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	events.Editor.Commit(req.draft.Name, appended)
	m.closeEditor()
	m.showInfo(fmt.Sprintf("Saved %s", displayName(req.draft.Name)))
	return nil
}

func (m *Model) handleCancelRequested(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(cancelRequestedMsg); !ok || m.scene != SceneEditor {
		return nil
	}
	m.closeEditor()
	return nil
}

// handleStrayPickerResult fires when a chooser answers after the editor
// that asked was torn down. The outcome is discarded harmlessly.
func (m *Model) handleStrayPickerResult(msg tea.Msg) tea.Cmd {
	result, ok := msg.(picker.ResultMsg)
	if !ok {
		return nil
	}
	events.Picker.Discarded(result.Token.String())
	return nil
}

func (m *Model) closeEditor() {
	m.editor = nil
	m.scene = SceneOverview
	if m.storeDirty {
		m.reloadStore()
	}
	m.refreshList()
}

func (m *Model) refreshList() {
	if m.list == nil {
		m.list = state.NewList(m.storeEntries())
		return
	}
	m.list.SetEntries(m.storeEntries())
}

func (m *Model) storeEntries() []state.Entry {
	directories := m.store.List()
	entries := make([]state.Entry, len(directories))
	for i, d := range directories {
		entries[i] = state.Entry{Index: i, Name: d.Name}
	}
	return entries
}

// EditTargetID reports the identity the active editor session will commit
// under; uuid.Nil when no editor is open.
func (m *Model) EditTargetID() uuid.UUID {
	if m.editor == nil {
		return uuid.UUID{}
	}
	return m.editor.ID()
}
