// Package picker models a single in-flight "choose a folder" interaction
// with an external chooser program. The chooser runs off the event loop
// via a tea.Cmd; its outcome comes back as a ResultMsg carrying the token
// of the request it answers, so late answers from torn-down editors are
// recognisable and discarded.
package picker

import (
	"fmt"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"bupedit/internal/logging/events"
)

// State enumerates the picker lifecycle.
type State int

const (
	// Idle means no dialog is open for this slot.
	Idle State = iota
	// AwaitingSelection means the chooser is open; further browse
	// requests on this slot are ignored until it answers.
	AwaitingSelection
)

// PromptFunc asks the user for a directory. It blocks until the user
// answers and returns the chosen path, ok=false on cancellation, or an
// error. It always runs inside a tea.Cmd, never on the event loop.
type PromptFunc func() (path string, ok bool, err error)

// ResultMsg reports the outcome of a browse request.
type ResultMsg struct {
	Token     uuid.UUID
	Slot      int
	Path      string
	Cancelled bool
	Err       error
}

// Model tracks one source slot's picker. The zero value is usable once a
// prompt function is set.
type Model struct {
	state  State
	token  uuid.UUID
	prompt PromptFunc
}

// New creates a picker using the given prompt collaborator.
func New(prompt PromptFunc) Model {
	return Model{prompt: prompt}
}

// State returns the current lifecycle state.
func (m *Model) State() State {
	return m.state
}

// Browse starts the chooser for the given slot. While a request is in
// flight the call is a no-op: a second browse on the same slot is ignored,
// not queued.
func (m *Model) Browse(slot int) tea.Cmd {
	if m.state == AwaitingSelection {
		events.Picker.Ignored(slot)
		return nil
	}
	if m.prompt == nil {
		return nil
	}
	token := uuid.New()
	m.state = AwaitingSelection
	m.token = token
	events.Picker.Prompt(slot, token.String())
	prompt := m.prompt
	return func() tea.Msg {
		path, ok, err := prompt()
		if err != nil {
			return ResultMsg{Token: token, Slot: slot, Err: err}
		}
		if !ok {
			return ResultMsg{Token: token, Slot: slot, Cancelled: true}
		}
		return ResultMsg{Token: token, Slot: slot, Path: path}
	}
}

// Accept consumes a result for this picker. It returns the chosen path and
// true only for a matching, non-cancelled, non-errored result; a chooser
// failure comes back as a non-nil error so owners can show it, while a
// cancellation is ("", false, nil). In every case a matching result
// returns the picker to Idle. Results carrying a stale token belong to a
// request this picker no longer owns and are ignored.
func (m *Model) Accept(msg ResultMsg) (string, bool, error) {
	if m.state != AwaitingSelection || msg.Token != m.token {
		events.Picker.Discarded(msg.Token.String())
		return "", false, nil
	}
	m.state = Idle
	m.token = uuid.UUID{}
	switch {
	case msg.Err != nil:
		events.Picker.Error(msg.Slot, msg.Err)
		return "", false, msg.Err
	case msg.Cancelled:
		events.Picker.Cancelled(msg.Slot)
		return "", false, nil
	default:
		events.Picker.Resolved(msg.Slot, msg.Path)
		return msg.Path, true, nil
	}
}

// CommandPrompt builds a PromptFunc that shells out to an external chooser
// such as `zenity --file-selection --directory`. The command must print the
// chosen path on stdout; exit status 1 means the user cancelled.
func CommandPrompt(command string) PromptFunc {
	fields := strings.Fields(command)
	return func() (string, bool, error) {
		if len(fields) == 0 {
			return "", false, fmt.Errorf("no folder chooser configured")
		}
		out, err := exec.Command(fields[0], fields[1:]...).Output()
		if err != nil {
			if exitErr, okErr := err.(*exec.ExitError); okErr && exitErr.ExitCode() == 1 {
				return "", false, nil
			}
			return "", false, fmt.Errorf("folder chooser %s: %w", fields[0], err)
		}
		path := strings.TrimSpace(string(out))
		if path == "" {
			return "", false, nil
		}
		return path, true, nil
	}
}
