package ui

import (
	"bupedit/internal/backend"
	"bupedit/internal/backup"
)

// editRequestedMsg asks the router to open the editor over the store entry
// at the given index.
type editRequestedMsg struct {
	index int
}

// newRequestedMsg asks the router to open the editor over a fresh empty
// directory.
type newRequestedMsg struct{}

// deleteRequestedMsg removes a store entry directly from the overview.
// Deletion bypasses the editor; removal cannot make the remaining
// configuration invalid.
type deleteRequestedMsg struct {
	index int
}

// commitRequestedMsg carries a draft the editor considers valid. The
// router re-validates before writing it to the store.
type commitRequestedMsg struct {
	draft backup.Directory
}

// cancelRequestedMsg discards the active editor session unconditionally.
type cancelRequestedMsg struct{}

// watcherEventMsg wraps a configuration-file change notification.
type watcherEventMsg struct {
	event backend.Event
}

// watcherDoneMsg signals that the watcher channel closed.
type watcherDoneMsg struct{}
