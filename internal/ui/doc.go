// Package ui contains the Bubble Tea program that powers the configuration
// editor. The Model type is the scene router: it owns which of the two
// scenes (overview, editor) is active and mediates every transition
// between them.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the editor scene is active, key and picker messages go to the
//     editor first. Its save/cancel outcome is translated into
//     commitRequestedMsg / cancelRequestedMsg so the transition still runs
//     through the typed handler table like every other message.
//   - All other messages route through a map keyed by message type; a
//     message with no handler for the active scene is ignored, never fatal.
//
// State ownership:
//   - The overview reads cloned snapshots of the backup.Store and keeps
//     its cursor/filter/viewport in internal/ui/state.List.
//   - The editor (internal/ui/editor) owns a disconnected draft built
//     from composite rows (internal/ui/state.Rows); it writes back to the
//     store only through the router's commit handler, which re-validates.
//
// Asynchronous work:
//   - Folder choosing runs off-loop via internal/picker commands whose
//     results arrive as picker.ResultMsg, matched to their request by
//     token and discarded when the requesting editor is gone.
//   - internal/backend watches the configuration file; change events are
//     consumed one at a time via a re-subscribing wait command, applied
//     immediately in the overview and deferred while an editor is open.
package ui
