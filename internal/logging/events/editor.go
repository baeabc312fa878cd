package events

import "bupedit/internal/logging"

type EditorTracer struct{}

type editorReason string

const (
	EditorReasonEscape editorReason = "escape"
)

var Editor = EditorTracer{}

func (EditorTracer) Open(name string, sources, excludes int) {
	logging.Trace("editor.open", map[string]interface{}{"name": name, "sources": sources, "excludes": excludes})
}

func (EditorTracer) OpenNew() {
	logging.Trace("editor.open.new", nil)
}

func (EditorTracer) AddSource(index int) {
	logging.Trace("editor.source.add", map[string]interface{}{"index": index})
}

func (EditorTracer) RemoveSource(index int) {
	logging.Trace("editor.source.remove", map[string]interface{}{"index": index})
}

func (EditorTracer) AddExclude(index int) {
	logging.Trace("editor.exclude.add", map[string]interface{}{"index": index})
}

func (EditorTracer) RemoveExclude(index int) {
	logging.Trace("editor.exclude.remove", map[string]interface{}{"index": index})
}

func (EditorTracer) SaveBlocked(message string) {
	logging.Trace("editor.save.blocked", map[string]interface{}{"message": message})
}

func (EditorTracer) Submit(name string, sources, excludes int) {
	logging.Trace("editor.save.submit", map[string]interface{}{"name": name, "sources": sources, "excludes": excludes})
}

func (EditorTracer) Cancel(reason editorReason) {
	logging.Trace("editor.cancel", map[string]interface{}{"reason": string(reason)})
}

func (EditorTracer) Commit(name string, appended bool) {
	logging.Trace("editor.commit", map[string]interface{}{"name": name, "appended": appended})
}

func (EditorTracer) CommitRejected(message string) {
	logging.Trace("editor.commit.rejected", map[string]interface{}{"message": message})
}
