package events

import "bupedit/internal/logging"

type PickerTracer struct{}

var Picker = PickerTracer{}

func (PickerTracer) Prompt(slot int, token string) {
	logging.Trace("picker.prompt", map[string]interface{}{"slot": slot, "token": token})
}

func (PickerTracer) Ignored(slot int) {
	logging.Trace("picker.prompt.ignored", map[string]interface{}{"slot": slot})
}

func (PickerTracer) Resolved(slot int, path string) {
	logging.Trace("picker.resolved", map[string]interface{}{"slot": slot, "path": path})
}

func (PickerTracer) Cancelled(slot int) {
	logging.Trace("picker.cancelled", map[string]interface{}{"slot": slot})
}

func (PickerTracer) Error(slot int, err error) {
	if err == nil {
		return
	}
	logging.Trace("picker.error", map[string]interface{}{"slot": slot, "error": err.Error()})
}

func (PickerTracer) Discarded(token string) {
	logging.Trace("picker.discarded", map[string]interface{}{"token": token})
}
