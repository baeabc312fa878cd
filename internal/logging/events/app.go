package events

import "bupedit/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(code int) {
	logging.Trace("app.exit", map[string]interface{}{"code": code})
}

func (AppTracer) StoreLoaded(path string, directories int) {
	logging.Trace("app.store.loaded", map[string]interface{}{"path": path, "directories": directories})
}

func (AppTracer) StoreSaved(path string, directories int) {
	logging.Trace("app.store.saved", map[string]interface{}{"path": path, "directories": directories})
}

func (AppTracer) StoreReloaded(path string, directories int) {
	logging.Trace("app.store.reloaded", map[string]interface{}{"path": path, "directories": directories})
}
