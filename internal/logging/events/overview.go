package events

import "bupedit/internal/logging"

type OverviewTracer struct{}

var Overview = OverviewTracer{}

func (OverviewTracer) Edit(index int, name string) {
	logging.Trace("overview.edit", map[string]interface{}{"index": index, "name": name})
}

func (OverviewTracer) New(existing int) {
	logging.Trace("overview.new", map[string]interface{}{"existing": existing})
}

func (OverviewTracer) Delete(index int, name string) {
	logging.Trace("overview.delete", map[string]interface{}{"index": index, "name": name})
}

func (OverviewTracer) FilterChanged(filter string, matches int) {
	logging.Trace("overview.filter", map[string]interface{}{"filter": filter, "matches": matches})
}

func (OverviewTracer) FilterCleared() {
	logging.Trace("overview.filter.cleared", nil)
}
