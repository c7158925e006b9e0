package core

// EventKind names something notable that happened during a tick.
type EventKind string

const (
	EventCollect    EventKind = "collect"
	EventBatchReset EventKind = "batch_reset"
	EventItemLanded EventKind = "item_landed"
	EventScene      EventKind = "scene"
)

// Event is reported by games through StepResult so the platform can log
// gameplay without games depending on a logger.
type Event struct {
	Kind   EventKind
	Score  int    // Score at the time of the event
	Detail string // Free-form detail, e.g. the scene key
}
