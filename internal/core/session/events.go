package session

import "time"

// State represents the current focus session mode.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStarted          EventType = "started"
	EventPaused           EventType = "paused"
	EventReset            EventType = "reset"
	EventDurationSet      EventType = "duration_set"
	EventTimeUpdated      EventType = "time_updated"
	EventProgressUpdated  EventType = "progress_updated"
	EventSessionCompleted EventType = "session_completed"
	EventInvalidInput     EventType = "invalid_input"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	State     State
	Remaining time.Duration
	Progress  float64
	Message   string
	At        time.Time
}

// Seconds returns the remaining time in whole seconds.
func (event Event) Seconds() int {
	return int(event.Remaining / time.Second)
}

// Listener receives engine events synchronously.
type Listener func(Event)
