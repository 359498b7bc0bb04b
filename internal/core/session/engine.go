package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"focustimer/internal/core/model"
)

// ErrInvalidInput indicates a focus duration that is not a positive whole number of minutes.
var ErrInvalidInput = errors.New("invalid input")

// InvalidDurationMessage is the user-facing text attached to EventInvalidInput.
const InvalidDurationMessage = "Please enter a valid positive number!"

// MaxFocusMinutes is the longest focus length whose remaining time fits in a time.Duration.
const MaxFocusMinutes = math.MaxInt64 / int64(time.Minute)

// TickScheduler delivers periodic ticks while the engine is running.
type TickScheduler interface {
	Start(tick func())
	Stop()
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	State     State
	Duration  time.Duration
	Remaining time.Duration
	Progress  float64
}

type subscription struct {
	id       int
	listener Listener
}

// Engine is the focus session state machine.
//
// The engine is not safe for concurrent use: every call, including Tick, must
// come from the same goroutine. Ticker hands ticks to a post function so a UI
// toolkit can run them on its own event loop.
type Engine struct {
	durationSeconds  int
	remainingSeconds int
	state            State
	scheduler        TickScheduler
	listeners        []subscription
	nextListenerID   int
	now              func() time.Time
}

// New creates an idle engine with the provided configuration.
func New(config model.SessionConfig) *Engine {
	if config.FocusMinutes <= 0 || int64(config.FocusMinutes) > MaxFocusMinutes {
		config.FocusMinutes = model.DefaultFocusMinutes
	}

	engine := &Engine{
		durationSeconds: config.FocusMinutes * 60,
		state:           StateIdle,
		now:             time.Now,
	}
	engine.remainingSeconds = engine.durationSeconds
	return engine
}

// SetScheduler injects the tick source. A nil scheduler means ticks are
// delivered by the caller.
func (engine *Engine) SetScheduler(scheduler TickScheduler) {
	engine.scheduler = scheduler
}

// Subscribe registers an observer and returns a function that removes it.
func (engine *Engine) Subscribe(listener Listener) func() {
	engine.nextListenerID++
	id := engine.nextListenerID
	engine.listeners = append(engine.listeners, subscription{id: id, listener: listener})

	return func() {
		for i, sub := range engine.listeners {
			if sub.id == id {
				engine.listeners = append(engine.listeners[:i:i], engine.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetDuration configures a new focus length in minutes and returns to idle.
func (engine *Engine) SetDuration(minutes int) error {
	if minutes <= 0 {
		engine.emit(Event{Type: EventInvalidInput, Message: InvalidDurationMessage})
		return fmt.Errorf("%w: focus minutes must be positive, got %d", ErrInvalidInput, minutes)
	}
	if int64(minutes) > MaxFocusMinutes {
		engine.emit(Event{Type: EventInvalidInput, Message: InvalidDurationMessage})
		return fmt.Errorf("%w: focus minutes must be at most %d, got %d", ErrInvalidInput, MaxFocusMinutes, minutes)
	}

	engine.stopTicks()
	engine.durationSeconds = minutes * 60
	engine.remainingSeconds = engine.durationSeconds
	engine.state = StateIdle

	engine.emit(
		Event{Type: EventDurationSet},
		Event{Type: EventTimeUpdated},
		Event{Type: EventProgressUpdated},
	)
	return nil
}

// SetDurationText parses raw user text as whole minutes and applies it.
func (engine *Engine) SetDurationText(raw string) error {
	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		engine.emit(Event{Type: EventInvalidInput, Message: InvalidDurationMessage})
		return fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, raw)
	}
	return engine.SetDuration(minutes)
}

// Start begins or resumes the countdown. It is allowed from every state; a
// completed session completes again on the next tick.
func (engine *Engine) Start() {
	engine.state = StateRunning
	if engine.scheduler != nil {
		engine.scheduler.Start(engine.Tick)
	}
	engine.emit(Event{Type: EventStarted})
}

// Pause freezes the countdown. It is a no-op when idle or already paused.
func (engine *Engine) Pause() {
	if engine.state == StateIdle || engine.state == StatePaused {
		return
	}
	engine.stopTicks()
	engine.state = StatePaused
	engine.emit(Event{Type: EventPaused})
}

// Reset restores the full duration and returns to idle.
func (engine *Engine) Reset() {
	engine.stopTicks()
	engine.remainingSeconds = engine.durationSeconds
	engine.state = StateIdle

	engine.emit(
		Event{Type: EventReset},
		Event{Type: EventTimeUpdated},
		Event{Type: EventProgressUpdated},
	)
}

// Tick advances a running countdown by one second.
func (engine *Engine) Tick() {
	if engine.state != StateRunning {
		return
	}

	var events []Event
	if engine.remainingSeconds > 0 {
		engine.remainingSeconds--
		events = append(events, Event{Type: EventTimeUpdated}, Event{Type: EventProgressUpdated})
	}
	if engine.remainingSeconds == 0 {
		engine.stopTicks()
		engine.state = StateCompleted
		events = append(events, Event{Type: EventSessionCompleted})
	}
	engine.emit(events...)
}

// Close stops tick delivery and drops all observers.
func (engine *Engine) Close() {
	engine.stopTicks()
	engine.listeners = nil
}

// State returns the current mode.
func (engine *Engine) State() State {
	return engine.state
}

// Duration returns the configured focus length.
func (engine *Engine) Duration() time.Duration {
	return time.Duration(engine.durationSeconds) * time.Second
}

// Remaining returns the time left in the session.
func (engine *Engine) Remaining() time.Duration {
	return time.Duration(engine.remainingSeconds) * time.Second
}

// Progress returns the elapsed fraction of the session in [0,1].
func (engine *Engine) Progress() float64 {
	if engine.durationSeconds <= 0 {
		return 1
	}
	progress := float64(engine.durationSeconds-engine.remainingSeconds) / float64(engine.durationSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Snapshot returns a copy of the current state.
func (engine *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:     engine.state,
		Duration:  engine.Duration(),
		Remaining: engine.Remaining(),
		Progress:  engine.Progress(),
	}
}

func (engine *Engine) stopTicks() {
	if engine.scheduler != nil {
		engine.scheduler.Stop()
	}
}

// emit stamps events with the current state and notifies observers in order.
func (engine *Engine) emit(events ...Event) {
	if len(events) == 0 || len(engine.listeners) == 0 {
		return
	}

	now := engine.now()
	for i := range events {
		events[i].State = engine.state
		events[i].Remaining = engine.Remaining()
		events[i].Progress = engine.Progress()
		events[i].At = now
	}

	listeners := append([]subscription(nil), engine.listeners...)
	for _, event := range events {
		for _, sub := range listeners {
			sub.listener(event)
		}
	}
}
