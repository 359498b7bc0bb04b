package audio

import (
	"context"
	"log"

	"focustimer/internal/core/session"
)

// CompletionMessage is shown when a focus session ends.
const CompletionMessage = "Focus session over!"

var cues = map[session.EventType]Cue{
	session.EventStarted: CueSessionStart,
	session.EventPaused:  CueSessionStart,
	session.EventReset:   CueSessionStart,
}

// CueFor returns the cue for an engine event, if any.
func CueFor(eventType session.EventType) (Cue, bool) {
	cue, ok := cues[eventType]
	return cue, ok
}

// Dispatcher turns engine events into cues and notifications.
type Dispatcher struct {
	ctx      context.Context
	player   Player
	notifier Notifier
}

// NewDispatcher creates a dispatcher. Either collaborator may be nil.
func NewDispatcher(ctx context.Context, player Player, notifier Notifier) *Dispatcher {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Dispatcher{
		ctx:      ctx,
		player:   player,
		notifier: notifier,
	}
}

// Handle is a session.Listener.
func (dispatcher *Dispatcher) Handle(event session.Event) {
	switch event.Type {
	case session.EventSessionCompleted:
		if dispatcher.notifier != nil {
			dispatcher.notifier.Notify(CompletionMessage)
		}
		return
	case session.EventInvalidInput:
		if dispatcher.notifier != nil {
			dispatcher.notifier.Alert(event.Message)
		}
		return
	}

	cue, ok := CueFor(event.Type)
	if !ok || dispatcher.player == nil {
		return
	}
	if err := dispatcher.player.Play(dispatcher.ctx, cue.FileName()); err != nil {
		log.Printf("audio cue %s: %v", cue, err)
	}
}
