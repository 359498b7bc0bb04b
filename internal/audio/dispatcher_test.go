package audio

import (
	"context"
	"errors"
	"testing"

	"focustimer/internal/core/model"
	"focustimer/internal/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPlayer struct {
	played  []string
	looping []string
	stops   int
	err     error
}

func (p *recordingPlayer) Play(_ context.Context, fileName string) error {
	p.played = append(p.played, fileName)
	return p.err
}

func (p *recordingPlayer) PlayLooping(_ context.Context, fileName string) error {
	p.looping = append(p.looping, fileName)
	return p.err
}

func (p *recordingPlayer) Stop() {
	p.stops++
}

type recordingNotifier struct {
	notices []string
	alerts  []string
}

func (n *recordingNotifier) Notify(message string) {
	n.notices = append(n.notices, message)
}

func (n *recordingNotifier) Alert(message string) {
	n.alerts = append(n.alerts, message)
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event  session.EventType
		want   Cue
		wantOK bool
	}{
		{event: session.EventStarted, want: CueSessionStart, wantOK: true},
		{event: session.EventPaused, want: CueSessionStart, wantOK: true},
		{event: session.EventReset, want: CueSessionStart, wantOK: true},
		{event: session.EventSessionCompleted},
		{event: session.EventTimeUpdated},
		{event: session.EventProgressUpdated},
		{event: session.EventDurationSet},
		{event: session.EventInvalidInput},
	}

	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			cue, ok := CueFor(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, cue)
		})
	}
}

func TestCue_FileName(t *testing.T) {
	assert.Equal(t, "session_start.wav", CueSessionStart.FileName())
}

func TestDispatcher_PlaysCuesForEngineCommands(t *testing.T) {
	player := &recordingPlayer{}
	notifier := &recordingNotifier{}
	engine := session.New(model.SessionConfig{FocusMinutes: 1})
	engine.Subscribe(NewDispatcher(context.Background(), player, notifier).Handle)

	engine.Start()
	engine.Tick()
	engine.Pause()
	engine.Reset()

	assert.Equal(t, []string{"session_start.wav", "session_start.wav", "session_start.wav"}, player.played)
	assert.Empty(t, notifier.notices)
}

func TestDispatcher_CompletionNotifiesWithoutSound(t *testing.T) {
	player := &recordingPlayer{}
	notifier := &recordingNotifier{}
	engine := session.New(model.SessionConfig{FocusMinutes: 1})
	engine.Subscribe(NewDispatcher(context.Background(), player, notifier).Handle)

	engine.Start()
	for i := 0; i < 60; i++ {
		engine.Tick()
	}

	assert.Equal(t, []string{CompletionMessage}, notifier.notices)
	assert.Len(t, player.played, 1)
}

func TestDispatcher_InvalidInputAlerts(t *testing.T) {
	notifier := &recordingNotifier{}
	engine := session.New(model.SessionConfig{FocusMinutes: 1})
	engine.Subscribe(NewDispatcher(context.Background(), nil, notifier).Handle)

	require.Error(t, engine.SetDurationText("abc"))

	assert.Equal(t, []string{session.InvalidDurationMessage}, notifier.alerts)
}

func TestDispatcher_PlayerFailureDoesNotAffectEngine(t *testing.T) {
	player := &recordingPlayer{err: errors.New("decode failed")}
	engine := session.New(model.SessionConfig{FocusMinutes: 1})
	engine.Subscribe(NewDispatcher(context.Background(), player, nil).Handle)

	engine.Start()
	engine.Tick()

	assert.Equal(t, session.StateRunning, engine.State())
	assert.Equal(t, 59, int(engine.Remaining().Seconds()))
	assert.Len(t, player.played, 1)
}

func TestDispatcher_NilCollaborators(t *testing.T) {
	dispatcher := NewDispatcher(context.TODO(), nil, nil)

	assert.NotPanics(t, func() {
		dispatcher.Handle(session.Event{Type: session.EventStarted})
		dispatcher.Handle(session.Event{Type: session.EventSessionCompleted})
		dispatcher.Handle(session.Event{Type: session.EventInvalidInput, Message: "bad"})
	})
}

func TestMusic_PlayAndStop(t *testing.T) {
	player := &recordingPlayer{}
	music := NewMusic(context.Background(), player)

	require.NoError(t, music.Play("lofi2.mp3"))
	assert.Equal(t, Track("lofi2.mp3"), music.Current())
	require.NoError(t, music.Play(DefaultTrack))

	assert.Equal(t, []string{"lofi2.mp3", "lofi1.mp3"}, player.looping)
	assert.Equal(t, 2, player.stops)

	music.Stop()
	assert.Equal(t, 3, player.stops)
	assert.Empty(t, music.Current())
}

func TestMusic_RejectsUnknownTrack(t *testing.T) {
	player := &recordingPlayer{}
	music := NewMusic(context.Background(), player)

	assert.Error(t, music.Play("rock.mp3"))
	assert.Empty(t, player.looping)
}

func TestMusic_PlayerFailureIsSwallowed(t *testing.T) {
	player := &recordingPlayer{err: errors.New("missing file")}
	music := NewMusic(context.Background(), player)

	assert.NoError(t, music.Play("lofi3.mp3"))
	assert.Empty(t, music.Current())
}

func TestTracks(t *testing.T) {
	assert.Equal(t, []string{"lofi1.mp3", "lofi2.mp3", "lofi3.mp3"}, TrackNames())
	assert.True(t, ValidTrack("lofi3.mp3"))
	assert.False(t, ValidTrack("lofi4.mp3"))
}
