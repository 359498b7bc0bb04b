package timerview

import (
	"context"
	"testing"

	"focustimer/internal/audio"
	"focustimer/internal/core/model"
	"focustimer/internal/core/session"
	"focustimer/internal/core/tasks"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T) (*Window, *session.Engine, *tasks.List) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	engine := session.New(model.SessionConfig{FocusMinutes: 1})
	taskList := tasks.NewList()
	view := New(app, Config{
		FocusMinutes: 1,
		DefaultTrack: audio.DefaultTrack,
		Size:         fyne.NewSize(450, 600),
	}, engine, taskList, audio.NewMusic(context.Background(), nil))
	engine.Subscribe(view.Handle)
	return view, engine, taskList
}

func TestWindow_InitialState(t *testing.T) {
	view, _, _ := newTestWindow(t)

	assert.Equal(t, "1", view.durationEntry.Text)
	assert.Equal(t, "01:00", view.timerLabel.Text)
	assert.Equal(t, string(audio.DefaultTrack), view.trackSelect.Selected)
	assert.Len(t, view.clock.root.Objects, 2)
}

func TestWindow_ButtonsDriveEngine(t *testing.T) {
	view, engine, _ := newTestWindow(t)

	test.Tap(view.startButton)
	assert.Equal(t, session.StateRunning, engine.State())

	engine.Tick()
	assert.Equal(t, "00:59", view.timerLabel.Text)
	assert.Greater(t, len(view.clock.root.Objects), 2)

	test.Tap(view.pauseButton)
	assert.Equal(t, session.StatePaused, engine.State())

	test.Tap(view.resetButton)
	assert.Equal(t, session.StateIdle, engine.State())
	assert.Equal(t, "01:00", view.timerLabel.Text)
	assert.Len(t, view.clock.root.Objects, 2)
}

func TestWindow_SetDuration(t *testing.T) {
	view, engine, _ := newTestWindow(t)

	view.durationEntry.SetText("5")
	test.Tap(view.setButton)
	assert.Equal(t, 300, int(engine.Remaining().Seconds()))
	assert.Equal(t, "05:00", view.timerLabel.Text)

	view.durationEntry.SetText("five")
	test.Tap(view.setButton)
	assert.Equal(t, 300, int(engine.Remaining().Seconds()))
}

func TestWindow_TaskEditing(t *testing.T) {
	view, _, taskList := newTestWindow(t)

	view.addTask("write report")
	view.addTask("stretch")
	require.Equal(t, 2, taskList.Len())

	view.deleteSelected()
	assert.Equal(t, 2, taskList.Len())

	view.taskList.Select(1)
	assert.Equal(t, 1, view.selected)
	view.editTask(view.selected, "stretch legs")
	item, ok := taskList.Get(1)
	require.True(t, ok)
	assert.Equal(t, "stretch legs", item.Label)

	view.deleteSelected()
	assert.Equal(t, 1, taskList.Len())
	assert.Equal(t, -1, view.selected)
}
