package timerview

import (
	"errors"
	"image/color"
	"strconv"

	"focustimer/internal/audio"
	"focustimer/internal/core/clock"
	"focustimer/internal/core/session"
	"focustimer/internal/core/tasks"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Smart Focus Timer"

var (
	backgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 255}
	panelColor      = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 255}
	textColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Config defines the timer window setup.
type Config struct {
	FocusMinutes int
	DefaultTrack audio.Track
	Size         fyne.Size
}

// Window is the main focus timer window.
type Window struct {
	app    fyne.App
	window fyne.Window
	engine *session.Engine
	tasks  *tasks.List
	music  *audio.Music

	durationEntry *widget.Entry
	setButton     *widget.Button
	timerLabel    *canvas.Text
	clock         *clockView
	startButton   *widget.Button
	pauseButton   *widget.Button
	resetButton   *widget.Button
	taskList      *widget.List
	selected      int
	trackSelect   *widget.Select
}

// New creates the timer window. Call Handle for every engine event.
func New(app fyne.App, config Config, engine *session.Engine, taskList *tasks.List, music *audio.Music) *Window {
	window := app.NewWindow(appTitle)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	view := &Window{
		app:      app,
		window:   window,
		engine:   engine,
		tasks:    taskList,
		music:    music,
		selected: -1,
	}

	view.durationEntry = widget.NewEntry()
	view.durationEntry.SetText(strconv.Itoa(config.FocusMinutes))
	view.setButton = widget.NewButton("Set Focus Time", view.handleSetDuration)
	selectorBox := container.NewHBox(
		widget.NewLabel("Focus time (min):"),
		container.NewGridWrap(fyne.NewSize(60, view.durationEntry.MinSize().Height), view.durationEntry),
		view.setButton,
	)

	view.timerLabel = canvas.NewText(clock.FormatTime(int(engine.Remaining().Seconds())), textColor)
	view.timerLabel.TextSize = 36
	view.timerLabel.Alignment = fyne.TextAlignCenter
	view.clock = newClockView()
	view.clock.Update(clock.Render(engine.Progress()))
	timerBox := container.NewVBox(container.NewCenter(view.clock.Object()), view.timerLabel)

	view.trackSelect = widget.NewSelect(audio.TrackNames(), nil)
	view.trackSelect.SetSelected(string(config.DefaultTrack))
	musicBox := container.NewHBox(
		widget.NewLabel("Music:"),
		view.trackSelect,
		widget.NewButton("Play Music", view.handlePlayMusic),
		widget.NewButton("Stop Music", view.handleStopMusic),
	)

	view.taskList = widget.NewList(view.taskCount, newTaskRow, view.updateTaskRow)
	view.taskList.OnSelected = func(id widget.ListItemID) { view.selected = id }
	view.taskList.OnUnselected = func(widget.ListItemID) { view.selected = -1 }
	taskButtons := container.NewHBox(
		widget.NewButton("Add Task", view.showAddTask),
		widget.NewButton("Edit Task", view.showEditTask),
		widget.NewButton("Delete Task", view.deleteSelected),
	)
	tasksBox := container.NewStack(
		canvas.NewRectangle(panelColor),
		container.NewBorder(widget.NewLabel("Tasks"), container.NewCenter(taskButtons), nil, nil, view.taskList),
	)

	view.startButton = widget.NewButton("Start", engine.Start)
	view.pauseButton = widget.NewButton("Pause", engine.Pause)
	view.resetButton = widget.NewButton("Reset", engine.Reset)
	controlsBox := container.NewHBox(view.startButton, view.pauseButton, view.resetButton)

	top := container.NewVBox(container.NewCenter(selectorBox), timerBox, container.NewCenter(musicBox))
	content := container.NewBorder(top, container.NewCenter(controlsBox), nil, nil, container.NewPadded(tasksBox))
	window.SetContent(container.NewStack(canvas.NewRectangle(backgroundColor), content))

	if config.Size.Width > 0 && config.Size.Height > 0 {
		window.Resize(config.Size)
	}
	return view
}

// Handle is a session.Listener that refreshes the time label and the clock.
func (view *Window) Handle(event session.Event) {
	switch event.Type {
	case session.EventTimeUpdated:
		view.timerLabel.Text = clock.FormatTime(event.Seconds())
		view.timerLabel.Refresh()
	case session.EventProgressUpdated:
		view.clock.Update(clock.Render(event.Progress))
	}
}

// Notifier returns an audio.Notifier that shows dialogs on this window.
func (view *Window) Notifier() audio.Notifier {
	return dialogNotifier{app: view.app, window: view.window}
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Window returns the underlying Fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

func (view *Window) handleSetDuration() {
	// Invalid input is reported through EventInvalidInput.
	_ = view.engine.SetDurationText(view.durationEntry.Text)
}

func (view *Window) handlePlayMusic() {
	if err := view.music.Play(audio.Track(view.trackSelect.Selected)); err != nil {
		dialog.ShowError(err, view.window)
	}
}

func (view *Window) handleStopMusic() {
	view.music.Stop()
}

func (view *Window) showAddTask() {
	entry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem("Task:", entry)}
	dialog.ShowForm("Add a new task", "Add", "Cancel", items, func(confirmed bool) {
		if confirmed {
			view.addTask(entry.Text)
		}
	}, view.window)
}

func (view *Window) showEditTask() {
	item, ok := view.tasks.Get(view.selected)
	if !ok {
		return
	}
	index := view.selected
	entry := widget.NewEntry()
	entry.SetText(item.Label)
	items := []*widget.FormItem{widget.NewFormItem("Task:", entry)}
	dialog.ShowForm("Edit task", "Save", "Cancel", items, func(confirmed bool) {
		if confirmed {
			view.editTask(index, entry.Text)
		}
	}, view.window)
}

func (view *Window) addTask(label string) {
	view.tasks.Add(label)
	view.taskList.Refresh()
}

func (view *Window) editTask(index int, label string) {
	view.tasks.Edit(index, label)
	view.taskList.Refresh()
}

func (view *Window) deleteSelected() {
	view.tasks.Delete(view.selected)
	view.taskList.UnselectAll()
	view.selected = -1
	view.taskList.Refresh()
}

func (view *Window) taskCount() int {
	return view.tasks.Len()
}

func newTaskRow() fyne.CanvasObject {
	return widget.NewCheck("", nil)
}

func (view *Window) updateTaskRow(id widget.ListItemID, object fyne.CanvasObject) {
	check := object.(*widget.Check)
	item, ok := view.tasks.Get(id)
	check.OnChanged = nil
	if !ok {
		check.SetText("")
		check.SetChecked(false)
		return
	}
	check.SetText(item.Label)
	check.SetChecked(item.Completed)
	check.OnChanged = func(done bool) {
		view.tasks.SetCompleted(id, done)
	}
}

type dialogNotifier struct {
	app    fyne.App
	window fyne.Window
}

func (notifier dialogNotifier) Notify(message string) {
	dialog.ShowInformation(appTitle, message, notifier.window)
	notifier.app.SendNotification(fyne.NewNotification(appTitle, message))
}

func (notifier dialogNotifier) Alert(message string) {
	dialog.ShowError(errors.New(message), notifier.window)
}
