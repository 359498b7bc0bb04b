// Package terminal is a bubbletea front end for the focus timer.
package terminal

import (
	"time"

	"focustimer/internal/audio"
	"focustimer/internal/core/session"
	"focustimer/internal/core/tasks"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputDuration
	inputAddTask
	inputEditTask
)

// TickMsg asks the model to advance the session by one tick.
type TickMsg struct {
	Seq int
}

// StatusBar is the line under the task list. It also serves as the
// audio.Notifier for the terminal.
type StatusBar struct {
	Text    string
	IsError bool
}

// Notify implements audio.Notifier.
func (status *StatusBar) Notify(message string) {
	status.Text = message
	status.IsError = false
}

// Alert implements audio.Notifier.
func (status *StatusBar) Alert(message string) {
	status.Text = message
	status.IsError = true
}

// Config defines the terminal model setup.
type Config struct {
	TickInterval time.Duration
	DefaultTrack audio.Track
}

// Model is the bubbletea model.
type Model struct {
	engine *session.Engine
	tasks  *tasks.List
	music  *audio.Music
	status *StatusBar

	keys     KeyMap
	help     help.Model
	progress progress.Model
	input    textinput.Model
	mode     inputMode

	cursor       int
	track        int
	tickSeq      int
	tickInterval time.Duration
	showHelp     bool
	helpPage     string
}

// New creates the terminal model.
func New(config Config, engine *session.Engine, taskList *tasks.List, music *audio.Music) Model {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}

	input := textinput.New()
	input.CharLimit = 120

	track := 0
	for i, name := range audio.Tracks {
		if name == config.DefaultTrack {
			track = i
		}
	}

	return Model{
		engine:       engine,
		tasks:        taskList,
		music:        music,
		status:       &StatusBar{Text: "ready"},
		keys:         DefaultKeyMap(),
		help:         help.New(),
		progress:     progress.New(progress.WithDefaultGradient()),
		input:        input,
		track:        track,
		tickInterval: config.TickInterval,
		helpPage:     renderMarkdown(helpMarkdown),
	}
}

// Notifier returns the status bar as an audio.Notifier.
func (m Model) Notifier() audio.Notifier {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = progressWidth(msg.Width)
		return m, nil
	case TickMsg:
		return m.onTick(msg)
	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) onTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.tickSeq {
		return m, nil
	}
	m.engine.Tick()
	cmd := m.scheduleTick()
	return m, cmd
}

// scheduleTick returns the next tick while the engine runs.
func (m *Model) scheduleTick() tea.Cmd {
	if m.engine.State() != session.StateRunning {
		return nil
	}
	seq := m.tickSeq
	return tea.Tick(m.tickInterval, func(time.Time) tea.Msg { return TickMsg{Seq: seq} })
}

// restartTicks invalidates ticks already in flight and schedules a fresh one.
func (m *Model) restartTicks() tea.Cmd {
	m.tickSeq++
	return m.scheduleTick()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.music.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Start):
		m.engine.Start()
		cmd := m.restartTicks()
		return m, cmd
	case key.Matches(msg, m.keys.Pause):
		m.engine.Pause()
		cmd := m.restartTicks()
		return m, cmd
	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		cmd := m.restartTicks()
		return m, cmd
	case key.Matches(msg, m.keys.Duration):
		return m.openInput(inputDuration, "Focus time (min): ", "")
	case key.Matches(msg, m.keys.Add):
		return m.openInput(inputAddTask, "Task: ", "")
	case key.Matches(msg, m.keys.Edit):
		item, ok := m.tasks.Get(m.cursor)
		if !ok {
			return m, nil
		}
		return m.openInput(inputEditTask, "Task: ", item.Label)
	case key.Matches(msg, m.keys.Delete):
		m.tasks.Delete(m.cursor)
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		m.tasks.Toggle(m.cursor)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.tasks.Len()-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Track):
		m.track = (m.track + 1) % len(audio.Tracks)
		return m, nil
	case key.Matches(msg, m.keys.PlayMusic):
		if err := m.music.Play(audio.Tracks[m.track]); err != nil {
			m.status.Alert(err.Error())
		}
		return m, nil
	case key.Matches(msg, m.keys.StopMusic):
		m.music.Stop()
		return m, nil
	}
	return m, nil
}

func (m Model) openInput(mode inputMode, prompt, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		value := m.input.Value()
		mode := m.mode
		m.closeInput()
		return m.applyInput(mode, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) applyInput(mode inputMode, value string) (tea.Model, tea.Cmd) {
	switch mode {
	case inputDuration:
		// Invalid input is reported through EventInvalidInput.
		_ = m.engine.SetDurationText(value)
		cmd := m.restartTicks()
		return m, cmd
	case inputAddTask:
		m.tasks.Add(value)
		m.cursor = m.tasks.Len() - 1
	case inputEditTask:
		m.tasks.Edit(m.cursor, value)
	}
	return m, nil
}

func (m *Model) closeInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) clampCursor() {
	if m.cursor >= m.tasks.Len() {
		m.cursor = m.tasks.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func progressWidth(width int) int {
	const maxWidth = 60
	width -= 4
	if width > maxWidth {
		return maxWidth
	}
	if width < 10 {
		return 10
	}
	return width
}
