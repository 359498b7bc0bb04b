package terminal

import (
	"fmt"
	"strings"

	"focustimer/internal/audio"
	"focustimer/internal/core/clock"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# Smart Focus Timer

Count down a focus block while you work through a checklist.

| Key | Action |
|---|---|
| s / p / r | start, pause, reset the session |
| d | set the focus time in whole minutes |
| a / e / x | add, edit, delete the selected task |
| space | check or uncheck the selected task |
| t / m / M | next track, play music, stop music |
| ? | close this page |
`

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	timeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(0, 1)
	stateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.helpPage + "\n" + m.help.View(m.keys)
	}

	snapshot := m.engine.Snapshot()
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		timeStyle.Render(clock.FormatTime(int(snapshot.Remaining.Seconds()))),
		stateStyle.Render(string(snapshot.State)),
	)

	lines := []string{
		titleStyle.Render("Smart Focus Timer"),
		header,
		m.progress.ViewAs(snapshot.Progress),
		fmt.Sprintf("Music: %s", m.trackLine()),
		panelStyle.Render(m.taskLines()),
	}

	if m.mode != inputNone {
		lines = append(lines, m.input.View())
	}

	status := statusStyle.Render(m.status.Text)
	if m.status.IsError {
		status = errorStyle.Render(m.status.Text)
	}
	lines = append(lines, status, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m Model) taskLines() string {
	items := m.tasks.List()
	if len(items) == 0 {
		return stateStyle.Render("No tasks yet. Press a to add one.")
	}

	rows := make([]string, 0, len(items))
	for i, item := range items {
		mark := "[ ]"
		label := item.Label
		if item.Completed {
			mark = "[x]"
			label = doneStyle.Render(label)
		}
		row := fmt.Sprintf("%s %s", mark, label)
		if i == m.cursor {
			row = selectedStyle.Render("> ") + row
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m Model) trackLine() string {
	name := string(audio.Tracks[m.track])
	if current := m.music.Current(); current != "" {
		return fmt.Sprintf("%s (playing %s)", name, current)
	}
	return name
}

func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
