// package ui renders a live terminal progress view for playlist runs.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/tasks"
)

// maxVisibleLines bounds the progress tail so the view fits small terminals.
const maxVisibleLines = 15

type updateMsg tasks.ProgressUpdate

type doneMsg struct{}

// Model is the bubbletea model for the run progress view. It consumes
// ProgressUpdates from the engine's channel and quits when the channel
// closes.
type Model struct {
	spinner spinner.Model
	updates <-chan tasks.ProgressUpdate
	lines   []string
	current string
	found   int
	missed  int
	done    bool
}

// NewModel creates a progress view reading from the given channel.
func NewModel(updates <-chan tasks.ProgressUpdate) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.ok
	return Model{spinner: sp, updates: updates}
}

// waitForUpdate blocks on the progress channel and converts the next event
// into a message. Channel close signals completion.
func waitForUpdate(ch <-chan tasks.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-ch
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForUpdate(m.updates))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case updateMsg:
		m.absorb(tasks.ProgressUpdate(msg))
		return m, waitForUpdate(m.updates)

	case doneMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) absorb(update tasks.ProgressUpdate) {
	line := update.Message
	switch update.Data.(type) {
	case models.MatchResult:
		m.found++
		line = styles.ok.Render("✓") + " " + update.Message
	case models.TrackQuery:
		m.missed++
		line = styles.warn.Render("✗") + " " + update.Message
	}

	switch update.Phase {
	case tasks.SearchTracks:
		m.lines = append(m.lines, line)
		if len(m.lines) > maxVisibleLines {
			m.lines = m.lines[len(m.lines)-maxVisibleLines:]
		}
		m.current = ""
	default:
		m.current = update.Message
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("sheetlist"))
	b.WriteString("\n")

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString(styles.ok.Render(fmt.Sprintf("Done: %d found, %d not found", m.found, m.missed)))
		b.WriteString("\n")
	} else {
		status := m.current
		if status == "" {
			status = "Matching tracks..."
		}
		b.WriteString(m.spinner.View() + " " + status + "\n")
		b.WriteString(styles.help.Render("press q to hide progress (run continues)"))
		b.WriteString("\n")
	}

	return b.String()
}
