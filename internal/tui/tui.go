// Package tui provides an interactive terminal explorer for the
// statistics calculator. Numbers are typed a line at a time and the full
// descriptive-statistics report updates after every entry.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gonumstat/internal/format"
	"github.com/mwiater/gonumstat/internal/numstream"
	"github.com/mwiater/gonumstat/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// New returns a Bubble Tea program running the explorer with the given
// output precision.
func New(precision int) *tea.Program {
	return tea.NewProgram(initialModel(precision), tea.WithAltScreen())
}

// initialModel builds the explorer model with an empty sample set.
func initialModel(precision int) *explorer {
	ta := textarea.New()
	ta.Placeholder = "Enter numbers separated by spaces..."
	ta.Focus()
	ta.Prompt = "> "
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	return &explorer{
		textArea:  ta,
		viewport:  viewport.New(80, 20),
		precision: precision,
	}
}

// explorer is the concrete Bubble Tea model.
type explorer struct {
	textArea  textarea.Model
	viewport  viewport.Model
	samples   []float64
	precision int
	lastEntry string

	width, height int
	ready         bool
}

// Init starts the cursor blink.
func (m *explorer) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles key and window events. Enter parses the current line with
// the same stop-at-first-bad-token rules as the stats command and appends
// the result to the sample; ctrl+r clears the sample; esc or ctrl+c quits.
func (m *explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+r":
			m.samples = nil
			m.lastEntry = "sample cleared"
			m.refreshReport()
			return m, nil
		case "enter":
			m.ingest(strings.TrimSpace(m.textArea.Value()))
			m.textArea.Reset()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.textArea.SetWidth(msg.Width - 3)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 6
		m.ready = true
		m.refreshReport()
	}

	m.textArea, cmd = m.textArea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// ingest parses one input line and appends any values read to the sample.
func (m *explorer) ingest(line string) {
	if line == "" {
		return
	}

	values := numstream.ReadString(line)
	if len(values) == 0 {
		m.lastEntry = fmt.Sprintf("no valid numbers in %q", line)
		return
	}

	m.samples = append(m.samples, values...)
	m.lastEntry = fmt.Sprintf("added %d value(s)", len(values))
	m.refreshReport()
}

// refreshReport recomputes the statistics and rewrites the viewport. The
// engine sorts its input in place, so it runs over a copy to keep the
// sample in entry order.
func (m *explorer) refreshReport() {
	if len(m.samples) == 0 {
		m.viewport.SetContent("Enter some numbers to see their statistics.")
		return
	}

	scratch := append([]float64(nil), m.samples...)
	result := stats.Compute(scratch)

	var report strings.Builder
	if err := format.Text(&report, result, m.precision); err != nil {
		m.viewport.SetContent(fmt.Sprintf("Error rendering report: %v", err))
		return
	}
	m.viewport.SetContent(report.String())
}

// View renders the header, the report viewport, and the input line.
func (m *explorer) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var builder strings.Builder

	status := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render(fmt.Sprintf("Samples: %d", len(m.samples))),
		headerStyle.MarginLeft(1).Render(fmt.Sprintf("Precision: %d", m.precision)),
	)
	help := helpStyle.Render(" (enter to add, ctrl+r to reset, esc to quit)")
	builder.WriteString(status + help + "\n\n")

	builder.WriteString(m.viewport.View())
	builder.WriteString("\n" + m.textArea.View())

	if m.lastEntry != "" {
		builder.WriteString("\n" + noteStyle.Render("  >>> "+m.lastEntry))
	}

	return builder.String()
}
