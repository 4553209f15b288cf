package question

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "sciquiz/internal/modules/session/dto"
	"sciquiz/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

// ChoiceMsg carries the label of the option the player picked.
type ChoiceMsg struct{ Label string }

// AbortMsg leaves the quiz for the main menu.
type AbortMsg struct{}

const gridColumns = 2

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders the question screen. It is locked between an answer and the
// next question so that a second key press cannot answer twice.
type Model struct {
	status sessiondto.StatusOutput
	cursor int
	locked bool
	timer  progress.Model
	width  int
	height int
}

func New() Model {
	return Model{timer: progress.New(progress.WithoutPercentage())}
}

// SetStatus shows a new snapshot. A snapshot in the question phase unlocks
// input and resets the cursor.
func (m *Model) SetStatus(status sessiondto.StatusOutput) {
	if status.Question.Number != m.status.Question.Number {
		m.cursor = 0
	}
	m.status = status
	m.locked = status.Phase != "question"
}

func (m *Model) SetRemaining(remaining int) {
	m.status.Remaining = remaining
}

// Reveal locks the view and marks the correct option, and the player's pick
// when it was wrong.
func (m *Model) Reveal(out sessiondto.AnswerOutput) {
	m.status.LastOutcome = out.Outcome
	m.status.LastChoice = out.Choice
	m.status.CorrectAnswer = out.CorrectAnswer
	m.status.CorrectLabel = out.CorrectLabel
	m.locked = true
}

// Lock ignores further choices until the next SetStatus.
func (m *Model) Lock() { m.locked = true }

func (m Model) Locked() bool { return m.locked }

func (m Model) QuestionNumber() int { return m.status.Question.Number }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		key := msg.String()
		if key == "esc" {
			return m, func() tea.Msg { return AbortMsg{} }
		}
		if m.locked {
			return m, nil
		}
		n := len(m.status.Question.Options)
		switch key {
		case "left", "h":
			if m.cursor%gridColumns > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor%gridColumns < gridColumns-1 && m.cursor+1 < n {
				m.cursor++
			}
		case "up", "k":
			if m.cursor-gridColumns >= 0 {
				m.cursor -= gridColumns
			}
		case "down", "j":
			if m.cursor+gridColumns < n {
				m.cursor += gridColumns
			}
		case "enter", " ":
			if m.cursor < n {
				return m.choose(m.status.Question.Options[m.cursor].Label)
			}
		default:
			if idx := optionIndex(key); idx >= 0 && idx < n {
				m.cursor = idx
				return m.choose(m.status.Question.Options[idx].Label)
			}
		}
	}
	return m, nil
}

func (m Model) choose(label string) (Model, tea.Cmd) {
	m.locked = true
	return m, func() tea.Msg { return ChoiceMsg{Label: label} }
}

func (m Model) View() string {
	width := m.width
	if width < 40 {
		width = 80
	}
	header := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(width), m.renderTimer(width))
	card := theme.Pane.
		Width(width - 4).
		Align(lipgloss.Center).
		Bold(true).
		Render(m.status.Question.Prompt)
	hint := theme.Muted.Render("Select an option:")
	grid := m.renderGrid(width - 4)
	footer := theme.Muted.Render("a-d / 1-4 answer  arrows + enter select  esc menu")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", card, "", hint, grid, "", footer)
}

func (m Model) renderHeader(width int) string {
	left := theme.Header.Render(fmt.Sprintf("Q %d / %d", m.status.Question.Number, m.status.Total))
	right := lipgloss.NewStyle().Foreground(theme.TimerColor(m.status.Remaining)).Bold(true).
		Render(fmt.Sprintf("⏱ %d", m.status.Remaining))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderTimer draws the remaining share of the time limit.
func (m Model) renderTimer(width int) string {
	if m.status.TimeLimit <= 0 {
		return ""
	}
	bar := m.timer
	bar.Width = width
	bar.FullColor = string(theme.TimerColor(m.status.Remaining))
	bar.EmptyColor = string(theme.Button)
	return bar.ViewAs(float64(m.status.Remaining) / float64(m.status.TimeLimit))
}

func (m Model) renderGrid(width int) string {
	cellW := width/gridColumns - 1
	var rows []string
	options := m.status.Question.Options
	for start := 0; start < len(options); start += gridColumns {
		var cells []string
		for i := start; i < start+gridColumns && i < len(options); i++ {
			if i > start {
				cells = append(cells, " ")
			}
			cells = append(cells, m.optionStyle(i).Width(cellW).Render(m.optionText(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) revealed() bool {
	return m.locked && m.status.LastOutcome != ""
}

func (m Model) optionText(i int) string {
	opt := m.status.Question.Options[i]
	text := opt.Label + ")  " + opt.Text
	if !m.revealed() {
		return text
	}
	switch {
	case opt.Label == m.status.CorrectLabel:
		return text + "  ✓"
	case opt.Text == m.status.LastChoice:
		return text + "  ✗"
	}
	return text
}

func (m Model) optionStyle(i int) lipgloss.Style {
	opt := m.status.Question.Options[i]
	if m.revealed() {
		switch {
		case opt.Label == m.status.CorrectLabel:
			return theme.Option.Background(theme.Green).Foreground(theme.Base)
		case opt.Text == m.status.LastChoice:
			return theme.Option.Background(theme.Pink).Foreground(theme.White)
		}
		return theme.Option.Foreground(theme.Subtext)
	}
	if i == m.cursor {
		return theme.OptionActive
	}
	return theme.Option
}

// optionIndex maps a–d and 1–4 to option positions.
func optionIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	switch c := key[0]; {
	case c >= 'a' && c <= 'd':
		return int(c - 'a')
	case c >= '1' && c <= '4':
		return int(c - '1')
	}
	return -1
}
