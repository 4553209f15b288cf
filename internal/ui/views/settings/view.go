package settings

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

// StartMsg asks for a quiz with the chosen settings.
type StartMsg struct {
	Subject    string
	Difficulty string
	Total      int
}

// BackMsg returns to the main menu.
type BackMsg struct{}

type field int

const (
	fieldDifficulty field = iota
	fieldQuestions
	fieldStart
	fieldBack
	numFields
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	subject      string
	difficulties []string
	diffIdx      int
	count        int
	min          int
	max          int
	focus        field
	slider       progress.Model
	width        int
	height       int
}

func New() Model {
	slider := progress.New(
		progress.WithSolidFill(string(theme.Cyan)),
		progress.WithoutPercentage(),
	)
	slider.Width = 30
	return Model{slider: slider}
}

// Reset loads the defaults for a freshly opened settings screen.
func (m *Model) Reset(out sessiondto.SettingsOutput) {
	m.subject = out.Subject
	m.difficulties = out.Difficulties
	m.diffIdx = 0
	for i, d := range out.Difficulties {
		if d == out.DefaultDifficulty {
			m.diffIdx = i
		}
	}
	m.min = out.MinQuestions
	m.max = out.MaxQuestions
	m.count = out.DefaultQuestions
	m.focus = fieldStart
}

func (m Model) Difficulty() string {
	if len(m.difficulties) == 0 {
		return ""
	}
	return m.difficulties[m.diffIdx]
}

func (m Model) Count() int { return m.count }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k", "shift+tab":
			m.focus = (m.focus + numFields - 1) % numFields
		case "down", "j", "tab":
			m.focus = (m.focus + 1) % numFields
		case "left", "h", "-":
			m.adjust(-1)
		case "right", "l", "+", "=":
			m.adjust(1)
		case "e":
			m.pickDifficulty("Easy")
		case "m":
			m.pickDifficulty("Medium")
		case "H":
			m.pickDifficulty("Hard")
		case "esc":
			return m, func() tea.Msg { return BackMsg{} }
		case "enter", "s":
			if m.focus == fieldBack && msg.String() == "enter" {
				return m, func() tea.Msg { return BackMsg{} }
			}
			start := StartMsg{Subject: m.subject, Difficulty: m.Difficulty(), Total: m.count}
			return m, func() tea.Msg { return start }
		}
	}
	return m, nil
}

func (m *Model) adjust(delta int) {
	switch m.focus {
	case fieldDifficulty:
		if n := len(m.difficulties); n > 0 {
			m.diffIdx = (m.diffIdx + n + delta) % n
		}
	case fieldQuestions:
		m.count += delta
		if m.count < m.min {
			m.count = m.min
		}
		if m.count > m.max {
			m.count = m.max
		}
	}
}

func (m *Model) pickDifficulty(name string) {
	for i, d := range m.difficulties {
		if d == name {
			m.diffIdx = i
		}
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.subject+" Settings") + "\n\n")

	sb.WriteString(m.label(fieldDifficulty, "Select Difficulty:") + "\n")
	parts := make([]string, len(m.difficulties))
	for i, d := range m.difficulties {
		mark := "( )"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.diffIdx {
			mark = "(•)"
			style = style.Foreground(theme.Cyan).Bold(true)
		}
		parts[i] = style.Render(mark + " " + d)
	}
	sb.WriteString(strings.Join(parts, "   ") + "\n\n")

	sb.WriteString(m.label(fieldQuestions, "Number of Questions:") + "\n")
	sb.WriteString(fmt.Sprintf("%s  %s\n", m.slider.ViewAs(m.fraction()), lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%2d", m.count))))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d%*d", m.min, m.slider.Width-len(fmt.Sprint(m.min)), m.max)) + "\n\n")

	startStyle := lipgloss.NewStyle().Padding(0, 3).Background(theme.Green).Foreground(theme.Base).Bold(true)
	if m.focus == fieldStart {
		startStyle = startStyle.Background(theme.Text)
	}
	sb.WriteString(startStyle.Render("START GAME") + "\n\n")

	back := theme.Muted
	if m.focus == fieldBack {
		back = lipgloss.NewStyle().Foreground(theme.Text).Underline(true)
	}
	sb.WriteString(back.Render("Back") + "\n\n")
	sb.WriteString(theme.Muted.Render("↑/↓ field  ←/→ change  enter confirm  esc back"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(sb.String()))
}

func (m Model) label(f field, text string) string {
	if m.focus == f {
		return lipgloss.NewStyle().Foreground(theme.Cyan).Render("› " + text)
	}
	return theme.Muted.Render("  " + text)
}

func (m Model) fraction() float64 {
	if m.max <= m.min {
		return 1
	}
	return float64(m.count-m.min) / float64(m.max-m.min)
}
