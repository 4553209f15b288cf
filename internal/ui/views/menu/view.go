package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sciquiz/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

// SelectedMsg is sent when a subject is chosen.
type SelectedMsg struct{ Subject string }

// ExitMsg is sent when Exit is chosen.
type ExitMsg struct{}

const exitItem = "Exit"

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	items  []string
	cursor int
	width  int
	height int
}

// New builds the menu from the subject catalog, with Exit last.
func New(subjects []string) Model {
	items := append(append([]string(nil), subjects...), exitItem)
	return Model{items: items}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Selected() string { return m.items[m.cursor] }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k", "shift+tab":
			m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)
		case "down", "j", "tab":
			m.cursor = (m.cursor + 1) % len(m.items)
		case "enter", " ":
			return m, m.choose(m.cursor)
		default:
			if n := digit(msg.String()); n >= 1 && n <= len(m.items) {
				m.cursor = n - 1
				return m, m.choose(m.cursor)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.Cyan).Render("∞ UNLIMITED") + "\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("SCIENCE QUIZ") + "\n\n")
	for i, item := range m.items {
		style := lipgloss.NewStyle().Width(22).Align(lipgloss.Center).Foreground(theme.Base).Background(theme.SubjectColor(item))
		if i == m.cursor {
			style = style.Background(theme.Text).Bold(true)
		}
		sb.WriteString(style.Render(item) + "\n\n")
	}
	sb.WriteString(theme.Muted.Render("↑/↓ move  enter select  1-4 quick pick"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(sb.String()))
}

func (m Model) choose(i int) tea.Cmd {
	item := m.items[i]
	if item == exitItem {
		return func() tea.Msg { return ExitMsg{} }
	}
	return func() tea.Msg { return SelectedMsg{Subject: item} }
}

func digit(s string) int {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '0')
}
