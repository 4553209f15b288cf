package results

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "sciquiz/internal/modules/session/dto"
	"sciquiz/internal/ui/theme"
)

// MenuMsg returns to the main menu.
type MenuMsg struct{}

type Model struct {
	result sessiondto.ResultOutput
	width  int
	height int
}

func New() Model { return Model{} }

func (m *Model) SetResult(result sessiondto.ResultOutput) { m.result = result }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", " ", "m":
			return m, func() tea.Msg { return MenuMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("FINISHED") + "\n\n")
	score := lipgloss.NewStyle().Foreground(theme.GradeColor(m.result.Grade)).Bold(true).
		Render(fmt.Sprintf("%d / %d", m.result.Score, m.result.Total))
	sb.WriteString(score + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%s · %s · %.0f%%", m.result.Subject, m.result.Difficulty, m.result.Percent)) + "\n\n")
	sb.WriteString(lipgloss.NewStyle().Padding(0, 8).Background(theme.Cyan).Foreground(theme.Base).Render("Menu") + "\n\n")
	sb.WriteString(theme.Muted.Render("enter menu"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(sb.String()))
}
