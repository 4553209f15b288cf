package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base        = lipgloss.Color("#0f172a")
	Card        = lipgloss.Color("#1e293b")
	Button      = lipgloss.Color("#334155")
	ButtonHover = lipgloss.Color("#475569")
	Text        = lipgloss.Color("#f8fafc")
	Subtext     = lipgloss.Color("#94a3b8")
	White       = lipgloss.Color("#ffffff")
	Cyan        = lipgloss.Color("#22d3ee")
	Pink        = lipgloss.Color("#fb7185")
	Green       = lipgloss.Color("#4ade80")
	Purple      = lipgloss.Color("#a78bfa")
	Orange      = lipgloss.Color("#fbbf24")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ButtonHover).
		Background(Card).
		Foreground(Text).
		Padding(1, 2)

	PaneActive = Pane.BorderForeground(Cyan)

	Option = lipgloss.NewStyle().
		Background(Button).
		Foreground(Text).
		Bold(true).
		Padding(1, 2)

	OptionActive = Option.Background(Cyan).Foreground(Base)

	Title  = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	Header = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext)
	Hot    = lipgloss.NewStyle().Foreground(Pink).Bold(true)
)

// TimerColor shades the countdown: green above 10s, orange above 5s.
func TimerColor(remaining int) lipgloss.Color {
	switch {
	case remaining > 10:
		return Green
	case remaining > 5:
		return Orange
	default:
		return Pink
	}
}

// GradeColor maps a result grade to its accent.
func GradeColor(grade string) lipgloss.Color {
	switch grade {
	case "great":
		return Green
	case "fair":
		return Orange
	default:
		return Pink
	}
}

// SubjectColor is the menu accent for a subject button.
func SubjectColor(subject string) lipgloss.Color {
	switch subject {
	case "Chemistry":
		return Purple
	case "Physics":
		return Cyan
	case "Maths":
		return Green
	default:
		return Pink
	}
}
