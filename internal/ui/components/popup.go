package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sciquiz/internal/ui/theme"
)

const (
	PopupSteps        = 10
	PopupStepInterval = 15 * time.Millisecond
	PopupHold         = 1500 * time.Millisecond

	popupWidth  = 44
	popupHeight = 9
)

// PopupStepMsg advances the grow animation of popup Seq.
type PopupStepMsg struct{ Seq int }

// PopupDoneMsg is emitted once popup Seq has finished holding.
type PopupDoneMsg struct{ Seq int }

type popupHoldMsg struct{ Seq int }

// Popup is the answer feedback overlay. It grows from nothing to full size
// in PopupSteps frames, holds, then reports PopupDoneMsg.
type Popup struct {
	seq     int
	step    int
	visible bool
	good    bool
	title   string
	message string
}

func NewPopup() Popup { return Popup{} }

func (p Popup) Visible() bool { return p.visible }

// Seq identifies the current popup; messages for older popups are ignored.
func (p Popup) Seq() int { return p.seq }

// Open shows a new popup and returns the command driving its animation.
func (p *Popup) Open(title, message string, good bool) tea.Cmd {
	p.seq++
	p.step = 0
	p.visible = true
	p.good = good
	p.title = title
	p.message = message
	return stepCmd(p.seq)
}

// Close hides the popup and invalidates any pending animation.
func (p *Popup) Close() {
	p.seq++
	p.visible = false
}

func (p Popup) Update(msg tea.Msg) (Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case PopupStepMsg:
		if !p.visible || msg.Seq != p.seq {
			return p, nil
		}
		if p.step < PopupSteps {
			p.step++
			return p, stepCmd(p.seq)
		}
		seq := p.seq
		return p, tea.Tick(PopupHold, func(time.Time) tea.Msg { return popupHoldMsg{Seq: seq} })
	case popupHoldMsg:
		if !p.visible || msg.Seq != p.seq {
			return p, nil
		}
		p.visible = false
		seq := p.seq
		return p, func() tea.Msg { return PopupDoneMsg{Seq: seq} }
	}
	return p, nil
}

// Scale is the current size as a fraction of full size.
func (p Popup) Scale() float64 {
	return float64(p.step) / PopupSteps
}

func (p Popup) View() string {
	if !p.visible || p.step == 0 {
		return ""
	}
	bg, fg, icon := theme.Pink, theme.White, "✖"
	if p.good {
		bg, fg, icon = theme.Green, theme.Base, "✔"
	}
	w := int(float64(popupWidth) * p.Scale())
	h := int(float64(popupHeight) * p.Scale())
	if w < 1 || h < 1 {
		return ""
	}
	style := lipgloss.NewStyle().Background(bg).Foreground(fg)
	body := icon + "\n" + style.Bold(true).Render(p.title) + "\n\n" + p.message
	if p.step < PopupSteps {
		body = ""
	}
	return style.
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func stepCmd(seq int) tea.Cmd {
	return tea.Tick(PopupStepInterval, func(time.Time) tea.Msg { return PopupStepMsg{Seq: seq} })
}
