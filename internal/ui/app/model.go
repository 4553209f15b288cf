package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "sciquiz/internal/modules/session/dto"
	apperrors "sciquiz/internal/platform/errors"
	"sciquiz/internal/ui/components"
	"sciquiz/internal/ui/theme"
	menuview "sciquiz/internal/ui/views/menu"
	questionview "sciquiz/internal/ui/views/question"
	resultsview "sciquiz/internal/ui/views/results"
	settingsview "sciquiz/internal/ui/views/settings"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	OpenSettings(ctx context.Context, subject string) (sessiondto.SettingsOutput, error)
	Start(ctx context.Context, subject, difficulty string, total int) (sessiondto.StatusOutput, error)
	Tick(ctx context.Context, q int) (sessiondto.TickOutput, error)
	Answer(ctx context.Context, label string) (sessiondto.AnswerOutput, error)
	Continue(ctx context.Context) (sessiondto.StatusOutput, error)
	Abort(ctx context.Context) error
	Results(ctx context.Context) (sessiondto.ResultOutput, error)
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screen int

const (
	screenMenu screen = iota
	screenSettings
	screenQuestion
	screenResults
)

// TickInterval is how often the countdown advances.
const TickInterval = time.Second

// ─── async messages ──────────────────────────────────────────────────────────

type settingsOpenedMsg struct {
	out sessiondto.SettingsOutput
	err error
}

type startedMsg struct {
	status sessiondto.StatusOutput
	err    error
}

// countdownMsg fires once per second for question q. Ticks for a question
// that is no longer on screen are dropped by the session.
type countdownMsg struct{ q int }

type tickedMsg struct {
	out sessiondto.TickOutput
	err error
}

type answeredMsg struct {
	out sessiondto.AnswerOutput
	err error
}

type continuedMsg struct {
	status sessiondto.StatusOutput
	err    error
}

type resultsMsg struct {
	result sessiondto.ResultOutput
	err    error
}

type abortedMsg struct{ err error }

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Move   key.Binding
	Select key.Binding
	Answer key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Move:   key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "move")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Answer: key.NewBinding(key.WithKeys("a", "b", "c", "d", "1", "2", "3", "4"), key.WithHelp("a-d/1-4", "answer")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Select, k.Answer},
		{k.Back, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes input to the screen for the
// current phase and turns view messages into session calls.
type Model struct {
	session sessionPort

	menuView     menuview.Model
	settingsView settingsview.Model
	questionView questionview.Model
	resultsView  resultsview.Model
	popup        components.Popup

	tickInterval time.Duration
	quickStart   *settingsview.StartMsg

	active   screen
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(session sessionPort, subjects []string) Model {
	return Model{
		session:      session,
		menuView:     menuview.New(subjects),
		settingsView: settingsview.New(),
		questionView: questionview.New(),
		resultsView:  resultsview.New(),
		popup:        components.NewPopup(),
		tickInterval: TickInterval,
		active:       screenMenu,
		keys:         defaultKeys(),
		help:         help.New(),
		status:       "ready",
	}
}

// WithQuickStart skips the menu and starts a quiz as soon as the program runs.
func (m Model) WithQuickStart(subject, difficulty string, total int) Model {
	m.quickStart = &settingsview.StartMsg{Subject: subject, Difficulty: difficulty, Total: total}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.quickStart != nil {
		return m.startCmd(*m.quickStart)
	}
	return nil
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if msg.String() == "?" {
			m.showHelp = true
			return m, nil
		}
		if msg.String() == "q" && (m.active == screenMenu || m.active == screenResults) {
			return m, tea.Quit
		}
		return m.routeKey(msg)

	// menu
	case menuview.SelectedMsg:
		return m, m.openSettingsCmd(msg.Subject)
	case menuview.ExitMsg:
		return m, tea.Quit
	case settingsOpenedMsg:
		if msg.err != nil {
			m.status = "settings: " + msg.err.Error()
			return m, nil
		}
		m.settingsView.Reset(msg.out)
		m.active = screenSettings
		m.status = msg.out.Subject

	// settings
	case settingsview.BackMsg:
		return m, m.abortCmd()
	case settingsview.StartMsg:
		return m, m.startCmd(msg)
	case startedMsg:
		if msg.err != nil {
			m.status = "start: " + msg.err.Error()
			return m, nil
		}
		return m, m.showQuestion(msg.status)

	// question
	case countdownMsg:
		if m.active != screenQuestion || msg.q != m.questionView.QuestionNumber() || m.questionView.Locked() {
			return m, nil
		}
		return m, m.tickCmd(msg.q)
	case tickedMsg:
		if msg.err != nil {
			m.status = "timer: " + msg.err.Error()
			return m, nil
		}
		if msg.out.Stale || msg.out.Question != m.questionView.QuestionNumber() {
			return m, nil
		}
		m.questionView.SetRemaining(msg.out.Remaining)
		if msg.out.Expired {
			m.questionView.Lock()
			return m, m.feedback(msg.out.Answer)
		}
		return m, m.countdownCmd(msg.out.Question)
	case questionview.ChoiceMsg:
		return m, m.answerCmd(msg.Label)
	case answeredMsg:
		if msg.err != nil {
			// The countdown may have won the race; its own feedback is on the way.
			if !errors.Is(msg.err, apperrors.ErrWrongPhase) {
				m.status = "answer: " + msg.err.Error()
			}
			return m, nil
		}
		return m, m.feedback(msg.out)
	case questionview.AbortMsg:
		return m, m.abortCmd()

	// feedback
	case components.PopupStepMsg:
		var cmd tea.Cmd
		m.popup, cmd = m.popup.Update(msg)
		return m, cmd
	case components.PopupDoneMsg:
		if msg.Seq != m.popup.Seq() || m.active != screenQuestion {
			return m, nil
		}
		return m, m.continueCmd()
	case continuedMsg:
		if msg.err != nil {
			m.status = "continue: " + msg.err.Error()
			return m, nil
		}
		if msg.status.Phase == "results" {
			return m, m.resultsCmd()
		}
		return m, m.showQuestion(msg.status)
	case resultsMsg:
		if msg.err != nil {
			m.status = "results: " + msg.err.Error()
			return m, nil
		}
		m.resultsView.SetResult(msg.result)
		m.active = screenResults
		m.status = fmt.Sprintf("finished %s", msg.result.Subject)

	// results
	case resultsview.MenuMsg:
		return m, m.abortCmd()
	case abortedMsg:
		m.popup.Close()
		m.active = screenMenu
		m.status = "ready"
		if msg.err != nil {
			m.status = "abort: " + msg.err.Error()
		}

	default:
		// Popup hold messages are private to the component.
		var cmd tea.Cmd
		m.popup, cmd = m.popup.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case screenMenu:
		m.menuView, cmd = m.menuView.Update(msg)
	case screenSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case screenQuestion:
		m.questionView, cmd = m.questionView.Update(msg)
	case screenResults:
		m.resultsView, cmd = m.resultsView.Update(msg)
	}
	return m, cmd
}

func (m *Model) showQuestion(status sessiondto.StatusOutput) tea.Cmd {
	m.popup.Close()
	m.questionView.SetStatus(status)
	m.active = screenQuestion
	m.status = fmt.Sprintf("%s · %s · score %d", status.Subject, status.Difficulty, status.Score)
	return m.countdownCmd(status.Question.Number)
}

func (m *Model) feedback(out sessiondto.AnswerOutput) tea.Cmd {
	title, message, good := feedbackText(out)
	m.questionView.Reveal(out)
	m.status = fmt.Sprintf("score %d / %d", out.Score, out.Total)
	return m.popup.Open(title, message, good)
}

func feedbackText(out sessiondto.AnswerOutput) (title, message string, good bool) {
	switch out.Outcome {
	case "correct":
		return "CORRECT!", "Excellent work!", true
	case "timeout":
		return "TIME'S UP!", "Answer: " + out.CorrectAnswer, false
	default:
		return "WRONG", "Answer: " + out.CorrectAnswer, false
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.popup.Visible() && m.popup.View() != "":
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.popup.View(),
			lipgloss.WithWhitespaceBackground(theme.Base))
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) activeView() string {
	switch m.active {
	case screenMenu:
		return m.menuView.View()
	case screenSettings:
		return m.settingsView.View()
	case screenQuestion:
		return m.questionView.View()
	case screenResults:
		return m.resultsView.View()
	}
	return ""
}

func (m Model) renderStatusBar() string {
	left := theme.Muted.Render(m.status)
	right := theme.Muted.Render("?:help  esc:menu  ctrl+c:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Card).Width(m.width).Render(bar)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 2}
	m.menuView, _ = m.menuView.Update(sz)
	m.settingsView, _ = m.settingsView.Update(sz)
	m.questionView, _ = m.questionView.Update(sz)
	m.resultsView, _ = m.resultsView.Update(sz)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) countdownCmd(q int) tea.Cmd {
	return tea.Tick(m.tickInterval, func(time.Time) tea.Msg { return countdownMsg{q: q} })
}

func (m Model) openSettingsCmd(subject string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.OpenSettings(context.Background(), subject)
		return settingsOpenedMsg{out: out, err: err}
	}
}

func (m Model) startCmd(input settingsview.StartMsg) tea.Cmd {
	return func() tea.Msg {
		status, err := m.session.Start(context.Background(), input.Subject, input.Difficulty, input.Total)
		return startedMsg{status: status, err: err}
	}
}

func (m Model) tickCmd(q int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Tick(context.Background(), q)
		return tickedMsg{out: out, err: err}
	}
}

func (m Model) answerCmd(label string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Answer(context.Background(), label)
		return answeredMsg{out: out, err: err}
	}
}

func (m Model) continueCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.session.Continue(context.Background())
		return continuedMsg{status: status, err: err}
	}
}

func (m Model) resultsCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.session.Results(context.Background())
		return resultsMsg{result: result, err: err}
	}
}

func (m Model) abortCmd() tea.Cmd {
	return func() tea.Msg {
		return abortedMsg{err: m.session.Abort(context.Background())}
	}
}
