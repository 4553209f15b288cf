package domain

import (
	"fmt"
	"strings"
	"time"

	questiondomain "sciquiz/internal/modules/question/domain"
)

type Phase string

const (
	PhaseMainMenu Phase = "main_menu"
	PhaseSettings Phase = "settings"
	PhaseQuestion Phase = "question"
	PhaseFeedback Phase = "feedback"
	PhaseResults  Phase = "results"
)

type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
	OutcomeTimeout Outcome = "timeout"
)

// Asked is the question currently in front of the player.
type Asked struct {
	Prompt  string
	Options []string
	Correct string
}

// CorrectIndex returns the position of the correct option, or -1.
func (a Asked) CorrectIndex() int {
	for i, opt := range a.Options {
		if opt == a.Correct {
			return i
		}
	}
	return -1
}

// Resolve maps a choice, given either as an option label (A-D) or as the
// option text, to the option text.
func (a Asked) Resolve(choice string) (string, bool) {
	trimmed := strings.TrimSpace(choice)
	if idx, ok := questiondomain.LabelIndex(trimmed); ok && idx < len(a.Options) {
		return a.Options[idx], true
	}
	for _, opt := range a.Options {
		if opt == trimmed {
			return opt, true
		}
	}
	return "", false
}

type Session struct {
	ID          string
	Subject     questiondomain.Subject
	Difficulty  questiondomain.Difficulty
	Total       int
	Index       int
	Score       int
	TimeLimit   int
	Phase       Phase
	Current     Asked
	Countdown   Countdown
	LastOutcome Outcome
	LastChoice  string
	StartedAt   time.Time
	EndedAt     time.Time
}

// New creates a session waiting for its first question.
func New(id string, subject questiondomain.Subject, difficulty questiondomain.Difficulty, total, timeLimit int, startedAt time.Time) (*Session, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}
	if err := difficulty.Validate(); err != nil {
		return nil, err
	}
	if total < 1 {
		return nil, fmt.Errorf("total questions must be at least 1")
	}
	if timeLimit < 1 {
		return nil, fmt.Errorf("time limit must be positive")
	}
	return &Session{
		ID:         id,
		Subject:    subject,
		Difficulty: difficulty,
		Total:      total,
		TimeLimit:  timeLimit,
		Phase:      PhaseFeedback,
		StartedAt:  startedAt,
	}, nil
}

// Present shows the next question and restarts the countdown.
func (s *Session) Present(q Asked) error {
	if s.Phase != PhaseFeedback {
		return fmt.Errorf("cannot present a question in phase %s", s.Phase)
	}
	if s.Finished() {
		return fmt.Errorf("all %d questions already answered", s.Total)
	}
	if q.CorrectIndex() < 0 {
		return fmt.Errorf("question has no correct option")
	}
	s.Current = q
	s.Countdown = NewCountdown(s.TimeLimit)
	s.LastOutcome = OutcomeNone
	s.LastChoice = ""
	s.Phase = PhaseQuestion
	return nil
}

// Answer scores choice against the current question.
func (s *Session) Answer(choice string) (Outcome, error) {
	if s.Phase != PhaseQuestion {
		return OutcomeNone, fmt.Errorf("cannot answer in phase %s", s.Phase)
	}
	text, ok := s.Current.Resolve(choice)
	if !ok {
		return OutcomeNone, fmt.Errorf("unknown choice %q", choice)
	}
	outcome := OutcomeWrong
	if text == s.Current.Correct {
		outcome = OutcomeCorrect
		s.Score++
	}
	s.record(outcome, text)
	return outcome, nil
}

// Timeout records the current question as unanswered.
func (s *Session) Timeout() error {
	if s.Phase != PhaseQuestion {
		return fmt.Errorf("cannot time out in phase %s", s.Phase)
	}
	s.record(OutcomeTimeout, "")
	return nil
}

// Tick advances the countdown and records a timeout when it expires.
// Outside the question phase it is a no-op.
func (s *Session) Tick() (remaining int, expired bool) {
	if s.Phase != PhaseQuestion {
		return s.Countdown.Remaining(), false
	}
	remaining, expired = s.Countdown.Tick()
	if expired {
		s.record(OutcomeTimeout, "")
	}
	return remaining, expired
}

func (s *Session) record(outcome Outcome, choice string) {
	s.Countdown.Cancel()
	s.Index++
	s.LastOutcome = outcome
	s.LastChoice = choice
	s.Phase = PhaseFeedback
}

// Finished reports whether every question has been answered.
func (s *Session) Finished() bool {
	return s.Index >= s.Total
}

// Finish moves a fully answered session to the results phase.
func (s *Session) Finish(endedAt time.Time) error {
	if s.Phase != PhaseFeedback || !s.Finished() {
		return fmt.Errorf("cannot finish in phase %s at %d/%d", s.Phase, s.Index, s.Total)
	}
	s.Countdown.Cancel()
	s.Phase = PhaseResults
	s.EndedAt = endedAt
	return nil
}

// QuestionNumber is the 1-based number of the question on screen.
func (s *Session) QuestionNumber() int {
	if s.Phase == PhaseQuestion {
		return s.Index + 1
	}
	return s.Index
}

func (s *Session) Result() Result {
	return NewResult(s.ID, s.Subject, s.Difficulty, s.Score, s.Total, s.StartedAt, s.EndedAt)
}
