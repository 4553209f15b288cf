package domain_test

import (
	"testing"

	questiondomain "sciquiz/internal/modules/question/domain"
	"sciquiz/internal/modules/session/domain"
)

func TestFlowTransitions(t *testing.T) {
	t.Parallel()
	f := domain.NewFlow()
	if f.Phase() != domain.PhaseMainMenu {
		t.Fatalf("flow must start at the main menu")
	}
	if err := f.OpenSettings("Art"); err == nil {
		t.Fatalf("unknown subject must be rejected")
	}
	if err := f.OpenSettings(questiondomain.SubjectChemistry); err != nil {
		t.Fatalf("open settings: %v", err)
	}
	if f.Phase() != domain.PhaseSettings || f.Subject() != questiondomain.SubjectChemistry {
		t.Fatalf("unexpected flow state %s/%s", f.Phase(), f.Subject())
	}

	other := newSession(t, 3)
	if err := f.Begin(other); err == nil {
		t.Fatalf("begin with another subject must fail")
	}

	s, err := domain.New("sess-3", questiondomain.SubjectChemistry, questiondomain.DifficultyEasy, 3, 30, t0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Present(asked("2")); err != nil {
		t.Fatalf("present: %v", err)
	}
	if err := f.Begin(s); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if f.Phase() != domain.PhaseQuestion {
		t.Fatalf("phase = %s", f.Phase())
	}
	if err := f.OpenSettings(questiondomain.SubjectPhysics); err == nil {
		t.Fatalf("settings cannot open mid-quiz")
	}

	f.Abort()
	if f.Phase() != domain.PhaseMainMenu || f.Session() != nil {
		t.Fatalf("abort must reset to the main menu")
	}
	if s.Countdown.Active() {
		t.Fatalf("abort must cancel the countdown")
	}
	f.Abort()
}

func TestRulesBounds(t *testing.T) {
	t.Parallel()
	r := domain.DefaultRules()
	if err := r.Validate(); err != nil {
		t.Fatalf("default rules: %v", err)
	}
	for _, n := range []int{3, 5, 20} {
		if err := r.CheckTotal(n); err != nil {
			t.Fatalf("total %d: %v", n, err)
		}
	}
	for _, n := range []int{2, 21} {
		if err := r.CheckTotal(n); err == nil {
			t.Fatalf("total %d must be rejected", n)
		}
	}
	if r.TimeLimit(questiondomain.DifficultyHard) != 15 {
		t.Fatalf("hard limit = %d", r.TimeLimit(questiondomain.DifficultyHard))
	}
	r.DefaultQuestions = 25
	if err := r.Validate(); err == nil {
		t.Fatalf("default outside bounds must be rejected")
	}
}
