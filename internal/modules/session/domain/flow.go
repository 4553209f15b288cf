package domain

import (
	"fmt"

	questiondomain "sciquiz/internal/modules/question/domain"
)

// Flow tracks which screen the player is on. The session it holds is nil
// outside a quiz.
type Flow struct {
	phase   Phase
	subject questiondomain.Subject
	session *Session
}

func NewFlow() *Flow {
	return &Flow{phase: PhaseMainMenu}
}

func (f *Flow) Phase() Phase {
	if f.session != nil {
		return f.session.Phase
	}
	return f.phase
}

func (f *Flow) Subject() questiondomain.Subject {
	if f.session != nil {
		return f.session.Subject
	}
	return f.subject
}

func (f *Flow) Session() *Session {
	return f.session
}

// OpenSettings leaves the main menu for the subject's settings screen.
func (f *Flow) OpenSettings(subject questiondomain.Subject) error {
	if err := subject.Validate(); err != nil {
		return err
	}
	if phase := f.Phase(); phase != PhaseMainMenu && phase != PhaseSettings {
		return fmt.Errorf("cannot open settings in phase %s", phase)
	}
	f.phase = PhaseSettings
	f.subject = subject
	return nil
}

// Begin attaches a freshly created session. Settings must be open for the
// same subject.
func (f *Flow) Begin(s *Session) error {
	if f.Phase() != PhaseSettings {
		return fmt.Errorf("cannot start in phase %s", f.Phase())
	}
	if s.Subject != f.subject {
		return fmt.Errorf("settings are open for %s, not %s", f.subject, s.Subject)
	}
	f.session = s
	return nil
}

// Abort discards any session and returns to the main menu.
func (f *Flow) Abort() {
	if f.session != nil {
		f.session.Countdown.Cancel()
	}
	f.session = nil
	f.subject = ""
	f.phase = PhaseMainMenu
}
