package usecase

import (
	"context"
	"fmt"
	"sync"

	questiondomain "sciquiz/internal/modules/question/domain"
	"sciquiz/internal/modules/session/domain"
	sessiondto "sciquiz/internal/modules/session/dto"
	sessionin "sciquiz/internal/modules/session/port/in"
	"sciquiz/internal/modules/session/service"
	apperrors "sciquiz/internal/platform/errors"
)

// Interactor drives a single player's flow. Calls arrive from UI commands
// running on their own goroutines, so all state sits behind mu.
type Interactor struct {
	svc *service.SessionService

	mu     sync.Mutex
	flow   *domain.Flow
	result *domain.Result
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc, flow: domain.NewFlow()}
}

func (i *Interactor) OpenSettings(_ context.Context, subject string) (sessiondto.SettingsOutput, error) {
	parsed, err := questiondomain.ParseSubject(subject)
	if err != nil {
		return sessiondto.SettingsOutput{}, fmt.Errorf("%w: %v", apperrors.ErrUnsupportedSubject, err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.flow.OpenSettings(parsed); err != nil {
		return sessiondto.SettingsOutput{}, fmt.Errorf("%w: %v", apperrors.ErrWrongPhase, err)
	}

	rules := i.svc.Rules()
	out := sessiondto.SettingsOutput{
		Subject:           string(parsed),
		DefaultDifficulty: string(rules.DefaultDifficulty),
		DefaultQuestions:  rules.DefaultQuestions,
		MinQuestions:      rules.MinQuestions,
		MaxQuestions:      rules.MaxQuestions,
	}
	for _, d := range questiondomain.Difficulties() {
		out.Difficulties = append(out.Difficulties, string(d))
	}
	return out, nil
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StatusOutput, error) {
	subject, err := questiondomain.ParseSubject(input.Subject)
	if err != nil {
		return sessiondto.StatusOutput{}, fmt.Errorf("%w: %v", apperrors.ErrUnsupportedSubject, err)
	}
	difficulty, err := questiondomain.ParseDifficulty(input.Difficulty)
	if err != nil {
		return sessiondto.StatusOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.flow.OpenSettings(subject); err != nil {
		return sessiondto.StatusOutput{}, fmt.Errorf("%w: %v", apperrors.ErrWrongPhase, err)
	}
	session, err := i.svc.Start(ctx, subject, difficulty, input.Total)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	if err := i.flow.Begin(session); err != nil {
		return sessiondto.StatusOutput{}, fmt.Errorf("%w: %v", apperrors.ErrWrongPhase, err)
	}
	i.result = nil
	return i.statusLocked(), nil
}

func (i *Interactor) Tick(_ context.Context, q int) (sessiondto.TickOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	session := i.flow.Session()
	if session == nil || session.Phase != domain.PhaseQuestion || session.QuestionNumber() != q {
		return sessiondto.TickOutput{Question: q, Stale: true}, nil
	}
	remaining, expired := session.Tick()
	out := sessiondto.TickOutput{Question: q, Remaining: remaining, Expired: expired}
	if expired {
		out.Answer = answerOutput(session)
	}
	return out, nil
}

func (i *Interactor) Answer(_ context.Context, input sessiondto.AnswerInput) (sessiondto.AnswerOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	session, err := i.questionPhaseLocked()
	if err != nil {
		return sessiondto.AnswerOutput{}, err
	}
	if _, err := session.Answer(input.Choice); err != nil {
		return sessiondto.AnswerOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return answerOutput(session), nil
}

func (i *Interactor) Timeout(_ context.Context) (sessiondto.AnswerOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	session, err := i.questionPhaseLocked()
	if err != nil {
		return sessiondto.AnswerOutput{}, err
	}
	if err := session.Timeout(); err != nil {
		return sessiondto.AnswerOutput{}, fmt.Errorf("%w: %v", apperrors.ErrWrongPhase, err)
	}
	return answerOutput(session), nil
}

// Continue leaves the feedback phase, either with the next question or, after
// the last one, with the results.
func (i *Interactor) Continue(ctx context.Context) (sessiondto.StatusOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	session := i.flow.Session()
	if session == nil {
		return sessiondto.StatusOutput{}, apperrors.ErrNoActiveSession
	}
	switch session.Phase {
	case domain.PhaseFeedback:
	case domain.PhaseResults:
		return sessiondto.StatusOutput{}, apperrors.ErrSessionFinished
	default:
		return sessiondto.StatusOutput{}, fmt.Errorf("%w: continue in phase %s", apperrors.ErrWrongPhase, session.Phase)
	}

	if session.Finished() {
		result, err := i.svc.Finish(ctx, session)
		if err != nil {
			return sessiondto.StatusOutput{}, err
		}
		i.result = &result
		return i.statusLocked(), nil
	}
	if err := i.svc.Next(ctx, session); err != nil {
		return sessiondto.StatusOutput{}, err
	}
	return i.statusLocked(), nil
}

func (i *Interactor) Abort(_ context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.svc.Abandon(i.flow.Session())
	i.flow.Abort()
	i.result = nil
	return nil
}

func (i *Interactor) Status(_ context.Context) (sessiondto.StatusOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.statusLocked(), nil
}

func (i *Interactor) Results(_ context.Context) (sessiondto.ResultOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.flow.Session() == nil {
		return sessiondto.ResultOutput{}, apperrors.ErrNoActiveSession
	}
	if i.result == nil {
		return sessiondto.ResultOutput{}, fmt.Errorf("%w: results before the last answer", apperrors.ErrWrongPhase)
	}
	return resultOutput(*i.result), nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]sessiondto.ResultOutput, error) {
	results, err := i.svc.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.ResultOutput, 0, len(results))
	for _, r := range results {
		out = append(out, resultOutput(r))
	}
	return out, nil
}

func (i *Interactor) questionPhaseLocked() (*domain.Session, error) {
	session := i.flow.Session()
	if session == nil {
		return nil, apperrors.ErrNoActiveSession
	}
	switch session.Phase {
	case domain.PhaseQuestion:
		return session, nil
	case domain.PhaseResults:
		return nil, apperrors.ErrSessionFinished
	default:
		return nil, fmt.Errorf("%w: no question on screen in phase %s", apperrors.ErrWrongPhase, session.Phase)
	}
}

func (i *Interactor) statusLocked() sessiondto.StatusOutput {
	out := sessiondto.StatusOutput{Phase: string(i.flow.Phase()), Subject: string(i.flow.Subject())}
	session := i.flow.Session()
	if session == nil {
		return out
	}
	out.SessionID = session.ID
	out.Difficulty = string(session.Difficulty)
	out.Total = session.Total
	out.Answered = session.Index
	out.Score = session.Score
	out.TimeLimit = session.TimeLimit
	out.Remaining = session.Countdown.Remaining()
	out.TimerActive = session.Countdown.Active()
	out.LastOutcome = string(session.LastOutcome)
	out.LastChoice = session.LastChoice
	if session.Current.Prompt != "" {
		out.Question = questionOutput(session)
		out.CorrectAnswer = session.Current.Correct
		out.CorrectLabel = questiondomain.Label(session.Current.CorrectIndex())
	}
	return out
}

func questionOutput(session *domain.Session) sessiondto.QuestionOutput {
	options := make([]sessiondto.OptionOutput, len(session.Current.Options))
	for idx, text := range session.Current.Options {
		options[idx] = sessiondto.OptionOutput{Label: questiondomain.Label(idx), Text: text}
	}
	return sessiondto.QuestionOutput{Number: session.QuestionNumber(), Prompt: session.Current.Prompt, Options: options}
}

func answerOutput(session *domain.Session) sessiondto.AnswerOutput {
	return sessiondto.AnswerOutput{
		Outcome:       string(session.LastOutcome),
		Choice:        session.LastChoice,
		CorrectAnswer: session.Current.Correct,
		CorrectLabel:  questiondomain.Label(session.Current.CorrectIndex()),
		Answered:      session.Index,
		Total:         session.Total,
		Score:         session.Score,
		Finished:      session.Finished(),
	}
}

func resultOutput(r domain.Result) sessiondto.ResultOutput {
	return sessiondto.ResultOutput{
		SessionID:  r.SessionID,
		Subject:    string(r.Subject),
		Difficulty: string(r.Difficulty),
		Score:      r.Score,
		Total:      r.Total,
		Percent:    r.Percent,
		Grade:      string(r.Grade),
		StartedAt:  r.StartedAt,
		EndedAt:    r.EndedAt,
		Duration:   r.Duration(),
	}
}
