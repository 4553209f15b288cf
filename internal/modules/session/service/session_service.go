package service

import (
	"context"
	"fmt"
	"log/slog"

	questiondomain "sciquiz/internal/modules/question/domain"
	"sciquiz/internal/modules/session/domain"
	sessionout "sciquiz/internal/modules/session/port/out"
	"sciquiz/internal/platform/clock"
	apperrors "sciquiz/internal/platform/errors"
	"sciquiz/internal/platform/id"
)

type SessionService struct {
	clock     clock.Clock
	idGen     id.Generator
	questions sessionout.QuestionSource
	results   sessionout.ResultStore
	rules     domain.Rules
	log       *slog.Logger
}

func NewSessionService(clock clock.Clock, idGen id.Generator, questions sessionout.QuestionSource, results sessionout.ResultStore, rules domain.Rules, log *slog.Logger) *SessionService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &SessionService{clock: clock, idGen: idGen, questions: questions, results: results, rules: rules, log: log}
}

func (s *SessionService) Rules() domain.Rules {
	return s.rules
}

// Start creates a session and presents its first question.
func (s *SessionService) Start(ctx context.Context, subject questiondomain.Subject, difficulty questiondomain.Difficulty, total int) (*domain.Session, error) {
	if err := s.rules.CheckTotal(total); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	session, err := domain.New(s.idGen.New(), subject, difficulty, total, s.rules.TimeLimit(difficulty), s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.Next(ctx, session); err != nil {
		return nil, err
	}
	s.log.Info("session started", "session", session.ID, "subject", subject, "difficulty", difficulty, "total", total)
	return session, nil
}

// Next draws a question from the source and presents it. The session is
// untouched when the source fails.
func (s *SessionService) Next(ctx context.Context, session *domain.Session) error {
	if session.Finished() {
		return apperrors.ErrSessionFinished
	}
	asked, err := s.questions.Next(ctx, session.Subject, session.Difficulty)
	if err != nil {
		return fmt.Errorf("next %s question: %w", session.Subject, err)
	}
	if err := session.Present(asked); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrWrongPhase, err)
	}
	s.log.Debug("question presented", "session", session.ID, "number", session.QuestionNumber())
	return nil
}

// Finish closes a fully answered session and stores its result. A store
// failure is logged and does not undo the transition.
func (s *SessionService) Finish(ctx context.Context, session *domain.Session) (domain.Result, error) {
	if err := session.Finish(s.clock.Now()); err != nil {
		return domain.Result{}, fmt.Errorf("%w: %v", apperrors.ErrWrongPhase, err)
	}
	result := session.Result()
	s.log.Info("session finished", "session", result.SessionID, "score", result.Score, "total", result.Total, "grade", result.Grade)
	if s.results != nil {
		if err := s.results.Save(ctx, result); err != nil {
			s.log.Warn("store result", "session", result.SessionID, "err", err)
		}
	}
	return result, nil
}

// Abandon records that a session was left before its results.
func (s *SessionService) Abandon(session *domain.Session) {
	if session == nil || session.Phase == domain.PhaseResults {
		return
	}
	s.log.Info("session aborted", "session", session.ID, "answered", session.Index, "total", session.Total)
}

func (s *SessionService) History(ctx context.Context, limit int) ([]domain.Result, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative", apperrors.ErrInvalidInput)
	}
	if s.results == nil {
		return nil, apperrors.ErrHistoryDisabled
	}
	return s.results.List(ctx, limit)
}
