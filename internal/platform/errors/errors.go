package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoActiveSession    = errors.New("no active session")
	ErrWrongPhase         = errors.New("operation not allowed in current phase")
	ErrSessionFinished    = errors.New("session already finished")
	ErrHistoryDisabled    = errors.New("result history is disabled")
	ErrUnsupportedSubject = errors.New("unsupported subject")
)
