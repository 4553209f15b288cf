package out

import (
	"context"

	questiondomain "sciquiz/internal/modules/question/domain"
	"sciquiz/internal/modules/session/domain"
)

// QuestionSource supplies the next question for a running session.
type QuestionSource interface {
	Next(ctx context.Context, subject questiondomain.Subject, difficulty questiondomain.Difficulty) (domain.Asked, error)
}

// ResultStore keeps finished sessions. List returns newest first.
type ResultStore interface {
	Save(ctx context.Context, result domain.Result) error
	List(ctx context.Context, limit int) ([]domain.Result, error)
}
