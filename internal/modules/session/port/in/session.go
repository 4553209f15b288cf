package in

import (
	"context"

	"sciquiz/internal/modules/session/dto"
)

type Usecase interface {
	OpenSettings(ctx context.Context, subject string) (dto.SettingsOutput, error)
	Start(ctx context.Context, input dto.StartInput) (dto.StatusOutput, error)
	// Tick advances the countdown of question number q; ticks for any other
	// question are reported stale and ignored.
	Tick(ctx context.Context, q int) (dto.TickOutput, error)
	Answer(ctx context.Context, input dto.AnswerInput) (dto.AnswerOutput, error)
	Timeout(ctx context.Context) (dto.AnswerOutput, error)
	Continue(ctx context.Context) (dto.StatusOutput, error)
	Abort(ctx context.Context) error
	Status(ctx context.Context) (dto.StatusOutput, error)
	Results(ctx context.Context) (dto.ResultOutput, error)
	History(ctx context.Context, limit int) ([]dto.ResultOutput, error)
}
