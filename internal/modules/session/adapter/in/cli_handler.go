package in

import (
	"context"

	sessiondto "sciquiz/internal/modules/session/dto"
	sessionin "sciquiz/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Settings(ctx context.Context, subject string) (sessiondto.SettingsOutput, error) {
	return h.usecase.OpenSettings(ctx, subject)
}

func (h CLIHandler) Start(ctx context.Context, subject, difficulty string, total int) (sessiondto.StatusOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{Subject: subject, Difficulty: difficulty, Total: total})
}

func (h CLIHandler) Answer(ctx context.Context, choice string) (sessiondto.AnswerOutput, error) {
	return h.usecase.Answer(ctx, sessiondto.AnswerInput{Choice: choice})
}

func (h CLIHandler) Timeout(ctx context.Context) (sessiondto.AnswerOutput, error) {
	return h.usecase.Timeout(ctx)
}

func (h CLIHandler) Continue(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Continue(ctx)
}

func (h CLIHandler) Abort(ctx context.Context) error {
	return h.usecase.Abort(ctx)
}

func (h CLIHandler) Results(ctx context.Context) (sessiondto.ResultOutput, error) {
	return h.usecase.Results(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]sessiondto.ResultOutput, error) {
	return h.usecase.History(ctx, limit)
}
