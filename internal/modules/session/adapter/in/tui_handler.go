package in

import (
	"context"

	sessiondto "sciquiz/internal/modules/session/dto"
	sessionin "sciquiz/internal/modules/session/port/in"
)

type TUIHandler struct {
	usecase sessionin.Usecase
}

func NewTUIHandler(usecase sessionin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) OpenSettings(ctx context.Context, subject string) (sessiondto.SettingsOutput, error) {
	return h.usecase.OpenSettings(ctx, subject)
}

func (h TUIHandler) Start(ctx context.Context, subject, difficulty string, total int) (sessiondto.StatusOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{Subject: subject, Difficulty: difficulty, Total: total})
}

func (h TUIHandler) Tick(ctx context.Context, q int) (sessiondto.TickOutput, error) {
	return h.usecase.Tick(ctx, q)
}

func (h TUIHandler) Answer(ctx context.Context, label string) (sessiondto.AnswerOutput, error) {
	return h.usecase.Answer(ctx, sessiondto.AnswerInput{Choice: label})
}

func (h TUIHandler) Continue(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Continue(ctx)
}

func (h TUIHandler) Abort(ctx context.Context) error {
	return h.usecase.Abort(ctx)
}

func (h TUIHandler) Results(ctx context.Context) (sessiondto.ResultOutput, error) {
	return h.usecase.Results(ctx)
}
