package usecase

import (
	"context"
	"fmt"

	"sciquiz/internal/modules/question/domain"
	"sciquiz/internal/modules/question/dto"
	questionin "sciquiz/internal/modules/question/port/in"
	"sciquiz/internal/modules/question/service"
	apperrors "sciquiz/internal/platform/errors"
)

type Interactor struct {
	svc *service.QuestionService
}

func NewInteractor(svc *service.QuestionService) questionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Generate(ctx context.Context, input dto.GenerateInput) (dto.QuestionOutput, error) {
	subject, err := domain.ParseSubject(input.Subject)
	if err != nil {
		return dto.QuestionOutput{}, fmt.Errorf("%w: %v", apperrors.ErrUnsupportedSubject, err)
	}
	difficulty, err := domain.ParseDifficulty(input.Difficulty)
	if err != nil {
		return dto.QuestionOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	q, err := i.svc.Generate(ctx, subject, difficulty)
	if err != nil {
		return dto.QuestionOutput{}, err
	}
	return toOutput(q), nil
}

func (i *Interactor) Catalog(_ context.Context) (dto.CatalogOutput, error) {
	out := dto.CatalogOutput{}
	for _, s := range domain.Subjects() {
		out.Subjects = append(out.Subjects, string(s))
	}
	for _, d := range domain.Difficulties() {
		out.Difficulties = append(out.Difficulties, string(d))
	}
	return out, nil
}

func toOutput(q domain.Question) dto.QuestionOutput {
	options := make([]dto.OptionOutput, len(q.Options))
	for idx, text := range q.Options {
		options[idx] = dto.OptionOutput{Label: domain.Label(idx), Text: text}
	}
	return dto.QuestionOutput{
		Subject:      string(q.Subject),
		Difficulty:   string(q.Difficulty),
		Prompt:       q.Prompt,
		Options:      options,
		Correct:      q.Correct,
		CorrectLabel: domain.Label(q.CorrectIndex()),
	}
}
