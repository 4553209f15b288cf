package in

import (
	"context"

	questiondto "sciquiz/internal/modules/question/dto"
	questionin "sciquiz/internal/modules/question/port/in"
)

type CLIHandler struct {
	usecase questionin.Usecase
}

func NewCLIHandler(usecase questionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Generate(ctx context.Context, subject, difficulty string) (questiondto.QuestionOutput, error) {
	return h.usecase.Generate(ctx, questiondto.GenerateInput{Subject: subject, Difficulty: difficulty})
}

func (h CLIHandler) Catalog(ctx context.Context) (questiondto.CatalogOutput, error) {
	return h.usecase.Catalog(ctx)
}
