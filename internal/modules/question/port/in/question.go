package in

import (
	"context"

	"sciquiz/internal/modules/question/dto"
)

type Usecase interface {
	Generate(ctx context.Context, input dto.GenerateInput) (dto.QuestionOutput, error)
	Catalog(ctx context.Context) (dto.CatalogOutput, error)
}
