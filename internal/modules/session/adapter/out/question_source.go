package out

import (
	"context"

	questiondomain "sciquiz/internal/modules/question/domain"
	questiondto "sciquiz/internal/modules/question/dto"
	questionin "sciquiz/internal/modules/question/port/in"
	"sciquiz/internal/modules/session/domain"
)

// GeneratedQuestionSource draws questions from the question module.
type GeneratedQuestionSource struct {
	questions questionin.Usecase
}

func NewGeneratedQuestionSource(questions questionin.Usecase) GeneratedQuestionSource {
	return GeneratedQuestionSource{questions: questions}
}

func (s GeneratedQuestionSource) Next(ctx context.Context, subject questiondomain.Subject, difficulty questiondomain.Difficulty) (domain.Asked, error) {
	q, err := s.questions.Generate(ctx, questiondto.GenerateInput{Subject: string(subject), Difficulty: string(difficulty)})
	if err != nil {
		return domain.Asked{}, err
	}
	options := make([]string, len(q.Options))
	for i, opt := range q.Options {
		options[i] = opt.Text
	}
	return domain.Asked{Prompt: q.Prompt, Options: options, Correct: q.Correct}, nil
}
