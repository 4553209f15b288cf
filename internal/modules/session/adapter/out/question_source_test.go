package out_test

import (
	"context"
	"testing"

	questionout "sciquiz/internal/modules/question/adapter/out"
	questiondomain "sciquiz/internal/modules/question/domain"
	"sciquiz/internal/modules/question/service"
	"sciquiz/internal/modules/question/usecase"
	sessionout "sciquiz/internal/modules/session/adapter/out"
)

func TestGeneratedQuestionSourceKeepsCorrectOption(t *testing.T) {
	t.Parallel()
	questions := usecase.NewInteractor(service.NewQuestionService(questionout.NewSeededSource(11)))
	source := sessionout.NewGeneratedQuestionSource(questions)
	for _, subject := range questiondomain.Subjects() {
		for _, difficulty := range questiondomain.Difficulties() {
			asked, err := source.Next(context.Background(), subject, difficulty)
			if err != nil {
				t.Fatalf("%s/%s: %v", subject, difficulty, err)
			}
			if len(asked.Options) != questiondomain.OptionCount || asked.CorrectIndex() < 0 {
				t.Fatalf("%s/%s: bad question %+v", subject, difficulty, asked)
			}
		}
	}
}
