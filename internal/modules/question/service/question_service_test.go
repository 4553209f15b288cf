package service_test

import (
	"context"
	"sync"
	"testing"

	questionout "sciquiz/internal/modules/question/adapter/out"
	"sciquiz/internal/modules/question/domain"
	"sciquiz/internal/modules/question/service"
)

func TestGenerateValidatesInputs(t *testing.T) {
	t.Parallel()
	svc := service.NewQuestionService(questionout.NewSeededSource(5))
	if _, err := svc.Generate(context.Background(), domain.SubjectPhysics, "Nightmare"); err == nil {
		t.Fatalf("unknown difficulty must fail")
	}
	if _, err := svc.Generate(context.Background(), "Art", domain.DifficultyEasy); err == nil {
		t.Fatalf("unknown subject must fail")
	}
}

func TestGenerateConcurrentCallersGetValidQuestions(t *testing.T) {
	t.Parallel()
	svc := service.NewQuestionService(questionout.NewSeededSource(5))
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			subject := domain.Subjects()[i%3]
			for n := 0; n < 50; n++ {
				if _, err := svc.Generate(context.Background(), subject, domain.DifficultyHard); err != nil {
					errs <- err
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("generate: %v", err)
	}
}
