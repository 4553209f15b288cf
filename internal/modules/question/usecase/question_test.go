package usecase_test

import (
	"context"
	"errors"
	"testing"

	questionout "sciquiz/internal/modules/question/adapter/out"
	"sciquiz/internal/modules/question/dto"
	"sciquiz/internal/modules/question/service"
	"sciquiz/internal/modules/question/usecase"
	apperrors "sciquiz/internal/platform/errors"
)

func newInteractor(seed uint64) *usecase.Interactor {
	uc := usecase.NewInteractor(service.NewQuestionService(questionout.NewSeededSource(seed)))
	return uc.(*usecase.Interactor)
}

func TestGenerateLabelsOptions(t *testing.T) {
	t.Parallel()
	uc := newInteractor(1)
	for _, subject := range []string{"chemistry", "physics", "maths"} {
		out, err := uc.Generate(context.Background(), dto.GenerateInput{Subject: subject, Difficulty: "hard"})
		if err != nil {
			t.Fatalf("generate %s: %v", subject, err)
		}
		if len(out.Options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(out.Options))
		}
		found := false
		for i, opt := range out.Options {
			if opt.Label != string(rune('A'+i)) {
				t.Fatalf("option %d labelled %s", i, opt.Label)
			}
			if opt.Text == out.Correct {
				found = true
				if opt.Label != out.CorrectLabel {
					t.Fatalf("correct label %s does not match option %s", out.CorrectLabel, opt.Label)
				}
			}
		}
		if !found {
			t.Fatalf("correct answer missing from options: %+v", out)
		}
		if out.Difficulty != "Hard" {
			t.Fatalf("expected canonical difficulty, got %s", out.Difficulty)
		}
	}
}

func TestGenerateIsReproducibleForSeed(t *testing.T) {
	t.Parallel()
	a, err := newInteractor(99).Generate(context.Background(), dto.GenerateInput{Subject: "Physics", Difficulty: "Medium"})
	if err != nil {
		t.Fatalf("generate a: %v", err)
	}
	b, err := newInteractor(99).Generate(context.Background(), dto.GenerateInput{Subject: "Physics", Difficulty: "Medium"})
	if err != nil {
		t.Fatalf("generate b: %v", err)
	}
	if a.Prompt != b.Prompt || a.Correct != b.Correct || a.CorrectLabel != b.CorrectLabel {
		t.Fatalf("same seed produced different questions: %+v vs %+v", a, b)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	t.Parallel()
	uc := newInteractor(1)
	if _, err := uc.Generate(context.Background(), dto.GenerateInput{Subject: "history", Difficulty: "easy"}); !errors.Is(err, apperrors.ErrUnsupportedSubject) {
		t.Fatalf("expected unsupported subject, got %v", err)
	}
	if _, err := uc.Generate(context.Background(), dto.GenerateInput{Subject: "physics", Difficulty: "brutal"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	out, err := newInteractor(1).Catalog(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(out.Subjects) != 3 || out.Subjects[2] != "Maths" {
		t.Fatalf("unexpected subjects %v", out.Subjects)
	}
	if len(out.Difficulties) != 3 || out.Difficulties[0] != "Easy" {
		t.Fatalf("unexpected difficulties %v", out.Difficulties)
	}
}
