package domain_test

import (
	"testing"

	"sciquiz/internal/modules/question/domain"
)

func TestParseSubjectAndDifficulty(t *testing.T) {
	t.Parallel()
	for raw, want := range map[string]domain.Subject{"chemistry": domain.SubjectChemistry, " Physics ": domain.SubjectPhysics, "MATH": domain.SubjectMaths, "maths": domain.SubjectMaths} {
		got, err := domain.ParseSubject(raw)
		if err != nil || got != want {
			t.Fatalf("parse subject %q: got %q err %v", raw, got, err)
		}
	}
	if _, err := domain.ParseSubject("biology"); err == nil {
		t.Fatalf("biology must be rejected")
	}
	for raw, want := range map[string]domain.Difficulty{"easy": domain.DifficultyEasy, "Medium": domain.DifficultyMedium, "HARD": domain.DifficultyHard} {
		got, err := domain.ParseDifficulty(raw)
		if err != nil || got != want {
			t.Fatalf("parse difficulty %q: got %q err %v", raw, got, err)
		}
	}
	if _, err := domain.ParseDifficulty("insane"); err == nil {
		t.Fatalf("unknown difficulty must be rejected")
	}
	if err := domain.Subject("Art").Validate(); err == nil {
		t.Fatalf("Art is not a subject")
	}
	if err := domain.Difficulty("easy").Validate(); err == nil {
		t.Fatalf("validate is case sensitive on canonical values")
	}
}

func TestQuestionValidate(t *testing.T) {
	t.Parallel()
	base := domain.Question{Prompt: "2 + 2", Options: []string{"3", "4", "5", "6"}, Correct: "4"}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}
	if base.CorrectIndex() != 1 {
		t.Fatalf("expected correct index 1, got %d", base.CorrectIndex())
	}

	short := base
	short.Options = []string{"3", "4", "5"}
	if err := short.Validate(); err == nil {
		t.Fatalf("three options must fail")
	}
	dup := base
	dup.Options = []string{"4", "4", "5", "6"}
	if err := dup.Validate(); err == nil {
		t.Fatalf("duplicate options must fail")
	}
	missing := base
	missing.Correct = "7"
	if err := missing.Validate(); err == nil {
		t.Fatalf("correct answer outside options must fail")
	}
	if missing.CorrectIndex() != -1 {
		t.Fatalf("expected -1 for missing answer")
	}
	blank := base
	blank.Prompt = "  "
	if err := blank.Validate(); err == nil {
		t.Fatalf("blank prompt must fail")
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()
	for i, want := range []string{"A", "B", "C", "D"} {
		if got := domain.Label(i); got != want {
			t.Fatalf("label %d: got %s", i, got)
		}
		idx, ok := domain.LabelIndex(want)
		if !ok || idx != i {
			t.Fatalf("label index %s: got %d %v", want, idx, ok)
		}
	}
	if idx, ok := domain.LabelIndex("c"); !ok || idx != 2 {
		t.Fatalf("lower case label must resolve, got %d %v", idx, ok)
	}
	if _, ok := domain.LabelIndex("E"); ok {
		t.Fatalf("E is not a label")
	}
	if domain.Label(4) != "?" {
		t.Fatalf("out of range label must be ?")
	}
}

func TestGeneratorForEverySubject(t *testing.T) {
	t.Parallel()
	for _, s := range domain.Subjects() {
		gen, err := domain.GeneratorFor(s)
		if err != nil {
			t.Fatalf("generator for %s: %v", s, err)
		}
		q := gen(newRand(11), domain.DifficultyMedium)
		if q.Subject != s || q.Difficulty != domain.DifficultyMedium {
			t.Fatalf("generator for %s produced %s/%s", s, q.Subject, q.Difficulty)
		}
	}
	if _, err := domain.GeneratorFor("Art"); err == nil {
		t.Fatalf("unknown subject must fail")
	}
}
