package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

type Subject string

const (
	SubjectChemistry Subject = "Chemistry"
	SubjectPhysics   Subject = "Physics"
	SubjectMaths     Subject = "Maths"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

var optionLabels = [OptionCount]string{"A", "B", "C", "D"}

func Subjects() []Subject {
	return []Subject{SubjectChemistry, SubjectPhysics, SubjectMaths}
}

func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func ParseSubject(raw string) (Subject, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "chemistry", "chem":
		return SubjectChemistry, nil
	case "physics":
		return SubjectPhysics, nil
	case "maths", "math":
		return SubjectMaths, nil
	default:
		return "", fmt.Errorf("unsupported subject %q", raw)
	}
}

func ParseDifficulty(raw string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unsupported difficulty %q", raw)
	}
}

func (s Subject) Validate() error {
	switch s {
	case SubjectChemistry, SubjectPhysics, SubjectMaths:
		return nil
	default:
		return fmt.Errorf("unsupported subject %q", string(s))
	}
}

func (d Difficulty) Validate() error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return fmt.Errorf("unsupported difficulty %q", string(d))
	}
}

type Question struct {
	Subject    Subject
	Difficulty Difficulty
	Prompt     string
	Options    []string
	Correct    string
}

// Validate checks the option invariants: exactly OptionCount distinct
// options, one of which is the correct answer.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("expected %d options, got %d", OptionCount, len(q.Options))
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if _, dup := seen[opt]; dup {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = struct{}{}
	}
	if _, ok := seen[q.Correct]; !ok {
		return fmt.Errorf("correct answer %q is not among the options", q.Correct)
	}
	return nil
}

// CorrectIndex returns the position of the correct answer, or -1.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.Correct {
			return i
		}
	}
	return -1
}

// Label maps an option position to its display letter.
func Label(i int) string {
	if i < 0 || i >= OptionCount {
		return "?"
	}
	return optionLabels[i]
}

// LabelIndex is the inverse of Label and accepts lower case letters.
func LabelIndex(label string) (int, bool) {
	up := strings.ToUpper(strings.TrimSpace(label))
	for i, l := range optionLabels {
		if l == up {
			return i, true
		}
	}
	return -1, false
}

// Generator produces one randomized question. Generators are pure given r.
type Generator func(r *rand.Rand, d Difficulty) Question

func GeneratorFor(s Subject) (Generator, error) {
	switch s {
	case SubjectChemistry:
		return Chemistry, nil
	case SubjectPhysics:
		return Physics, nil
	case SubjectMaths:
		return Maths, nil
	default:
		return nil, fmt.Errorf("unsupported subject %q", string(s))
	}
}
