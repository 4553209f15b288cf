package domain

import (
	"fmt"

	questiondomain "sciquiz/internal/modules/question/domain"
)

// Rules bound what a player may configure before starting.
type Rules struct {
	MinQuestions      int
	MaxQuestions      int
	DefaultQuestions  int
	DefaultDifficulty questiondomain.Difficulty
	TimeLimits        map[questiondomain.Difficulty]int
}

func DefaultRules() Rules {
	return Rules{
		MinQuestions:      3,
		MaxQuestions:      20,
		DefaultQuestions:  5,
		DefaultDifficulty: questiondomain.DifficultyMedium,
		TimeLimits: map[questiondomain.Difficulty]int{
			questiondomain.DifficultyEasy:   30,
			questiondomain.DifficultyMedium: 20,
			questiondomain.DifficultyHard:   15,
		},
	}
}

func (r Rules) Validate() error {
	if r.MinQuestions < 1 || r.MaxQuestions < r.MinQuestions {
		return fmt.Errorf("question bounds %d..%d are invalid", r.MinQuestions, r.MaxQuestions)
	}
	if r.DefaultQuestions < r.MinQuestions || r.DefaultQuestions > r.MaxQuestions {
		return fmt.Errorf("default question count %d outside %d..%d", r.DefaultQuestions, r.MinQuestions, r.MaxQuestions)
	}
	if err := r.DefaultDifficulty.Validate(); err != nil {
		return err
	}
	for _, d := range questiondomain.Difficulties() {
		if r.TimeLimits[d] < 1 {
			return fmt.Errorf("time limit for %s must be positive", d)
		}
	}
	return nil
}

func (r Rules) CheckTotal(total int) error {
	if total < r.MinQuestions || total > r.MaxQuestions {
		return fmt.Errorf("question count %d outside %d..%d", total, r.MinQuestions, r.MaxQuestions)
	}
	return nil
}

func (r Rules) TimeLimit(d questiondomain.Difficulty) int {
	return r.TimeLimits[d]
}
