package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"sciquiz/internal/modules/question/domain"
	questionout "sciquiz/internal/modules/question/port/out"
)

// QuestionService owns the shared random stream. math/rand/v2.Rand is not
// safe for concurrent use, so draws are serialized.
type QuestionService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuestionService(source questionout.RandomSource) *QuestionService {
	return &QuestionService{rng: rand.New(source)}
}

func (s *QuestionService) Generate(_ context.Context, subject domain.Subject, difficulty domain.Difficulty) (domain.Question, error) {
	if err := difficulty.Validate(); err != nil {
		return domain.Question{}, err
	}
	gen, err := domain.GeneratorFor(subject)
	if err != nil {
		return domain.Question{}, err
	}

	s.mu.Lock()
	q := gen(s.rng, difficulty)
	s.mu.Unlock()

	if err := q.Validate(); err != nil {
		return domain.Question{}, fmt.Errorf("generated %s question: %w", subject, err)
	}
	return q, nil
}
