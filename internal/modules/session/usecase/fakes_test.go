package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	questiondomain "sciquiz/internal/modules/question/domain"
	"sciquiz/internal/modules/session/domain"
	sessionin "sciquiz/internal/modules/session/port/in"
	"sciquiz/internal/modules/session/service"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.now
	f.now = f.now.Add(time.Second)
	return v
}

type fakeID struct{}

func (fakeID) New() string { return "sess-1" }

// scriptedQuestions hands out the same question shape with "B" correct,
// numbering prompts so tests can tell them apart.
type scriptedQuestions struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (s *scriptedQuestions) Next(_ context.Context, subject questiondomain.Subject, _ questiondomain.Difficulty) (domain.Asked, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return domain.Asked{}, errors.New("generator offline")
	}
	s.calls++
	return domain.Asked{
		Prompt:  fmt.Sprintf("%s question %d", subject, s.calls),
		Options: []string{"wrong-1", "right", "wrong-2", "wrong-3"},
		Correct: "right",
	}, nil
}

type memoryResults struct {
	mu    sync.Mutex
	saved []domain.Result
}

func (m *memoryResults) Save(_ context.Context, r domain.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, r)
	return nil
}

func (m *memoryResults) List(_ context.Context, limit int) ([]domain.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]domain.Result(nil), m.saved...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndedAt.After(out[j].EndedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryResults) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saved)
}

type harness struct {
	uc        sessionin.Usecase
	questions *scriptedQuestions
	results   *memoryResults
}

func newHarness(withHistory bool) harness {
	h := harness{questions: &scriptedQuestions{}, results: &memoryResults{}}
	clk := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	var svc *service.SessionService
	if withHistory {
		svc = service.NewSessionService(clk, fakeID{}, h.questions, h.results, domain.DefaultRules(), nil)
	} else {
		svc = service.NewSessionService(clk, fakeID{}, h.questions, nil, domain.DefaultRules(), nil)
	}
	h.uc = newInteractor(svc)
	return h
}
