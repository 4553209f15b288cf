package domain

import (
	"time"

	questiondomain "sciquiz/internal/modules/question/domain"
)

type Grade string

const (
	GradeGreat Grade = "great"
	GradeFair  Grade = "fair"
	GradePoor  Grade = "poor"
)

// GradeFor buckets a score percentage: above 70 is great, above 40 fair.
func GradeFor(percent float64) Grade {
	switch {
	case percent > 70:
		return GradeGreat
	case percent > 40:
		return GradeFair
	default:
		return GradePoor
	}
}

// Result is the summary of a finished session.
type Result struct {
	SessionID  string
	Subject    questiondomain.Subject
	Difficulty questiondomain.Difficulty
	Score      int
	Total      int
	Percent    float64
	Grade      Grade
	StartedAt  time.Time
	EndedAt    time.Time
}

func NewResult(id string, subject questiondomain.Subject, difficulty questiondomain.Difficulty, score, total int, startedAt, endedAt time.Time) Result {
	percent := 0.0
	if total > 0 {
		percent = float64(score) * 100 / float64(total)
	}
	return Result{
		SessionID:  id,
		Subject:    subject,
		Difficulty: difficulty,
		Score:      score,
		Total:      total,
		Percent:    percent,
		Grade:      GradeFor(percent),
		StartedAt:  startedAt,
		EndedAt:    endedAt,
	}
}

// Duration is zero for results without an end time.
func (r Result) Duration() time.Duration {
	if r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
