package domain

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// calculusThreshold: on Hard, a draw above it yields a derivative question
// (a 70% chance).
const calculusThreshold = 0.3

func Maths(r *rand.Rand, d Difficulty) Question {
	if d == DifficultyHard && r.Float64() > calculusThreshold {
		return derivativeQuestion(r, d)
	}
	return linearQuestion(r, d)
}

// linearQuestion asks to solve ax + b = c; x is drawn first and c derived.
func linearQuestion(r *rand.Rand, d Difficulty) Question {
	x := intIn(r, -10, 10)
	a := intIn(r, 2, 9)
	b := intIn(r, -15, 15)
	c := a*x + b

	sign, magnitude := "+", b
	if b < 0 {
		sign, magnitude = "-", -b
	}
	prompt := fmt.Sprintf("Solve for x:\n%dx %s %d = %d", a, sign, magnitude, c)
	answer := strconv.Itoa(x)
	seed := []string{answer, strconv.Itoa(x + 1), strconv.Itoa(x - 1), strconv.Itoa(-x)}
	return mathsQuestion(r, d, prompt, answer, seed)
}

// derivativeQuestion asks for d/dx of a·x^n.
func derivativeQuestion(r *rand.Rand, d Difficulty) Question {
	n := intIn(r, 2, 6)
	a := intIn(r, 1, 5)
	prompt := fmt.Sprintf("Find d/dx ( %dx^%d )", a, n)
	answer := monomial(a*n, n-1)
	seed := []string{answer, monomial(a, n-1), monomial(n, n), monomial(a*n, n)}
	return mathsQuestion(r, d, prompt, answer, seed)
}

func mathsQuestion(r *rand.Rand, d Difficulty, prompt, answer string, seed []string) Question {
	opts := fillOptions(
		seed,
		func() string { return strconv.Itoa(intIn(r, 100, 200)) },
		func(i int) string { return strconv.Itoa(100 + i) },
	)
	shuffle(r, opts)
	return Question{
		Subject:    SubjectMaths,
		Difficulty: d,
		Prompt:     prompt,
		Options:    opts,
		Correct:    answer,
	}
}

func monomial(coef, power int) string {
	return fmt.Sprintf("%dx^%d", coef, power)
}

// intIn returns a uniform integer in [lo, hi].
func intIn(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
