package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Formula is a two-input physical relation.
type Formula struct {
	Equation string
	Unit     string
	Inputs   [2]string
	Compute  func(x, y int) float64
}

var (
	ForceFormula = Formula{
		Equation: "F = ma",
		Unit:     "Force (N)",
		Inputs:   [2]string{"m (kg)", "a (m/s²)"},
		Compute:  func(m, a int) float64 { return float64(m * a) },
	}
	VoltageFormula = Formula{
		Equation: "V = IR",
		Unit:     "Voltage (V)",
		Inputs:   [2]string{"I (A)", "R (Ω)"},
		Compute:  func(i, r int) float64 { return float64(i * r) },
	}
	KineticFormula = Formula{
		Equation: "K = 0.5mv²",
		Unit:     "Energy (J)",
		Inputs:   [2]string{"m (kg)", "v (m/s)"},
		Compute:  func(m, v int) float64 { return 0.5 * float64(m) * float64(v) * float64(v) },
	}
	// GravityFormula uses the same mass for both bodies, scaled by 10¹¹ so
	// that G collapses to 6.67.
	GravityFormula = Formula{
		Equation: "F = Gm1m2/r²",
		Unit:     "F (N)",
		Inputs:   [2]string{"m (x10¹¹)", "r (m)"},
		Compute:  func(m, r int) float64 { return roundTo(6.67*float64(m*m)/float64(r*r), 2) },
	}
)

var physicsOffsets = []float64{-2, -1, 1, 2, 10}

const (
	physicsInputMin = 2
	physicsInputMax = 10
)

func Formulas(d Difficulty) []Formula {
	formulas := []Formula{ForceFormula, VoltageFormula, KineticFormula}
	if d == DifficultyHard {
		formulas = append(formulas, GravityFormula)
	}
	return formulas
}

// Measure is a computed physical quantity. Exact values are whole numbers
// before any rounding and render without a decimal point; the rest are
// rounded to one decimal place and always show one.
type Measure struct {
	Value float64
	Exact bool
}

func (m Measure) String() string {
	if m.Exact {
		return strconv.FormatInt(int64(m.Value), 10)
	}
	s := strconv.FormatFloat(m.Value, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Offset shifts m by delta keeping its rendering.
func (m Measure) Offset(delta float64) Measure {
	if m.Exact {
		return Measure{Value: m.Value + delta, Exact: true}
	}
	v := roundTo(m.Value+delta, 1)
	if v == 0 {
		v = 0 // drop a negative zero
	}
	return Measure{Value: v}
}

// Solve evaluates f. A whole result stays exact; anything else is rounded to
// one decimal place, so 2.96 becomes 3.0 rather than 3.
func (f Formula) Solve(x, y int) Measure {
	v := f.Compute(x, y)
	if v == math.Trunc(v) {
		return Measure{Value: v, Exact: true}
	}
	return Measure{Value: roundTo(v, 1)}
}

func (f Formula) Prompt(x, y int) string {
	return fmt.Sprintf("Using %s, find %s\ngiven: %s=%d, %s=%d", f.Equation, f.Unit, f.Inputs[0], x, f.Inputs[1], y)
}

func Physics(r *rand.Rand, d Difficulty) Question {
	formulas := Formulas(d)
	f := formulas[r.IntN(len(formulas))]
	x := physicsInputMin + r.IntN(physicsInputMax-physicsInputMin+1)
	y := physicsInputMin + r.IntN(physicsInputMax-physicsInputMin+1)
	answer := f.Solve(x, y)
	correct := answer.String()

	opts := fillOptions(
		[]string{correct},
		func() string { return answer.Offset(physicsOffsets[r.IntN(len(physicsOffsets))]).String() },
		func(i int) string {
			sweep := float64(20 * (i / len(physicsOffsets)))
			return answer.Offset(physicsOffsets[i%len(physicsOffsets)] + sweep).String()
		},
	)
	shuffle(r, opts)
	return Question{
		Subject:    SubjectPhysics,
		Difficulty: d,
		Prompt:     f.Prompt(x, y),
		Options:    opts,
		Correct:    correct,
	}
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
