package domain

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

type Ion struct {
	Symbol string
	// Charge is the magnitude of the ionic charge.
	Charge int
}

var (
	baseCations = []Ion{{"Na", 1}, {"K", 1}, {"Mg", 2}, {"Ca", 2}, {"Al", 3}, {"Fe", 3}}
	baseAnions  = []Ion{{"Cl", 1}, {"O", 2}, {"S", 2}, {"F", 1}}
	hardCations = []Ion{{"Zn", 2}, {"Cu", 2}}
	hardAnions  = []Ion{{"Br", 1}, {"N", 3}}

	diatomic = map[string]bool{"O": true, "N": true, "F": true, "Cl": true, "Br": true, "I": true}
)

// FallbackCoefficients is the answer used when no coefficient in 1..9
// balances the equation.
const FallbackCoefficients = "1, 1, 1"

const maxProductCoefficient = 9

func CationPool(d Difficulty) []Ion {
	pool := append([]Ion(nil), baseCations...)
	if d == DifficultyHard {
		pool = append(pool, hardCations...)
	}
	return pool
}

func AnionPool(d Difficulty) []Ion {
	pool := append([]Ion(nil), baseAnions...)
	if d == DifficultyHard {
		pool = append(pool, hardAnions...)
	}
	return pool
}

func IsDiatomic(symbol string) bool {
	return diatomic[symbol]
}

// Reaction is "a Cation + b Anion -> c Product" for a binary ionic compound.
type Reaction struct {
	Cation    Ion
	Anion     Ion
	CationSub int
	AnionSub  int
	// Coefficients holds a, b, c. Only meaningful when Balanced is true.
	Coefficients [3]int
	Balanced     bool
}

// Balance cross-reduces the charges into product subscripts and searches
// for the smallest product coefficient that balances the anion atoms.
func Balance(cation, anion Ion) Reaction {
	common := gcd(cation.Charge, anion.Charge)
	rx := Reaction{
		Cation:    cation,
		Anion:     anion,
		CationSub: anion.Charge / common,
		AnionSub:  cation.Charge / common,
	}
	perMolecule := rx.AnionAtomsPerMolecule()
	for c := 1; c <= maxProductCoefficient; c++ {
		required := c * rx.AnionSub
		if required%perMolecule != 0 {
			continue
		}
		rx.Coefficients = [3]int{c * rx.CationSub, required / perMolecule, c}
		rx.Balanced = true
		break
	}
	return rx
}

func (rx Reaction) AnionAtomsPerMolecule() int {
	if IsDiatomic(rx.Anion.Symbol) {
		return 2
	}
	return 1
}

// Product renders the compound formula, omitting subscripts of one.
func (rx Reaction) Product() string {
	return rx.Cation.Symbol + subscript(rx.CationSub) + rx.Anion.Symbol + subscript(rx.AnionSub)
}

// Reactant renders the anion as it appears on the left-hand side.
func (rx Reaction) Reactant() string {
	if IsDiatomic(rx.Anion.Symbol) {
		return rx.Anion.Symbol + "2"
	}
	return rx.Anion.Symbol
}

func (rx Reaction) Prompt() string {
	return fmt.Sprintf("Balance:  _ %s + _ %s  →  _ %s", rx.Cation.Symbol, rx.Reactant(), rx.Product())
}

func (rx Reaction) Answer() string {
	if !rx.Balanced {
		return FallbackCoefficients
	}
	return formatTriple(rx.Coefficients[0], rx.Coefficients[1], rx.Coefficients[2])
}

// RandomReaction picks a cation and anion from the difficulty's pools.
func RandomReaction(r *rand.Rand, d Difficulty) Reaction {
	cations := CationPool(d)
	anions := AnionPool(d)
	return Balance(cations[r.IntN(len(cations))], anions[r.IntN(len(anions))])
}

// Question builds the multiple choice question for rx with three random
// coefficient triples as distractors.
func (rx Reaction) Question(r *rand.Rand, d Difficulty) Question {
	correct := rx.Answer()
	opts := fillOptions(
		[]string{correct},
		func() string { return formatTriple(r.IntN(5)+1, r.IntN(5)+1, r.IntN(5)+1) },
		func(i int) string { return formatTriple(i/25+1, i/5%5+1, i%5+1) },
	)
	shuffle(r, opts)
	return Question{
		Subject:    SubjectChemistry,
		Difficulty: d,
		Prompt:     rx.Prompt(),
		Options:    opts,
		Correct:    correct,
	}
}

func Chemistry(r *rand.Rand, d Difficulty) Question {
	return RandomReaction(r, d).Question(r, d)
}

func formatTriple(a, b, c int) string {
	return fmt.Sprintf("%d, %d, %d", a, b, c)
}

func subscript(n int) string {
	if n > 1 {
		return strconv.Itoa(n)
	}
	return ""
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
