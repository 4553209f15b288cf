package domain_test

import (
	"fmt"
	"strings"
	"testing"

	"sciquiz/internal/modules/question/domain"
)

func TestBalanceKnownReactions(t *testing.T) {
	t.Parallel()
	cases := []struct {
		cation, anion domain.Ion
		product       string
		reactant      string
		answer        string
	}{
		{domain.Ion{Symbol: "Na", Charge: 1}, domain.Ion{Symbol: "Cl", Charge: 1}, "NaCl", "Cl2", "2, 1, 2"},
		{domain.Ion{Symbol: "Al", Charge: 3}, domain.Ion{Symbol: "O", Charge: 2}, "Al2O3", "O2", "4, 3, 2"},
		{domain.Ion{Symbol: "Mg", Charge: 2}, domain.Ion{Symbol: "S", Charge: 2}, "MgS", "S", "1, 1, 1"},
		{domain.Ion{Symbol: "Ca", Charge: 2}, domain.Ion{Symbol: "N", Charge: 3}, "Ca3N2", "N2", "3, 1, 1"},
		{domain.Ion{Symbol: "K", Charge: 1}, domain.Ion{Symbol: "S", Charge: 2}, "K2S", "S", "2, 1, 1"},
	}
	for _, tc := range cases {
		rx := domain.Balance(tc.cation, tc.anion)
		if !rx.Balanced {
			t.Fatalf("%s + %s should balance", tc.cation.Symbol, tc.anion.Symbol)
		}
		if rx.Product() != tc.product || rx.Reactant() != tc.reactant {
			t.Fatalf("unexpected formula: %s / %s", rx.Reactant(), rx.Product())
		}
		if rx.Answer() != tc.answer {
			t.Fatalf("%s: expected %s, got %s", tc.product, tc.answer, rx.Answer())
		}
	}
	rx := domain.Balance(domain.Ion{Symbol: "Na", Charge: 1}, domain.Ion{Symbol: "Cl", Charge: 1})
	if want := "Balance:  _ Na + _ Cl2  →  _ NaCl"; rx.Prompt() != want {
		t.Fatalf("unexpected prompt %q", rx.Prompt())
	}
}

// Every cation/anion pair reachable on any difficulty balances within the
// coefficient scan, so the fallback answer never reaches a player.
func TestBalanceNeverFallsBackForPoolPairs(t *testing.T) {
	t.Parallel()
	for _, cat := range domain.CationPool(domain.DifficultyHard) {
		for _, an := range domain.AnionPool(domain.DifficultyHard) {
			rx := domain.Balance(cat, an)
			if !rx.Balanced {
				t.Fatalf("%s + %s fell back to %s", cat.Symbol, an.Symbol, domain.FallbackCoefficients)
			}
			assertConserved(t, rx)
		}
	}
}

func TestUnbalancedReactionReportsFallback(t *testing.T) {
	t.Parallel()
	var rx domain.Reaction
	if rx.Answer() != domain.FallbackCoefficients {
		t.Fatalf("unbalanced reaction must report the fallback, got %s", rx.Answer())
	}
}

func TestHardPoolsExtendBasePools(t *testing.T) {
	t.Parallel()
	easy := domain.CationPool(domain.DifficultyEasy)
	medium := domain.CationPool(domain.DifficultyMedium)
	hard := domain.CationPool(domain.DifficultyHard)
	if len(easy) != 6 || len(medium) != 6 || len(hard) != 8 {
		t.Fatalf("unexpected cation pool sizes %d/%d/%d", len(easy), len(medium), len(hard))
	}
	if len(domain.AnionPool(domain.DifficultyEasy)) != 4 || len(domain.AnionPool(domain.DifficultyHard)) != 6 {
		t.Fatalf("unexpected anion pool sizes")
	}
	hard[0].Symbol = "Xx"
	if domain.CationPool(domain.DifficultyHard)[0].Symbol != "Na" {
		t.Fatalf("pools must be copies")
	}
}

func TestChemistryQuestionsHoldInvariants(t *testing.T) {
	t.Parallel()
	for i, d := range domain.Difficulties() {
		r := newRand(uint64(100 + i))
		for n := 0; n < samplesPerDifficulty; n++ {
			rx := domain.RandomReaction(r, d)
			q := rx.Question(r, d)
			if err := q.Validate(); err != nil {
				t.Fatalf("%s sample %d: %v (%+v)", d, n, err, q)
			}
			if q.Correct != rx.Answer() {
				t.Fatalf("correct answer %s differs from reaction answer %s", q.Correct, rx.Answer())
			}
			assertConserved(t, rx)
			for _, opt := range q.Options {
				var a, b, c int
				if _, err := fmt.Sscanf(opt, "%d, %d, %d", &a, &b, &c); err != nil {
					t.Fatalf("option %q is not a coefficient triple", opt)
				}
			}
			if d != domain.DifficultyHard && (strings.Contains(q.Prompt, "Zn") || strings.Contains(q.Prompt, "Br")) {
				t.Fatalf("hard-only ion on %s: %s", d, q.Prompt)
			}
		}
	}
}

func TestChemistryGeneratorSetsSubject(t *testing.T) {
	t.Parallel()
	q := domain.Chemistry(newRand(3), domain.DifficultyEasy)
	if q.Subject != domain.SubjectChemistry || !strings.HasPrefix(q.Prompt, "Balance:") {
		t.Fatalf("unexpected chemistry question %+v", q)
	}
}

func assertConserved(t *testing.T, rx domain.Reaction) {
	t.Helper()
	a, b, c := rx.Coefficients[0], rx.Coefficients[1], rx.Coefficients[2]
	if a*rx.Cation.Charge != b*rx.AnionAtomsPerMolecule()*rx.Anion.Charge {
		t.Fatalf("charge not conserved for %s: %d,%d,%d", rx.Product(), a, b, c)
	}
	if a != c*rx.CationSub || b*rx.AnionAtomsPerMolecule() != c*rx.AnionSub {
		t.Fatalf("atoms not balanced for %s: %d,%d,%d", rx.Product(), a, b, c)
	}
}
