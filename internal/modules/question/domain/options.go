package domain

import "math/rand/v2"

// maxDraws bounds random distractor sampling before the deterministic
// fallback takes over.
const maxDraws = 64

// fillOptions keeps seed values in order (the correct answer first), then adds
// distinct values from draw, then from fallback(0), fallback(1), ... until
// OptionCount options exist. fallback must yield distinct values for
// distinct i.
func fillOptions(seed []string, draw func() string, fallback func(i int) string) []string {
	out := make([]string, 0, OptionCount)
	seen := make(map[string]struct{}, OptionCount)
	add := func(v string) {
		if len(out) == OptionCount {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range seed {
		add(v)
	}
	for i := 0; len(out) < OptionCount && i < maxDraws && draw != nil; i++ {
		add(draw())
	}
	for i := 0; len(out) < OptionCount; i++ {
		add(fallback(i))
	}
	return out
}

func shuffle(r *rand.Rand, opts []string) {
	r.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
}
