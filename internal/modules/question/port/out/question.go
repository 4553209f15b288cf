package out

// RandomSource feeds the generators. It matches math/rand/v2.Source.
type RandomSource interface {
	Uint64() uint64
}
