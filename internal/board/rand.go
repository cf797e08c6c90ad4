package board

// PRNG is a xorshift64* generator. It is deterministic for a given seed,
// which keeps zobrist keys and magic searches reproducible across runs.
// A PRNG is not safe for concurrent use; give each goroutine its own.
type PRNG struct {
	state uint64
}

// NewPRNG returns a generator seeded with seed. A zero seed is replaced,
// since xorshift never leaves the all-zero state.
func NewPRNG(seed uint64) *PRNG {
	if seed == 0 {
		seed = 0x98F107A2BEEF1234
	}
	return &PRNG{state: seed}
}

// Uint64 returns the next pseudo-random value.
func (p *PRNG) Uint64() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// SparseUint64 returns a value with roughly an eighth of its bits set.
// Magic candidates with few bits converge much faster.
func (p *PRNG) SparseUint64() uint64 {
	return p.Uint64() & p.Uint64() & p.Uint64()
}
