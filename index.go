package iblt

import "math"

// indexUniverse is U in the gap formula below: 2^32.
const indexUniverse = float64(uint64(1) << 32)

// indexGenerator produces the strictly increasing sequence of cell indices
// a single item contributes to, deterministically seeded from the item's
// checksum. Two peers computing the same item's generator (from the same
// checksum, with the same PRNG) see bit-identical index sequences.
//
// The marginal probability that an item lands in cell j approaches
// p(j) = 1 / (1 + j/2); this is what makes the overhead of reconciling a
// symmetric difference of size d a constant multiple of d regardless of
// how large the two sets are.
type indexGenerator struct {
	rng   xoroshiro128Plus
	index uint64
}

// newIndexGenerator seeds a generator from an item's 128-bit checksum. The
// first emitted index is 0: every item is guaranteed to contribute to
// cell 0.
func newIndexGenerator(checksum [checksumSize]byte) indexGenerator {
	return indexGenerator{rng: newXoroshiro128Plus(checksum)}
}

// current returns the next index this generator will land on, without
// advancing state.
func (g *indexGenerator) current() uint64 {
	return g.index
}

// advance draws a fresh draw from the PRNG and moves current() forward by
// the resulting gap. A draw of zero is treated as one, avoiding a division
// by zero; both peers must apply the same substitution.
func (g *indexGenerator) advance() {
	r := g.rng.nextUint64()
	if r == 0 {
		r = 1
	}
	g.index += gap(g.index, r)
}

// gap computes Δ = ceil((i + 1.5) * (U/sqrt(r) - 1)), the distance to the
// next index given the current index i and a fresh PRNG draw r.
func gap(i, r uint64) uint64 {
	delta := (float64(i) + 1.5) * (indexUniverse/math.Sqrt(float64(r)) - 1.0)
	return uint64(math.Ceil(delta))
}
