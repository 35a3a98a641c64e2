package modulus

// Slice-level forms of the fast operations, covering the per-limb loops that
// polynomial and RNS layers run over coefficient vectors. Slice lengths are
// the caller's contract: p3 drives the iteration and p1/p2 must be at least
// as long. All inputs must hold reduced residues.

// AddVec evaluates p3 = p1 + p2 mod q coefficient-wise.
func (b *Barrett64) AddVec(p1, p2, p3 []uint64) {
	for i := range p3 {
		p3[i] = b.AddModFast(p1[i], p2[i])
	}
}

// SubVec evaluates p3 = p1 - p2 mod q coefficient-wise.
func (b *Barrett64) SubVec(p1, p2, p3 []uint64) {
	for i := range p3 {
		p3[i] = b.SubModFast(p1[i], p2[i])
	}
}

// NegVec evaluates p2 = -p1 mod q coefficient-wise.
func (b *Barrett64) NegVec(p1, p2 []uint64) {
	for i := range p2 {
		p2[i] = b.NegModFast(p1[i])
	}
}

// MulVec evaluates p3 = p1 * p2 mod q coefficient-wise.
func (b *Barrett64) MulVec(p1, p2, p3 []uint64) {
	for i := range p3 {
		p3[i] = b.MulModFast(p1[i], p2[i])
	}
}

// MulScalarVec evaluates p3 = p1 * scalar mod q coefficient-wise. scalar must
// be in [0, q).
func (b *Barrett64) MulScalarVec(scalar uint64, p1, p3 []uint64) {
	for i := range p3 {
		p3[i] = b.MulModFast(p1[i], scalar)
	}
}
