package modulus

import (
	"fmt"
	"math/bits"
)

// MaxModulusBits32 bounds valid Barrett32 moduli, mirroring MaxModulusBits64.
const MaxModulusBits32 = 30

// Barrett32 is the 32-bit scalar instantiation of the backend, with uint64 as
// the doubled width. Immutable after construction, safe for concurrent use.
type Barrett32 struct {
	q     uint32
	nbits int
	mu    uint64 // floor(2^(2n+3)/q), kept in the doubled width
	alpha int

	shiftAB uint // n - 2, clamped at 0
	shiftQ  uint // alpha + 2
}

// New32 precomputes the Barrett constants for q. It fails if q is zero or
// longer than MaxModulusBits32 bits.
func New32(q uint32) (*Barrett32, error) {
	if q == 0 {
		return nil, fmt.Errorf("modulus: modulus must be non-zero")
	}
	n := bits.Len32(q)
	if n > MaxModulusBits32 {
		return nil, fmt.Errorf("modulus: %d-bit modulus %d leaves no headroom (max %d bits)", n, q, MaxModulusBits32)
	}
	shiftAB := 0
	if n > 2 {
		shiftAB = n - 2
	}
	return &Barrett32{
		q:       q,
		nbits:   n,
		mu:      (uint64(1) << uint(2*n+3)) / uint64(q),
		alpha:   n + 3,
		shiftAB: uint(shiftAB),
		shiftQ:  uint(n + 5),
	}, nil
}

// Modulus returns the modulus q.
func (b *Barrett32) Modulus() uint32 { return b.q }

// ModulusBits returns the bit length of q.
func (b *Barrett32) ModulusBits() int { return b.nbits }

// BarrettConstant returns mu = floor(2^(2n+3)/q).
func (b *Barrett32) BarrettConstant() uint64 { return b.mu }

// BarrettAlpha returns the alpha parameter, fixed to n+3.
func (b *Barrett32) BarrettAlpha() int { return b.alpha }

// AddModFast returns (x + y) mod q. Both operands must be in [0, q).
func (b *Barrett32) AddModFast(x, y uint32) uint32 {
	assertReduced32(x, b.q)
	assertReduced32(y, b.q)
	s := x + y
	if s >= b.q {
		s -= b.q
	}
	return s
}

// SubModFast returns (x - y) mod q. Both operands must be in [0, q).
func (b *Barrett32) SubModFast(x, y uint32) uint32 {
	assertReduced32(x, b.q)
	assertReduced32(y, b.q)
	if x >= y {
		return x - y
	}
	return x + b.q - y
}

// NegModFast returns -x mod q. x must be in [0, q).
func (b *Barrett32) NegModFast(x uint32) uint32 {
	assertReduced32(x, b.q)
	if x == 0 {
		return 0
	}
	return b.q - x
}

// MulModFast returns (x * y) mod q. Both operands must be in [0, q).
// See Barrett64.MulModFast for the algorithm.
func (b *Barrett32) MulModFast(x, y uint32) uint32 {
	r := b.MulModFastLazy(x, y)
	if r >= b.q {
		r -= b.q
	}
	return r
}

// MulModFastLazy returns (x * y) mod q in the range [0, 2q), skipping the
// final correction of MulModFast. Both operands must be in [0, q).
func (b *Barrett32) MulModFastLazy(x, y uint32) uint32 {
	assertReduced32(x, b.q)
	assertReduced32(y, b.q)

	xy := uint64(x) * uint64(y)

	// t = xy >> (n-2), at most n+2 <= 32 bits.
	t := xy >> b.shiftAB

	// qHat = (t * mu) >> (alpha+2). t*mu spans up to 2n+6 <= 66 bits, so the
	// product is split with Mul64 before the shift (alpha+2 <= 35 here).
	h, l := bits.Mul64(t, b.mu)
	qHat := h<<(64-b.shiftQ) | l>>b.shiftQ

	// xy - qHat*q < 2q, well inside the doubled width.
	return uint32(xy - qHat*uint64(b.q))
}

// ExpModFast returns x^e mod q using square-and-multiply. x must be in [0, q).
func (b *Barrett32) ExpModFast(x uint32, e uint64) uint32 {
	assertReduced32(x, b.q)
	result := 1 % b.q
	base := x
	for e > 0 {
		if e&1 == 1 {
			result = b.MulModFast(result, base)
		}
		e >>= 1
		if e > 0 {
			base = b.MulModFast(base, base)
		}
	}
	return result
}
