package modulus

import (
	"fmt"
	"math/big"
	"math/bits"
)

// MaxModulusBits64 bounds valid Barrett64 moduli. Two spare bits keep a+b
// inside the scalar width and every reduction intermediate inside 128 bits.
const MaxModulusBits64 = 62

// Barrett64 performs arithmetic modulo a fixed uint64 modulus. The doubled
// width is 128 bits, handled as word pairs through math/bits. All constants
// are computed once by New64; a Barrett64 is immutable afterwards and safe
// for concurrent use.
type Barrett64 struct {
	q     uint64
	nbits int
	mu    [2]uint64 // floor(2^(2n+3)/q), low word first
	alpha int

	shiftAB uint // n - 2, clamped at 0
	shiftQ  uint // alpha + 2
}

// New64 precomputes the Barrett constants for q. It fails if q is zero or
// longer than MaxModulusBits64 bits. mu spans up to n+5 bits, so it is kept
// two-worded rather than narrowed to the scalar width; narrowing would
// corrupt the quotient estimate for n >= 61.
func New64(q uint64) (*Barrett64, error) {
	if q == 0 {
		return nil, fmt.Errorf("modulus: modulus must be non-zero")
	}
	n := bits.Len64(q)
	if n > MaxModulusBits64 {
		return nil, fmt.Errorf("modulus: %d-bit modulus %d leaves no headroom (max %d bits)", n, q, MaxModulusBits64)
	}

	// mu = floor(2^(2n+3) / q). The numerator spans up to 127 bits, so the
	// one-time derivation runs over big.Int before the words are extracted.
	mu := new(big.Int).Lsh(big.NewInt(1), uint(2*n+3))
	mu.Div(mu, new(big.Int).SetUint64(q))
	muHi := new(big.Int).Rsh(mu, 64)
	muLo := new(big.Int).Sub(mu, new(big.Int).Lsh(muHi, 64))

	shiftAB := 0
	if n > 2 {
		shiftAB = n - 2
	}
	return &Barrett64{
		q:       q,
		nbits:   n,
		mu:      [2]uint64{muLo.Uint64(), muHi.Uint64()},
		alpha:   n + 3,
		shiftAB: uint(shiftAB),
		shiftQ:  uint(n + 5),
	}, nil
}

// Modulus returns the modulus q.
func (b *Barrett64) Modulus() uint64 { return b.q }

// ModulusBits returns the bit length of q.
func (b *Barrett64) ModulusBits() int { return b.nbits }

// BarrettConstant returns mu = floor(2^(2n+3)/q) as {low, high} words.
func (b *Barrett64) BarrettConstant() [2]uint64 { return b.mu }

// BarrettAlpha returns the alpha parameter, fixed to n+3.
func (b *Barrett64) BarrettAlpha() int { return b.alpha }

// AddModFast returns (x + y) mod q. Both operands must be in [0, q).
func (b *Barrett64) AddModFast(x, y uint64) uint64 {
	assertReduced64(x, b.q)
	assertReduced64(y, b.q)
	s := x + y
	if s >= b.q {
		s -= b.q
	}
	return s
}

// SubModFast returns (x - y) mod q. Both operands must be in [0, q).
func (b *Barrett64) SubModFast(x, y uint64) uint64 {
	assertReduced64(x, b.q)
	assertReduced64(y, b.q)
	if x >= y {
		return x - y
	}
	return x + b.q - y
}

// NegModFast returns -x mod q. x must be in [0, q).
func (b *Barrett64) NegModFast(x uint64) uint64 {
	assertReduced64(x, b.q)
	if x == 0 {
		return 0
	}
	return b.q - x
}

// MulModFast returns (x * y) mod q. Both operands must be in [0, q).
//
// This is Algorithm 2 of https://homes.esat.kuleuven.be/~fvercaut/papers/bar_mont.pdf
// with alpha = n+3 and beta = -2: the quotient floor(xy/q) is estimated as
// ((xy >> (n-2)) * mu) >> (alpha+2), which the parameter choice bounds to an
// error of at most one. A single conditional subtraction then lands the
// remainder in [0, q).
func (b *Barrett64) MulModFast(x, y uint64) uint64 {
	r := b.MulModFastLazy(x, y)
	if r >= b.q {
		r -= b.q
	}
	return r
}

// MulModFastLazy returns (x * y) mod q in the range [0, 2q), skipping the
// final correction of MulModFast. Both operands must be in [0, q).
func (b *Barrett64) MulModFastLazy(x, y uint64) uint64 {
	assertReduced64(x, b.q)
	assertReduced64(y, b.q)

	xyHi, xyLo := bits.Mul64(x, y)

	// t = xy >> (n-2), at most n+2 <= 64 bits.
	t := xyHi<<(64-b.shiftAB) | xyLo>>b.shiftAB

	// qHat = (t * mu) >> (alpha+2). t*mu spans up to 2n+6 bits, three words
	// once n >= 59, so the product is assembled exactly before the shift.
	h0, l0 := bits.Mul64(t, b.mu[0])
	h1, l1 := bits.Mul64(t, b.mu[1])
	w1, carry := bits.Add64(h0, l1, 0)
	w2 := h1 + carry

	var qHat uint64
	if b.shiftQ < 64 {
		qHat = w1<<(64-b.shiftQ) | l0>>b.shiftQ
	} else {
		qHat = w2<<(128-b.shiftQ) | w1>>(b.shiftQ-64)
	}

	// xy - qHat*q < 2q < 2^64, so the low words carry the full result.
	return xyLo - qHat*b.q
}

// ExpModFast returns x^e mod q using square-and-multiply. x must be in [0, q).
func (b *Barrett64) ExpModFast(x, e uint64) uint64 {
	assertReduced64(x, b.q)
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
