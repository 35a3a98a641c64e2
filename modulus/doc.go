// Package modulus implements fixed-modulus residue arithmetic using a
// generalized Barrett reduction. A backend is constructed once per modulus,
// precomputing the modulus bit length n, the constant mu = floor(2^(2n+3)/q)
// and the parameter alpha = n+3 (beta is fixed to -2); the three fast
// operations then reduce sums, differences and products without dividing.
//
// Operands handed to the operations must already be reduced to [0, q).
// Release builds perform no per-call validation; building with the `checked`
// tag turns range violations into immediate panics.
//
// Backends are immutable after construction and safe for concurrent use.
package modulus
