//go:build !checked

package modulus

// Empty bodies inline to nothing, keeping the hot path free of validation
// branches. Build with -tags checked to enable the assertions.

func assertReduced64(x, q uint64) {}

func assertReduced32(x, q uint32) {}
