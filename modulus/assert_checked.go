//go:build checked

package modulus

import "fmt"

// Checked builds (go build -tags checked) validate the operand range
// precondition on every call and panic on violations. Release builds compile
// the checks out entirely; see assert_release.go.

func assertReduced64(x, q uint64) {
	if x >= q {
		panic(fmt.Sprintf("modulus: operand %d out of range [0, %d)", x, q))
	}
}

func assertReduced32(x, q uint32) {
	if x >= q {
		panic(fmt.Sprintf("modulus: operand %d out of range [0, %d)", x, q))
	}
}
