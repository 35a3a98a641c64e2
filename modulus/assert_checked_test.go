//go:build checked

package modulus

import "testing"

// Run with `go test -tags checked` to exercise the fail-fast operand checks.

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: no panic on out-of-range operand", name)
		}
	}()
	f()
}

func TestCheckedOperandAssertions(t *testing.T) {
	b64, err := New64(17)
	if err != nil {
		t.Fatal(err)
	}
	mustPanic(t, "AddModFast", func() { b64.AddModFast(17, 0) })
	mustPanic(t, "SubModFast", func() { b64.SubModFast(0, 20) })
	mustPanic(t, "MulModFast", func() { b64.MulModFast(1, 99) })
	mustPanic(t, "NegModFast", func() { b64.NegModFast(17) })
	mustPanic(t, "ExpModFast", func() { b64.ExpModFast(18, 2) })

	b32, err := New32(17)
	if err != nil {
		t.Fatal(err)
	}
	mustPanic(t, "AddModFast32", func() { b32.AddModFast(17, 0) })
	mustPanic(t, "SubModFast32", func() { b32.SubModFast(0, 20) })
	mustPanic(t, "MulModFast32", func() { b32.MulModFast(1, 99) })
}
