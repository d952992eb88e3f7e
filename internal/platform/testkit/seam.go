package testkit

import "testing"

// Swap swaps a function variable or field for the duration of the test and
// restores it after. Used to inject clocks and other seams
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}
