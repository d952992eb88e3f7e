package testkit

import "testing"

var clockFn = func() int64 { return 1 }

func TestSwapRestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &clockFn, func() int64 { return 99 })
		if got := clockFn(); got != 99 {
			t.Fatalf("swap did not take effect, got %d", got)
		}
	})
	// Cleanup ran when the subtest finished
	if got := clockFn(); got != 1 {
		t.Fatalf("swap did not restore original, got %d", got)
	}
}

func TestSwapNonFunctionType(t *testing.T) {
	n := 10
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &n, 42)
		if n != 42 {
			t.Fatalf("swap failed, got %d", n)
		}
	})
	if n != 10 {
		t.Fatalf("swap did not restore original, got %d", n)
	}
}
