package game

import "testing"

func TestRestoredEnergyWholeSecondsOnly(t *testing.T) {
	// 1 charge per second, 50s elapsed
	if got := RestoredEnergy(0, 50000, 1000); got != 50 {
		t.Fatalf("restored = %g, want 50", got)
	}
	// sub-second remainders are dropped
	if got := RestoredEnergy(0, 50999, 1000); got != 50 {
		t.Fatalf("restored = %g, want 50", got)
	}
	if got := RestoredEnergy(0, 999, 1000); got != 0 {
		t.Fatalf("restored = %g, want 0 below one interval", got)
	}
}

func TestRestoredEnergyMonotonic(t *testing.T) {
	prev := -1.0
	for elapsed := int64(0); elapsed <= 10000; elapsed += 250 {
		got := RestoredEnergy(1000, 1000+elapsed, 1000)
		if got < prev {
			t.Fatalf("restored decreased at elapsed=%dms: %g < %g", elapsed, got, prev)
		}
		prev = got
	}
}

func TestRestoredEnergyIdempotentFromSameWatermark(t *testing.T) {
	a := RestoredEnergy(12345, 98765, 1000)
	b := RestoredEnergy(12345, 98765, 1000)
	if a != b {
		t.Fatalf("same inputs gave %g then %g", a, b)
	}
}

func TestRestoredEnergyFractionalRate(t *testing.T) {
	// 2000ms interval = 0.5 charges per second
	if got := RestoredEnergy(0, 10000, 2000); got != 5 {
		t.Fatalf("restored = %g, want 5", got)
	}
}
