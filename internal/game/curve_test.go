package game

import (
	"math"
	"testing"
)

func TestUpgradeCostTruncatesTowardZero(t *testing.T) {
	// floor, not round: 1000 * 1.75^1 = 1750, 1.75^2 = 3062.5 -> 3062
	if got := UpgradeCost(1, 1000, 1.75); got != 1750 {
		t.Fatalf("cost(1) = %d, want 1750", got)
	}
	if got := UpgradeCost(2, 1000, 1.75); got != 3062 {
		t.Fatalf("cost(2) = %d, want 3062", got)
	}
}

func TestUpgradeCostStrictlyIncreasing(t *testing.T) {
	for _, multiplier := range []float64{1.75, 2.0} {
		prev := int64(-1)
		for level := 0; level <= 30; level++ {
			cost := UpgradeCost(level, 1000, multiplier)
			if cost <= prev {
				t.Fatalf("multiplier %g: cost(%d) = %d not above cost(%d) = %d",
					multiplier, level, cost, level-1, prev)
			}
			prev = cost
		}
	}
}

func TestCumulativeBenefitLevelZero(t *testing.T) {
	// level 0 already grants the base increment
	if got := CumulativeBenefit(0, 5, 1.05); got != 5 {
		t.Fatalf("benefit(0) = %d, want 5", got)
	}
	if got := CumulativeBenefit(0, 5.9, 1.05); got != 5 {
		t.Fatalf("benefit(0) = %d, want floor(5.9) = 5", got)
	}
}

func TestCumulativeBenefitStrictlyIncreasing(t *testing.T) {
	prev := int64(0)
	for level := 0; level <= 30; level++ {
		benefit := CumulativeBenefit(level, 5, 1.05)
		if benefit <= prev {
			t.Fatalf("benefit(%d) = %d not above benefit(%d) = %d", level, benefit, level-1, prev)
		}
		prev = benefit
	}
}

func TestCumulativeBenefitFloorsEachTerm(t *testing.T) {
	// terms are floored one by one, not summed then floored:
	// 5*1.05^0=5, 5*1.05^1=5.25->5, 5*1.05^2=5.5125->5 => 15
	if got := CumulativeBenefit(2, 5, 1.05); got != 15 {
		t.Fatalf("benefit(2) = %d, want 15", got)
	}
}

func TestPointsPerClickMatchesCurve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MultitapBaseIncrement = 5
	cfg.MultitapIncrementMultiplier = 1.05

	if got := cfg.PointsPerClick(0); got != 5 {
		t.Fatalf("pointsPerClick(0) = %d, want 5", got)
	}
}

func TestEnergyLimitAddsBenefitToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultEnergyLimit = 1000
	cfg.EnergyLimitBaseIncrement = 500
	cfg.EnergyLimitIncrementMultiplier = 1.2

	want := 1000 + float64(CumulativeBenefit(3, 500, 1.2))
	if got := cfg.EnergyLimit(3); math.Abs(got-want) > 1e-9 {
		t.Fatalf("energyLimit(3) = %g, want %g", got, want)
	}
}

func TestPriceMultiplierByType(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.PriceMultiplier(BoosterMultitap); got != cfg.MultitapPriceMultiplier {
		t.Fatalf("multitap multiplier = %g", got)
	}
	if got := cfg.PriceMultiplier(BoosterEnergyLimit); got != cfg.EnergyLimitPriceMultiplier {
		t.Fatalf("energy limit multiplier = %g", got)
	}
	if got := cfg.PriceMultiplier("UNKNOWN"); got != 1 {
		t.Fatalf("unknown type multiplier = %g, want 1", got)
	}
}
