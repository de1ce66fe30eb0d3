package game

import "math"

// UpgradeCost returns the price to raise a booster from level to level+1.
// The result is truncated toward zero, not rounded: prices are user-facing
// currency and must match across implementations exactly.
func UpgradeCost(level int, basePrice, multiplier float64) int64 {
	return int64(math.Floor(basePrice * math.Pow(multiplier, float64(level))))
}

// CumulativeBenefit returns the total effect a booster grants at the given
// level. The i=0 term is included on purpose: owning a booster at level 0
// already grants its base increment.
func CumulativeBenefit(level int, baseIncrement, multiplier float64) int64 {
	var benefit int64
	for i := 0; i <= level; i++ {
		benefit += int64(math.Floor(baseIncrement * math.Pow(multiplier, float64(i))))
	}
	return benefit
}

// PointsPerClick returns points earned per click at the given multitap level.
// Energy consumed per click equals this value: one unit of energy per
// point-equivalent of click power.
func (c Config) PointsPerClick(multitapLevel int) int64 {
	return CumulativeBenefit(multitapLevel, c.MultitapBaseIncrement, c.MultitapIncrementMultiplier)
}

// EnergyLimit returns the energy cap at the given energy-limit booster level.
func (c Config) EnergyLimit(energyLimitLevel int) float64 {
	return c.DefaultEnergyLimit +
		float64(CumulativeBenefit(energyLimitLevel, c.EnergyLimitBaseIncrement, c.EnergyLimitIncrementMultiplier))
}

// PriceMultiplier returns the price curve multiplier for a booster type.
func (c Config) PriceMultiplier(boosterType string) float64 {
	switch boosterType {
	case BoosterMultitap:
		return c.MultitapPriceMultiplier
	case BoosterEnergyLimit:
		return c.EnergyLimitPriceMultiplier
	default:
		return 1
	}
}

// Booster types known to the price curves.
const (
	BoosterMultitap    = "MULTITAP"
	BoosterEnergyLimit = "ENERGY_LIMIT"
	BoosterDailyRefill = "DAILY_REFILL"
)
