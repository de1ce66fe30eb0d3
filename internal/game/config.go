package game

// Config holds the economy tunables. It is built once at startup and passed
// explicitly to every rule that needs it, so tests can run with alternate
// numbers without touching process state.
type Config struct {
	MultitapPriceMultiplier        float64
	EnergyLimitPriceMultiplier     float64
	MultitapBaseIncrement          float64
	MultitapIncrementMultiplier    float64
	EnergyLimitBaseIncrement       float64
	EnergyLimitIncrementMultiplier float64
	DefaultEnergyLimit             float64
	EnergyRefillIntervalMs         int64
	MaxEnergyRefillsPerDay         int

	// SyncTolerance is the slack factor applied to the energy and points
	// bounds during sync, absorbing network latency skew on client clocks.
	SyncTolerance float64
}

// DefaultConfig returns the production tunables.
func DefaultConfig() Config {
	return Config{
		MultitapPriceMultiplier:        2.0,
		EnergyLimitPriceMultiplier:     1.75,
		MultitapBaseIncrement:          1,
		MultitapIncrementMultiplier:    1.5,
		EnergyLimitBaseIncrement:       500,
		EnergyLimitIncrementMultiplier: 1.2,
		DefaultEnergyLimit:             1000,
		EnergyRefillIntervalMs:         1000,
		MaxEnergyRefillsPerDay:         6,
		SyncTolerance:                  1.2,
	}
}
