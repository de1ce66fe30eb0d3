package domain

import "time"

// GameContext is the full client-facing view of an account's clicker state,
// returned by the context fetch and by a successful sync.
type GameContext struct {
	LevelName              string    `json:"levelName"`
	EnergyLimit            float64   `json:"energyLimit"`
	RemainingEnergyRefills int       `json:"remainingEnergyRefills"`
	TotalEarnedPoints      int64     `json:"totalEarnedPoints"`
	PointBalance           int64     `json:"pointBalance"`
	EnergyBalance          float64   `json:"energyBalance"`
	MultitapLevel          int       `json:"multitapLevel"`
	EnergyLimitLevel       int       `json:"energyLimitLevel"`
	LastEnergyRefilledAt   time.Time `json:"lastEnergyRefilledAt"`
	LastEnergyUpdatedAt    time.Time `json:"lastEnergyUpdatedAt"`
	LastPointUpdatedAt     time.Time `json:"lastPointUpdatedAt"`
	MaxEnergyRefillsPerDay int       `json:"maxEnergyRefillsPerDay"`
	PointEarnsPerClick     int64     `json:"pointEarnsPerClick"`
	EnergyConsumesPerClick int64     `json:"energyConsumesPerClick"`
	EnergyRefillInterval   int64     `json:"energyRefillInterval"`
}
