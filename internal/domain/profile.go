package domain

import "time"

// GameProfile is the authoritative per-account clicker state. Booster levels
// live in user_booster rows; the repository hydrates them here so callers
// never deal with absent rows (absence means level 0).
type GameProfile struct {
	ID                  int64     `db:"id"`
	OwnerID             int64     `db:"owner_id"`
	PointBalance        int64     `db:"point_balance"`
	TotalEarnedPoints   int64     `db:"total_earned_points"`
	EnergyBalance       float64   `db:"energy_balance"`
	MultitapLevel       int       `db:"multitap_level"`
	EnergyLimitLevel    int       `db:"energy_limit_level"`
	LastEnergyUpdatedAt time.Time `db:"last_energy_updated_at"`
	LastPointUpdatedAt  time.Time `db:"last_point_updated_at"`
	CreatedAt           time.Time `db:"created_at"`
}

// DailyRefillState is the user's slice of the daily refill booster, read by
// the context path. The remaining counter is reset by an external scheduler;
// this service only reads and decrements it.
type DailyRefillState struct {
	Remaining      int
	MaxAmount      int
	LastRefilledAt time.Time
}
