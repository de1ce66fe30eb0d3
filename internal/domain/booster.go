package domain

import "time"

// Booster is a catalog entry, immutable after seeding.
type Booster struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	BasePrice   int64  `db:"base_price"`
	Type        string `db:"type"`
}

// UserBooster links a profile to a catalog booster at a level. Created
// lazily at level 0 on first upgrade attempt.
type UserBooster struct {
	ID            int64 `db:"id"`
	GameProfileID int64 `db:"game_profile_id"`
	BoosterID     int64 `db:"booster_id"`
	Level         int   `db:"level"`
}

// BoosterWithContext is the catalog entry enriched with the caller's level
// and the price of the next upgrade.
type BoosterWithContext struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	BasePrice    int64  `json:"basePrice"`
	Type         string `json:"type"`
	CurrentLevel int    `json:"currentLevel"`
	CurrentPrice int64  `json:"currentPrice"`
}

// DailyBooster is a capped-use consumable, replenished externally.
type DailyBooster struct {
	ID           int64  `db:"id"`
	Title        string `db:"title"`
	Description  string `db:"description"`
	Type         string `db:"type"`
	MaxAvailable int    `db:"max_available"`
}

// DailyBoosterWithContext carries the caller's remaining uses. A user who
// never used the booster sees the full amount.
type DailyBoosterWithContext struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	MaxAmount       int        `json:"maxAmount"`
	RemainingAmount int        `json:"remainingAmount"`
	LastRefilledAt  *time.Time `json:"lastRefilledAt,omitempty"`
}
