package repository

import (
	"context"
	"errors"
	"time"

	"clicker_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDailyBoosterExhausted = errors.New("daily booster exhausted")

type DailyBoosterRepository struct {
	db *pgxpool.Pool
}

func NewDailyBoosterRepository(db *pgxpool.Pool) *DailyBoosterRepository {
	return &DailyBoosterRepository{db: db}
}

// ListWithContext returns the daily booster catalog joined with the caller's
// remaining amounts. No user row means the full amount is still available.
func (r *DailyBoosterRepository) ListWithContext(ctx context.Context, profileID int64) ([]domain.DailyBoosterWithContext, error) {
	rows, err := r.db.Query(ctx,
		`SELECT d.id, d.title, d.description, d.max_available,
		        COALESCE(u.remaining, d.max_available), u.last_refilled_at
		 FROM daily_booster d
		 LEFT JOIN user_daily_booster u
		   ON u.daily_booster_id = d.id AND u.game_profile_id = $1
		 ORDER BY d.id`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.DailyBoosterWithContext
	for rows.Next() {
		var b domain.DailyBoosterWithContext
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.MaxAmount, &b.RemainingAmount, &b.LastRefilledAt); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

// GetRefillState returns the caller's view of the DAILY_REFILL booster, or
// nil when the catalog has none.
func (r *DailyBoosterRepository) GetRefillState(ctx context.Context, profileID int64) (*domain.DailyRefillState, error) {
	var s domain.DailyRefillState
	var lastRefilledAt *time.Time
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(u.remaining, d.max_available), d.max_available, u.last_refilled_at
		 FROM daily_booster d
		 LEFT JOIN user_daily_booster u
		   ON u.daily_booster_id = d.id AND u.game_profile_id = $1
		 WHERE d.type = 'DAILY_REFILL'`,
		profileID,
	).Scan(&s.Remaining, &s.MaxAmount, &lastRefilledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if lastRefilledAt != nil {
		s.LastRefilledAt = *lastRefilledAt
	}
	return &s, nil
}

// ConsumeTx decrements one use under the caller's transaction, lazily
// creating the user row at the full amount first. The external scheduler
// resets remaining; this only ever counts down.
func (r *DailyBoosterRepository) ConsumeTx(ctx context.Context, tx pgx.Tx, profileID, dailyBoosterID int64, now time.Time) (int, error) {
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM daily_booster WHERE id = $1)`, dailyBoosterID,
	).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, pgx.ErrNoRows
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO user_daily_booster (game_profile_id, daily_booster_id, remaining)
		 SELECT $1, id, max_available FROM daily_booster WHERE id = $2
		 ON CONFLICT (game_profile_id, daily_booster_id) DO NOTHING`,
		profileID, dailyBoosterID,
	)
	if err != nil {
		return 0, err
	}

	var remaining int
	err = tx.QueryRow(ctx,
		`UPDATE user_daily_booster
		 SET remaining = remaining - 1, last_refilled_at = $3
		 WHERE game_profile_id = $1 AND daily_booster_id = $2 AND remaining > 0
		 RETURNING remaining`,
		profileID, dailyBoosterID, now,
	).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrDailyBoosterExhausted
		}
		return 0, err
	}
	return remaining, nil
}
