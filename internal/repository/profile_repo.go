package repository

import (
	"context"
	"errors"
	"time"

	"clicker_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrConflict means a guarded write found the row changed since it was
	// read. Callers retry once or surface it as a transient conflict.
	ErrConflict = errors.New("write conflict")

	ErrInsufficientPoints = errors.New("insufficient points")
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// profileQuery hydrates booster levels from user_booster rows; a missing row
// is level 0, applied here so callers never see an absent relation.
const profileQuery = `
	SELECT p.id, p.owner_id, p.point_balance, p.total_earned_points, p.energy_balance,
	       COALESCE(mt.level, 0), COALESCE(el.level, 0),
	       p.last_energy_updated_at, p.last_point_updated_at, p.created_at
	FROM game_profile p
	LEFT JOIN user_booster mt ON mt.game_profile_id = p.id
		AND mt.booster_id = (SELECT id FROM booster WHERE type = 'MULTITAP')
	LEFT JOIN user_booster el ON el.game_profile_id = p.id
		AND el.booster_id = (SELECT id FROM booster WHERE type = 'ENERGY_LIMIT')
	WHERE p.owner_id = $1`

func scanProfile(row pgx.Row) (*domain.GameProfile, error) {
	var p domain.GameProfile
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.PointBalance,
		&p.TotalEarnedPoints,
		&p.EnergyBalance,
		&p.MultitapLevel,
		&p.EnergyLimitLevel,
		&p.LastEnergyUpdatedAt,
		&p.LastPointUpdatedAt,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByOwner(ctx context.Context, ownerID int64) (*domain.GameProfile, error) {
	return scanProfile(r.db.QueryRow(ctx, profileQuery, ownerID))
}

// GetOrCreate lazily creates the profile on first context read. The insert is
// an idempotent upsert keyed by owner; new profiles start with a full tank.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, ownerID int64, initialEnergy float64) (*domain.GameProfile, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO game_profile (owner_id, energy_balance)
		 VALUES ($1, $2)
		 ON CONFLICT (owner_id) DO NOTHING`,
		ownerID, initialEnergy,
	)
	if err != nil {
		return nil, err
	}
	return r.GetByOwner(ctx, ownerID)
}

// GetByOwnerForUpdate locks the profile row for the duration of tx. This is
// the per-account serialization point for sync and upgrade commits.
func (r *ProfileRepository) GetByOwnerForUpdate(ctx context.Context, tx pgx.Tx, ownerID int64) (*domain.GameProfile, error) {
	return scanProfile(tx.QueryRow(ctx, profileQuery+" FOR UPDATE OF p", ownerID))
}

// UpdateEnergy persists an opportunistic regeneration on the read path.
func (r *ProfileRepository) UpdateEnergy(ctx context.Context, profileID int64, energy float64, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE game_profile
		 SET energy_balance = $1, last_energy_updated_at = $2
		 WHERE id = $3`,
		energy, at, profileID,
	)
	return err
}

// CommitSync applies an accepted snapshot. The watermark guard makes the
// write a no-op if another commit advanced the profile since it was read;
// zero rows affected surfaces as ErrConflict, never as a silent stale write.
func (r *ProfileRepository) CommitSync(
	ctx context.Context,
	tx pgx.Tx,
	profileID int64,
	pointBalance, totalEarnedPoints int64,
	energyBalance float64,
	updatedAt, prevPointUpdatedAt time.Time,
) error {
	tag, err := tx.Exec(ctx,
		`UPDATE game_profile
		 SET point_balance = $1,
		     total_earned_points = $2,
		     energy_balance = $3,
		     last_point_updated_at = $4,
		     last_energy_updated_at = $4
		 WHERE id = $5 AND last_point_updated_at = $6`,
		pointBalance, totalEarnedPoints, energyBalance, updatedAt, profileID, prevPointUpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

// DebitPointsTx deducts a booster price under the caller's transaction.
// The balance check and the deduction are a single guarded statement.
func (r *ProfileRepository) DebitPointsTx(ctx context.Context, tx pgx.Tx, profileID, amount int64) (int64, error) {
	var newBalance int64
	err := tx.QueryRow(ctx,
		`UPDATE game_profile
		 SET point_balance = point_balance - $1
		 WHERE id = $2 AND point_balance >= $1
		 RETURNING point_balance`,
		amount, profileID,
	).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrInsufficientPoints
		}
		return 0, err
	}
	return newBalance, nil
}

// RefillEnergyTx sets the energy balance to the cap under the caller's
// transaction (daily refill use).
func (r *ProfileRepository) RefillEnergyTx(ctx context.Context, tx pgx.Tx, profileID int64, cap float64, at time.Time) error {
	_, err := tx.Exec(ctx,
		`UPDATE game_profile
		 SET energy_balance = $1, last_energy_updated_at = $2
		 WHERE id = $3`,
		cap, at, profileID,
	)
	return err
}
