package repository

import (
	"context"
	"errors"

	"clicker_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BoosterRepository struct {
	db *pgxpool.Pool
}

func NewBoosterRepository(db *pgxpool.Pool) *BoosterRepository {
	return &BoosterRepository{db: db}
}

func (r *BoosterRepository) GetByID(ctx context.Context, id int64) (*domain.Booster, error) {
	var b domain.Booster
	err := r.db.QueryRow(ctx,
		`SELECT id, title, description, base_price, type FROM booster WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Title, &b.Description, &b.BasePrice, &b.Type)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BoosterRepository) List(ctx context.Context) ([]domain.Booster, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, base_price, type FROM booster ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Booster
	for rows.Next() {
		var b domain.Booster
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.BasePrice, &b.Type); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

// GetUserLevels returns the caller's booster levels keyed by booster id.
// Boosters never upgraded are simply absent.
func (r *BoosterRepository) GetUserLevels(ctx context.Context, profileID int64) (map[int64]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT booster_id, level FROM user_booster WHERE game_profile_id = $1`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make(map[int64]int)
	for rows.Next() {
		var boosterID int64
		var level int
		if err := rows.Scan(&boosterID, &level); err != nil {
			return nil, err
		}
		levels[boosterID] = level
	}
	return levels, rows.Err()
}

// UpsertUserBoosterTx creates the relation row at level 0 on first upgrade
// attempt and returns the current row either way. The no-op DO UPDATE makes
// RETURNING work on the conflict path.
func (r *BoosterRepository) UpsertUserBoosterTx(ctx context.Context, tx pgx.Tx, profileID, boosterID int64) (*domain.UserBooster, error) {
	var ub domain.UserBooster
	err := tx.QueryRow(ctx,
		`INSERT INTO user_booster (game_profile_id, booster_id, level)
		 VALUES ($1, $2, 0)
		 ON CONFLICT (game_profile_id, booster_id) DO UPDATE SET level = user_booster.level
		 RETURNING id, game_profile_id, booster_id, level`,
		profileID, boosterID,
	).Scan(&ub.ID, &ub.GameProfileID, &ub.BoosterID, &ub.Level)
	if err != nil {
		return nil, err
	}
	return &ub, nil
}

// IncrementLevelTx raises the booster level by one, guarded against a
// concurrent upgrade having already moved it.
func (r *BoosterRepository) IncrementLevelTx(ctx context.Context, tx pgx.Tx, userBoosterID int64, fromLevel int) error {
	tag, err := tx.Exec(ctx,
		`UPDATE user_booster SET level = level + 1 WHERE id = $1 AND level = $2`,
		userBoosterID, fromLevel,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

// IsNotFound reports whether err is the driver's empty-result error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
