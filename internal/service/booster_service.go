package service

import (
	"context"
	"errors"

	"clicker_backend/internal/domain"
	"clicker_backend/internal/game"
	"clicker_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BoosterService prices and applies booster upgrades.
type BoosterService struct {
	db       *pgxpool.Pool
	cfg      game.Config
	profiles *repository.ProfileRepository
	boosters *repository.BoosterRepository
}

func NewBoosterService(db *pgxpool.Pool, cfg game.Config) *BoosterService {
	return &BoosterService{
		db:       db,
		cfg:      cfg,
		profiles: repository.NewProfileRepository(db),
		boosters: repository.NewBoosterRepository(db),
	}
}

// List returns the booster catalog priced for the caller's current levels.
func (s *BoosterService) List(ctx context.Context, userID int64) ([]domain.BoosterWithContext, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID, s.cfg.EnergyLimit(0))
	if err != nil {
		return nil, err
	}

	catalog, err := s.boosters.List(ctx)
	if err != nil {
		return nil, err
	}
	levels, err := s.boosters.GetUserLevels(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.BoosterWithContext, 0, len(catalog))
	for _, b := range catalog {
		level := levels[b.ID]
		res = append(res, domain.BoosterWithContext{
			ID:           b.ID,
			Title:        b.Title,
			Description:  b.Description,
			BasePrice:    b.BasePrice,
			Type:         b.Type,
			CurrentLevel: level,
			CurrentPrice: game.UpgradeCost(level, float64(b.BasePrice), s.cfg.PriceMultiplier(b.Type)),
		})
	}
	return res, nil
}

// Upgrade raises a booster one level, charging the current-level price.
// Check and apply run under the profile row lock so two concurrent calls
// cannot spend the same balance; a lost race is retried once.
func (s *BoosterService) Upgrade(ctx context.Context, userID, boosterID int64) (*domain.BoosterWithContext, error) {
	for attempt := 0; ; attempt++ {
		result, err := s.tryUpgrade(ctx, userID, boosterID)
		if errors.Is(err, repository.ErrConflict) && attempt == 0 {
			continue
		}
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrConflict
		}
		return result, err
	}
}

func (s *BoosterService) tryUpgrade(ctx context.Context, userID, boosterID int64) (*domain.BoosterWithContext, error) {
	booster, err := s.boosters.GetByID(ctx, boosterID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBoosterNotFound
		}
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	profile, err := s.profiles.GetByOwnerForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	userBooster, err := s.boosters.UpsertUserBoosterTx(ctx, tx, profile.ID, booster.ID)
	if err != nil {
		return nil, err
	}

	multiplier := s.cfg.PriceMultiplier(booster.Type)
	cost := game.UpgradeCost(userBooster.Level, float64(booster.BasePrice), multiplier)

	if _, err := s.profiles.DebitPointsTx(ctx, tx, profile.ID, cost); err != nil {
		if errors.Is(err, repository.ErrInsufficientPoints) {
			return nil, ErrNotEnoughPoints
		}
		return nil, err
	}
	if err := s.boosters.IncrementLevelTx(ctx, tx, userBooster.ID, userBooster.Level); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	newLevel := userBooster.Level + 1
	return &domain.BoosterWithContext{
		ID:           booster.ID,
		Title:        booster.Title,
		Description:  booster.Description,
		BasePrice:    booster.BasePrice,
		Type:         booster.Type,
		CurrentLevel: newLevel,
		CurrentPrice: game.UpgradeCost(newLevel, float64(booster.BasePrice), multiplier),
	}, nil
}
