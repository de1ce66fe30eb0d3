package service

import (
	"context"
	"errors"
	"math"
	"time"

	"clicker_backend/internal/domain"
	"clicker_backend/internal/game"
	"clicker_backend/internal/logger"
	"clicker_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProfileNotFound      = errors.New("game profile not found")
	ErrBoosterNotFound      = errors.New("booster not found")
	ErrNotEnoughPoints      = errors.New("not enough points")
	ErrConflict             = errors.New("state changed concurrently")
	ErrDailyRefillExhausted = errors.New("no daily refills remaining")
)

// GameService owns the clicker economy: context reads with opportunistic
// regeneration, snapshot reconciliation and daily boosters.
type GameService struct {
	db       *pgxpool.Pool
	cfg      game.Config
	profiles *repository.ProfileRepository
	daily    *repository.DailyBoosterRepository
}

func NewGameService(db *pgxpool.Pool, cfg game.Config) *GameService {
	return &GameService{
		db:       db,
		cfg:      cfg,
		profiles: repository.NewProfileRepository(db),
		daily:    repository.NewDailyBoosterRepository(db),
	}
}

// GetContext fetches (or lazily creates) the caller's profile, applies
// regeneration if the tank is below cap, and returns the full context.
func (s *GameService) GetContext(ctx context.Context, userID int64) (*domain.GameContext, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID, s.cfg.EnergyLimit(0))
	if err != nil {
		return nil, err
	}

	limit := s.cfg.EnergyLimit(profile.EnergyLimitLevel)
	if profile.EnergyBalance < limit {
		now := time.Now()
		restored := game.RestoredEnergy(profile.LastEnergyUpdatedAt.UnixMilli(), now.UnixMilli(), s.cfg.EnergyRefillIntervalMs)
		if restored > 0 {
			newBalance := math.Min(profile.EnergyBalance+restored, limit)
			if err := s.profiles.UpdateEnergy(ctx, profile.ID, newBalance, now); err != nil {
				return nil, err
			}
			profile.EnergyBalance = newBalance
			profile.LastEnergyUpdatedAt = now
		}
	}

	return s.buildContext(ctx, profile)
}

// Sync validates a client snapshot and merges it into the profile. Rejections
// leave stored state untouched; a commit that loses a race is retried once.
func (s *GameService) Sync(ctx context.Context, userID int64, snap game.Snapshot) (*domain.GameContext, error) {
	for attempt := 0; ; attempt++ {
		result, err := s.trySync(ctx, userID, snap)
		if errors.Is(err, repository.ErrConflict) && attempt == 0 {
			continue
		}
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrConflict
		}
		return result, err
	}
}

func (s *GameService) trySync(ctx context.Context, userID int64, snap game.Snapshot) (*domain.GameContext, error) {
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

	state := game.ProfileState{
		PointBalance:        profile.PointBalance,
		TotalEarnedPoints:   profile.TotalEarnedPoints,
		EnergyBalance:       profile.EnergyBalance,
		MultitapLevel:       profile.MultitapLevel,
		EnergyLimitLevel:    profile.EnergyLimitLevel,
		LastEnergyUpdatedMs: profile.LastEnergyUpdatedAt.UnixMilli(),
		LastPointUpdatedMs:  profile.LastPointUpdatedAt.UnixMilli(),
	}

	commit, err := game.Reconcile(s.cfg, state, snap)
	if err != nil {
		logger.Warn("sync rejected",
			"user_id", userID,
			"claimed_points", snap.Points,
			"claimed_energy", snap.Energy,
			"claimed_timestamp", snap.Timestamp,
			"reason", err,
		)
		return nil, err
	}

	updatedAt := time.UnixMilli(commit.UpdatedMs)
	if err := s.profiles.CommitSync(ctx, tx, profile.ID,
		commit.PointBalance, commit.TotalEarnedPoints, commit.EnergyBalance,
		updatedAt, profile.LastPointUpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	profile.PointBalance = commit.PointBalance
	profile.TotalEarnedPoints = commit.TotalEarnedPoints
	profile.EnergyBalance = commit.EnergyBalance
	profile.LastPointUpdatedAt = updatedAt
	profile.LastEnergyUpdatedAt = updatedAt

	return s.buildContext(ctx, profile)
}

// CurrentEnergy computes the regeneration-adjusted balance without writing
// anything. Used by the live energy feed.
func (s *GameService) CurrentEnergy(ctx context.Context, userID int64) (balance, limit float64, err error) {
	profile, err := s.profiles.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, ErrProfileNotFound
		}
		return 0, 0, err
	}

	limit = s.cfg.EnergyLimit(profile.EnergyLimitLevel)
	restored := game.RestoredEnergy(profile.LastEnergyUpdatedAt.UnixMilli(), time.Now().UnixMilli(), s.cfg.EnergyRefillIntervalMs)
	balance = math.Min(profile.EnergyBalance+restored, limit)
	return balance, limit, nil
}

// ListDailyBoosters returns the daily catalog with the caller's remaining uses.
func (s *GameService) ListDailyBoosters(ctx context.Context, userID int64) ([]domain.DailyBoosterWithContext, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID, s.cfg.EnergyLimit(0))
	if err != nil {
		return nil, err
	}
	return s.daily.ListWithContext(ctx, profile.ID)
}

// UseDailyRefill consumes one daily refill and fills the tank to the cap.
// Consumption and refill commit as one unit under the profile row lock.
func (s *GameService) UseDailyRefill(ctx context.Context, userID, dailyBoosterID int64) (*domain.GameContext, error) {
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

	now := time.Now()
	if _, err := s.daily.ConsumeTx(ctx, tx, profile.ID, dailyBoosterID, now); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBoosterNotFound
		}
		if errors.Is(err, repository.ErrDailyBoosterExhausted) {
			return nil, ErrDailyRefillExhausted
		}
		return nil, err
	}

	limit := s.cfg.EnergyLimit(profile.EnergyLimitLevel)
	if err := s.profiles.RefillEnergyTx(ctx, tx, profile.ID, limit, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	profile.EnergyBalance = limit
	profile.LastEnergyUpdatedAt = now

	return s.buildContext(ctx, profile)
}

func (s *GameService) buildContext(ctx context.Context, profile *domain.GameProfile) (*domain.GameContext, error) {
	refill, err := s.daily.GetRefillState(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	remainingRefills := 0
	maxRefills := s.cfg.MaxEnergyRefillsPerDay
	lastRefilledAt := profile.CreatedAt
	if refill != nil {
		remainingRefills = refill.Remaining
		maxRefills = refill.MaxAmount
		if !refill.LastRefilledAt.IsZero() {
			lastRefilledAt = refill.LastRefilledAt
		}
	}

	pointsPerClick := s.cfg.PointsPerClick(profile.MultitapLevel)

	return &domain.GameContext{
		LevelName:              game.LevelFor(profile.TotalEarnedPoints).Name,
		EnergyLimit:            s.cfg.EnergyLimit(profile.EnergyLimitLevel),
		RemainingEnergyRefills: remainingRefills,
		TotalEarnedPoints:      profile.TotalEarnedPoints,
		PointBalance:           profile.PointBalance,
		EnergyBalance:          profile.EnergyBalance,
		MultitapLevel:          profile.MultitapLevel,
		EnergyLimitLevel:       profile.EnergyLimitLevel,
		LastEnergyRefilledAt:   lastRefilledAt,
		LastEnergyUpdatedAt:    profile.LastEnergyUpdatedAt,
		LastPointUpdatedAt:     profile.LastPointUpdatedAt,
		MaxEnergyRefillsPerDay: maxRefills,
		PointEarnsPerClick:     pointsPerClick,
		EnergyConsumesPerClick: pointsPerClick,
		EnergyRefillInterval:   s.cfg.EnergyRefillIntervalMs,
	}, nil
}
