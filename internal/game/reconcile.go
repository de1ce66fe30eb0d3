package game

import (
	"fmt"
	"math"
)

// Snapshot is the client-reported progress: absolute point balance, absolute
// energy balance and the client clock at the moment of reporting (unix ms).
type Snapshot struct {
	Points    int64
	Energy    float64
	Timestamp int64
}

// ProfileState is the server-held view of a profile, as read under the
// per-account lock right before reconciliation.
type ProfileState struct {
	PointBalance        int64
	TotalEarnedPoints   int64
	EnergyBalance       float64
	MultitapLevel       int
	EnergyLimitLevel    int
	LastEnergyUpdatedMs int64
	LastPointUpdatedMs  int64
}

// Commit is the merged state to be written if the snapshot passed all gates.
type Commit struct {
	PointBalance      int64
	TotalEarnedPoints int64
	EnergyBalance     float64
	UpdatedMs         int64
}

// InvalidInputError rejects snapshots with negative or non-finite fields.
// The upstream implementation parsed these and then did nothing with the
// result; here the rejection is explicit and awaits product sign-off.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s must be a non-negative number", e.Field)
}

// StaleTimestampError rejects out-of-order or replayed submissions.
type StaleTimestampError struct {
	Claimed int64
	LastMs  int64
}

func (e *StaleTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp: %d is older than last update %d", e.Claimed, e.LastMs)
}

// EnergyOverrunError rejects claimed energy above the physically possible
// regeneration bound.
type EnergyOverrunError struct {
	Claimed  float64
	Expected float64
}

func (e *EnergyOverrunError) Error() string {
	return fmt.Sprintf("invalid energy balance: %g / expected %g", e.Claimed, e.Expected)
}

// PointsOverrunError rejects point deltas above what the available energy
// could have produced.
type PointsOverrunError struct {
	Unsynced    int64
	MaxPossible float64
}

func (e *PointsOverrunError) Error() string {
	return fmt.Sprintf("invalid points calculation: unsynced points=%d, max possible points=%g", e.Unsynced, e.MaxPossible)
}

// Reconcile validates a client snapshot against authoritative state and
// returns the merged state to commit. Gates run in order; the first failure
// rejects the snapshot and the profile must stay untouched.
func Reconcile(cfg Config, p ProfileState, snap Snapshot) (Commit, error) {
	if snap.Points < 0 {
		return Commit{}, &InvalidInputError{Field: "points"}
	}
	if snap.Energy < 0 || math.IsNaN(snap.Energy) || math.IsInf(snap.Energy, 0) {
		return Commit{}, &InvalidInputError{Field: "currentEnergy"}
	}

	if snap.Timestamp < p.LastPointUpdatedMs {
		return Commit{}, &StaleTimestampError{Claimed: snap.Timestamp, LastMs: p.LastPointUpdatedMs}
	}

	limit := cfg.EnergyLimit(p.EnergyLimitLevel)
	restored := RestoredEnergy(p.LastEnergyUpdatedMs, snap.Timestamp, cfg.EnergyRefillIntervalMs)
	expectedEnergy := math.Min(p.EnergyBalance+restored, limit)

	if snap.Energy > expectedEnergy*cfg.SyncTolerance {
		return Commit{}, &EnergyOverrunError{Claimed: snap.Energy, Expected: expectedEnergy}
	}

	unsyncedPoints := snap.Points - p.PointBalance

	// A base increment below 1 floors the click value to zero, which leaves
	// no finite energy budget to bound earnings against. The gate only runs
	// when a click earns at least one point.
	pointsPerClick := cfg.PointsPerClick(p.MultitapLevel)
	if pointsPerClick > 0 {
		maxPossibleClicks := int64(math.Floor(expectedEnergy / float64(pointsPerClick)))
		maxPossiblePoints := float64(maxPossibleClicks*pointsPerClick) * cfg.SyncTolerance
		if float64(unsyncedPoints) > maxPossiblePoints {
			return Commit{}, &PointsOverrunError{Unsynced: unsyncedPoints, MaxPossible: maxPossiblePoints}
		}
	}

	// A negative delta means the client spent points; the balance follows the
	// claim but the lifetime counter never goes down.
	earnedDelta := unsyncedPoints
	if earnedDelta < 0 {
		earnedDelta = 0
	}

	return Commit{
		PointBalance:      snap.Points,
		TotalEarnedPoints: p.TotalEarnedPoints + earnedDelta,
		EnergyBalance:     math.Min(snap.Energy, limit),
		UpdatedMs:         snap.Timestamp,
	}, nil
}
