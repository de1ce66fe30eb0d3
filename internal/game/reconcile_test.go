package game

import (
	"errors"
	"testing"
)

// flatConfig gives pointsPerClick=5 at multitap level 0 and a flat energy
// limit of 100, matching the numbers used throughout these tests.
func flatConfig() Config {
	cfg := DefaultConfig()
	cfg.MultitapBaseIncrement = 5
	cfg.MultitapIncrementMultiplier = 1.05
	cfg.DefaultEnergyLimit = 100
	cfg.EnergyLimitBaseIncrement = 0
	cfg.EnergyRefillIntervalMs = 1000
	return cfg
}

func TestReconcileStaleTimestamp(t *testing.T) {
	p := ProfileState{PointBalance: 100, LastPointUpdatedMs: 1000, LastEnergyUpdatedMs: 1000}

	_, err := Reconcile(flatConfig(), p, Snapshot{Points: 100, Energy: 0, Timestamp: 999})

	var stale *StaleTimestampError
	if !errors.As(err, &stale) {
		t.Fatalf("expected StaleTimestampError, got %v", err)
	}
	if stale.Claimed != 999 || stale.LastMs != 1000 {
		t.Fatalf("error carries %d/%d, want 999/1000", stale.Claimed, stale.LastMs)
	}
}

func TestReconcileEnergyOverrun(t *testing.T) {
	p := ProfileState{EnergyBalance: 50, LastEnergyUpdatedMs: 1000, LastPointUpdatedMs: 1000}

	// 10s elapsed at 1/s: expected = min(50+10, 100) = 60; tolerance band ends at 72
	_, err := Reconcile(flatConfig(), p, Snapshot{Points: 0, Energy: 73, Timestamp: 11000})

	var overrun *EnergyOverrunError
	if !errors.As(err, &overrun) {
		t.Fatalf("expected EnergyOverrunError, got %v", err)
	}
	if overrun.Expected != 60 {
		t.Fatalf("expected bound %g, want 60", overrun.Expected)
	}

	// spending energy is always fine
	if _, err := Reconcile(flatConfig(), p, Snapshot{Points: 0, Energy: 1, Timestamp: 11000}); err != nil {
		t.Fatalf("claim below expected rejected: %v", err)
	}
}

func TestReconcilePointsBound(t *testing.T) {
	// expected energy 100, pointsPerClick 5 -> maxClicks 20, bound 20*5*1.2 = 120
	p := ProfileState{
		PointBalance:        100,
		EnergyBalance:       100,
		LastEnergyUpdatedMs: 1000,
		LastPointUpdatedMs:  1000,
	}

	_, err := Reconcile(flatConfig(), p, Snapshot{Points: 221, Energy: 0, Timestamp: 1000})
	var overrun *PointsOverrunError
	if !errors.As(err, &overrun) {
		t.Fatalf("expected PointsOverrunError, got %v", err)
	}
	if overrun.Unsynced != 121 || overrun.MaxPossible != 120 {
		t.Fatalf("error carries %d/%g, want 121/120", overrun.Unsynced, overrun.MaxPossible)
	}

	// exactly on the bound is accepted
	commit, err := Reconcile(flatConfig(), p, Snapshot{Points: 220, Energy: 0, Timestamp: 1000})
	if err != nil {
		t.Fatalf("claim on the bound rejected: %v", err)
	}
	if commit.PointBalance != 220 || commit.TotalEarnedPoints != 120 {
		t.Fatalf("commit = %+v", commit)
	}
}

func TestReconcileAcceptCommitsClaim(t *testing.T) {
	p := ProfileState{
		PointBalance:        100,
		TotalEarnedPoints:   500,
		EnergyBalance:       80,
		LastEnergyUpdatedMs: 1000,
		LastPointUpdatedMs:  1000,
	}

	commit, err := Reconcile(flatConfig(), p, Snapshot{Points: 150, Energy: 40, Timestamp: 6000})
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if commit.PointBalance != 150 {
		t.Errorf("point balance = %d, want 150", commit.PointBalance)
	}
	if commit.TotalEarnedPoints != 550 {
		t.Errorf("total earned = %d, want 550", commit.TotalEarnedPoints)
	}
	if commit.EnergyBalance != 40 {
		t.Errorf("energy = %g, want 40", commit.EnergyBalance)
	}
	if commit.UpdatedMs != 6000 {
		t.Errorf("updatedMs = %d, want 6000", commit.UpdatedMs)
	}
}

func TestReconcileNegativeDeltaKeepsLifetimeCounter(t *testing.T) {
	p := ProfileState{
		PointBalance:        100,
		TotalEarnedPoints:   500,
		EnergyBalance:       10,
		LastEnergyUpdatedMs: 1000,
		LastPointUpdatedMs:  1000,
	}

	// client spent points elsewhere: balance drops, lifetime counter does not
	commit, err := Reconcile(flatConfig(), p, Snapshot{Points: 40, Energy: 10, Timestamp: 1000})
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if commit.PointBalance != 40 {
		t.Errorf("point balance = %d, want 40", commit.PointBalance)
	}
	if commit.TotalEarnedPoints != 500 {
		t.Errorf("total earned = %d, want 500 (must not decrease)", commit.TotalEarnedPoints)
	}
}

func TestReconcileEnergyClampedToLimit(t *testing.T) {
	p := ProfileState{
		EnergyBalance:       100,
		LastEnergyUpdatedMs: 1000,
		LastPointUpdatedMs:  1000,
	}

	// within the tolerance band but above the cap: stored energy never exceeds the limit
	commit, err := Reconcile(flatConfig(), p, Snapshot{Points: 0, Energy: 110, Timestamp: 1000})
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if commit.EnergyBalance != 100 {
		t.Errorf("energy = %g, want clamped to 100", commit.EnergyBalance)
	}
}

func TestReconcileZeroClickValueSkipsPointsGate(t *testing.T) {
	// base increment 0.5 floors pointsPerClick to 0; with nothing earnable
	// per click the points gate has no budget to enforce and must not reject
	cfg := flatConfig()
	cfg.MultitapBaseIncrement = 0.5

	p := ProfileState{
		EnergyBalance:       10,
		LastEnergyUpdatedMs: 1000,
		LastPointUpdatedMs:  1000,
	}

	commit, err := Reconcile(cfg, p, Snapshot{Points: 1000, Energy: 0, Timestamp: 1000})
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if commit.PointBalance != 1000 {
		t.Errorf("point balance = %d, want 1000", commit.PointBalance)
	}
}

func TestReconcileInvalidInput(t *testing.T) {
	p := ProfileState{LastEnergyUpdatedMs: 1000, LastPointUpdatedMs: 1000}

	for _, snap := range []Snapshot{
		{Points: -1, Energy: 0, Timestamp: 2000},
		{Points: 0, Energy: -0.5, Timestamp: 2000},
	} {
		_, err := Reconcile(flatConfig(), p, snap)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("snapshot %+v: expected InvalidInputError, got %v", snap, err)
		}
	}
}
