package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	syncAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "game_sync_accepted_total",
			Help: "Accepted game state sync commits",
		},
	)
	syncRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_sync_rejected_total",
			Help: "Rejected game state syncs by reason",
		},
		[]string{"reason"},
	)
	boosterUpgrades = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booster_upgrades_total",
			Help: "Successful booster upgrades by type",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(syncAccepted)
	prometheus.MustRegister(syncRejected)
	prometheus.MustRegister(boosterUpgrades)
}
