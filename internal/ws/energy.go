package ws

import (
	"context"
	"time"

	"clicker_backend/internal/logger"
	"clicker_backend/internal/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// EnergyFeed streams the regeneration-adjusted energy balance to a client so
// the frontend does not have to poll the context endpoint for the ticker.
// The feed is one-way; inbound frames are drained only to detect disconnect.
type EnergyFeed struct {
	games    *service.GameService
	interval time.Duration
}

func NewEnergyFeed(games *service.GameService, interval time.Duration) *EnergyFeed {
	if interval < time.Second {
		interval = time.Second
	}
	return &EnergyFeed{games: games, interval: interval}
}

type energyUpdate struct {
	EnergyBalance float64 `json:"energyBalance"`
	EnergyLimit   float64 `json:"energyLimit"`
	Timestamp     int64   `json:"timestamp"`
}

// Serve runs the feed until the client disconnects or a read fails.
func (f *EnergyFeed) Serve(userID int64, conn *websocket.Conn) {
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	pinger := time.NewTicker(pingPeriod)
	defer pinger.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			balance, limit, err := f.games.CurrentEnergy(ctx, userID)
			cancel()
			if err != nil {
				logger.Warn("energy feed read failed", "user_id", userID, "error", err)
				return
			}

			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(energyUpdate{
				EnergyBalance: balance,
				EnergyLimit:   limit,
				Timestamp:     time.Now().UnixMilli(),
			}); err != nil {
				return
			}
		case <-pinger.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
