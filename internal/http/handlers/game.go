package handlers

import (
	"errors"
	"net/http"

	"clicker_backend/internal/game"
	"clicker_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GetContext returns the caller's game context, creating the profile on
// first call and applying regeneration opportunistically.
func (h *Handler) GetContext(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	gameCtx, err := h.GameService.GetContext(c.Request.Context(), userID)
	if err != nil {
		h.rejectContext(c, err)
		return
	}
	c.JSON(http.StatusOK, gameCtx)
}

func (h *Handler) rejectContext(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game profile not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load game context"})
}

type SyncRequest struct {
	Points        *int64   `json:"points" binding:"required"`
	CurrentEnergy *float64 `json:"currentEnergy" binding:"required"`
	Timestamp     *int64   `json:"timestamp" binding:"required"`
}

// Sync validates a client-reported snapshot and merges it into server state.
// Anti-cheat rejections answer 412 with the computed bounds in the message.
func (h *Handler) Sync(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	snap := game.Snapshot{
		Points:    *req.Points,
		Energy:    *req.CurrentEnergy,
		Timestamp: *req.Timestamp,
	}

	gameCtx, err := h.GameService.Sync(c.Request.Context(), userID, snap)
	if err != nil {
		h.rejectSync(c, err)
		return
	}

	syncAccepted.Inc()
	c.JSON(http.StatusOK, gameCtx)
}

func (h *Handler) rejectSync(c *gin.Context, err error) {
	var (
		invalid *game.InvalidInputError
		stale   *game.StaleTimestampError
		energy  *game.EnergyOverrunError
		points  *game.PointsOverrunError
	)

	switch {
	case errors.As(err, &invalid):
		syncRejected.WithLabelValues("invalid_input").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &stale):
		syncRejected.WithLabelValues("stale_timestamp").Inc()
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
	case errors.As(err, &energy):
		syncRejected.WithLabelValues("energy_overrun").Inc()
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
	case errors.As(err, &points):
		syncRejected.WithLabelValues("points_overrun").Inc()
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "game profile not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync game state"})
	}
}

// ListDailyBoosters returns the daily booster catalog with the caller's
// remaining amounts.
func (h *Handler) ListDailyBoosters(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	boosters, err := h.GameService.ListDailyBoosters(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list daily boosters"})
		return
	}
	c.JSON(http.StatusOK, boosters)
}

// UseDailyBooster consumes one daily refill and fills the tank to the cap.
func (h *Handler) UseDailyBooster(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	boosterID, ok := paramID(c, "id")
	if !ok {
		return
	}

	gameCtx, err := h.GameService.UseDailyRefill(c.Request.Context(), userID, boosterID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBoosterNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "daily booster not found"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "game profile not found"})
		case errors.Is(err, service.ErrDailyRefillExhausted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no refills remaining"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to use daily booster"})
		}
		return
	}
	c.JSON(http.StatusOK, gameCtx)
}
