package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"clicker_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ListBoosters returns the booster catalog priced for the caller.
func (h *Handler) ListBoosters(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	boosters, err := h.BoosterService.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list boosters"})
		return
	}
	c.JSON(http.StatusOK, boosters)
}

// UpgradeBooster buys one level of a booster at the current-level price.
func (h *Handler) UpgradeBooster(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	boosterID, ok := paramID(c, "id")
	if !ok {
		return
	}

	booster, err := h.BoosterService.Upgrade(c.Request.Context(), userID, boosterID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBoosterNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booster not found"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "game profile not found"})
		case errors.Is(err, service.ErrNotEnoughPoints):
			c.JSON(http.StatusBadRequest, gin.H{"error": "not enough points"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade booster"})
		}
		return
	}

	boosterUpgrades.WithLabelValues(booster.Type).Inc()
	c.JSON(http.StatusOK, booster)
}

// paramID parses a positive int64 path parameter, answering 400 itself on
// bad input.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
