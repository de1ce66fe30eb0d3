package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clicker_backend/internal/game"
	"clicker_backend/internal/service"

	"github.com/gin-gonic/gin"
)

func TestRejectSyncStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{}

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", &game.InvalidInputError{Field: "points"}, http.StatusBadRequest},
		{"stale timestamp", &game.StaleTimestampError{Claimed: 1, LastMs: 2}, http.StatusPreconditionFailed},
		{"energy overrun", &game.EnergyOverrunError{Claimed: 10, Expected: 5}, http.StatusPreconditionFailed},
		{"points overrun", &game.PointsOverrunError{Unsynced: 10, MaxPossible: 5}, http.StatusPreconditionFailed},
		{"profile missing", service.ErrProfileNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h.rejectSync(c, tc.err)
		if w.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, w.Code, tc.want)
		}
	}
}

func TestRejectContextStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{}

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"profile missing", service.ErrProfileNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h.rejectContext(c, tc.err)
		if w.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, w.Code, tc.want)
		}
	}
}
