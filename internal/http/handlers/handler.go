package handlers

import (
	"clicker_backend/internal/game"
	"clicker_backend/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB             *pgxpool.Pool
	BotToken       string
	GameService    *service.GameService
	BoosterService *service.BoosterService
}

func NewHandler(db *pgxpool.Pool, botToken string, cfg game.Config) *Handler {
	return &Handler{
		DB:             db,
		BotToken:       botToken,
		GameService:    service.NewGameService(db, cfg),
		BoosterService: service.NewBoosterService(db, cfg),
	}
}

// getUserID reads the user id the JWT middleware stored in the gin context.
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
