package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"clicker_backend/internal/domain"
	"clicker_backend/internal/repository"
	"clicker_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthRequest struct {
	InitData string `json:"init_data"`
}

func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	// DEV MODE: skip init_data validation for local frontends
	if os.Getenv("DEV_MODE") == "true" {
		h.devAuth(c, req.InitData)
		return
	}

	if len(req.InitData) > 4096 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "init_data too long"})
		return
	}

	values, ok := service.ValidateTelegramInitData(req.InitData, h.BotToken)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or stale telegram data"})
		return
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}

	var tgUser struct {
		ID        int64  `json:"id"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
	}
	if err := json.Unmarshal([]byte(userJSON), &tgUser); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user json"})
		return
	}

	h.issueToken(c, tgUser.ID, tgUser.Username, tgUser.FirstName)
}

func (h *Handler) devAuth(c *gin.Context, initData string) {
	var userID int64 = 12345
	if strings.Contains(initData, "\"id\":") {
		start := strings.Index(initData, "\"id\":") + 5
		end := start
		for end < len(initData) && initData[end] >= '0' && initData[end] <= '9' {
			end++
		}
		if parsed, err := strconv.ParseInt(initData[start:end], 10, 64); err == nil {
			userID = parsed
		}
	}
	h.issueToken(c, userID, fmt.Sprintf("testuser%d", userID), "Test")
}

func (h *Handler) issueToken(c *gin.Context, tgID int64, username, firstName string) {
	repo := repository.NewUserRepository(h.DB)
	ctx := c.Request.Context()

	user, err := repo.GetByTgID(ctx, tgID)
	if err != nil {
		user = &domain.User{
			TgID:      tgID,
			Username:  username,
			FirstName: firstName,
		}
		if err := repo.Create(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"tg_id":      user.TgID,
			"username":   user.Username,
			"first_name": user.FirstName,
		},
	})
}
