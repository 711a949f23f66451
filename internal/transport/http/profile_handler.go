package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vamsipakalapati4107/finlit4/internal/application/usecase"
	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProfileHandler struct {
	profile      *usecase.ProfileService
	progress     *usecase.ProgressService
	achievements *usecase.AchievementService
}

func NewProfileHandler(profile *usecase.ProfileService, progress *usecase.ProgressService, achievements *usecase.AchievementService) *ProfileHandler {
	return &ProfileHandler{profile: profile, progress: progress, achievements: achievements}
}

// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := currentUserID(c)

	view, err := h.profile.Get(c, userID, c.GetString("email"), c.GetString("username"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		Username      *string          `json:"username"`
		AvatarID      *int             `json:"avatar_id"`
		MonthlyBudget *decimal.Decimal `json:"monthly_budget"`
		Currency      *string          `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profile.Update(c, userID, usecase.UpdateProfileInput{
		Username:      req.Username,
		AvatarID:      req.AvatarID,
		MonthlyBudget: req.MonthlyBudget,
		Currency:      req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAvatarID), errors.Is(err, domain.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrAvatarNotOwned):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

// POST /api/v1/profile/daily-login
func (h *ProfileHandler) DailyLogin(c *gin.Context) {
	userID := currentUserID(c)

	result, err := h.progress.DailyLogin(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record login"})
		return
	}

	var unlocked []domain.Achievement
	if result.Awarded {
		// Ачивки за стрик не должны ломать сам логин
		unlocked, _ = h.achievements.Check(c, userID, usecase.MetricStreak, usecase.MetricLevel)
	}

	c.JSON(http.StatusOK, gin.H{
		"streak":     result.Streak,
		"milestone":  result.Milestone,
		"xp_awarded": result.XPAwarded,
		"awarded":    result.Awarded,
		"unlocked":   unlocked,
	})
}

// GET /api/v1/leaderboard
func (h *ProfileHandler) Leaderboard(c *gin.Context) {
	userID := currentUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	view, err := h.profile.Leaderboard(c, userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/v1/achievements
func (h *ProfileHandler) ListAchievements(c *gin.Context) {
	userID := currentUserID(c)

	list, err := h.achievements.List(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load achievements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": list})
}
