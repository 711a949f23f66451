package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/application/usecase"
	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalHandler struct {
	goals *usecase.GoalService
}

func NewGoalHandler(goals *usecase.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

// POST /api/v1/goals
func (h *GoalHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		Name         string          `json:"name" binding:"required"`
		Icon         string          `json:"icon"`
		TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
		Deadline     *time.Time      `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goals.Create(c, userID, req.Name, req.Icon, req.TargetAmount, req.Deadline)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// GET /api/v1/goals
func (h *GoalHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	goals, err := h.goals.List(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load goals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// POST /api/v1/goals/:id/add
func (h *GoalHandler) Add(c *gin.Context) {
	userID := currentUserID(c)

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal id"})
		return
	}

	var req struct {
		Amount decimal.Decimal `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.goals.Add(c, userID, goalID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
