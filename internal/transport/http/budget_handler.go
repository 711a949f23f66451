package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/application/usecase"
	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetHandler struct {
	budgets *usecase.BudgetService
}

func NewBudgetHandler(budgets *usecase.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// POST /api/v1/budgets
func (h *BudgetHandler) Set(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		Category  string          `json:"category" binding:"required"`
		Period    string          `json:"period"`
		Allocated decimal.Decimal `json:"allocated" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.budgets.Set(c, userID, req.Category, req.Period, req.Allocated)
	if err != nil {
		var parseErr *time.ParseError
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &parseErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period, expected YYYY-MM"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget"})
		}
		return
	}
	c.JSON(http.StatusOK, budget)
}

// GET /api/v1/budgets?period=2026-08
func (h *BudgetHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	statuses, err := h.budgets.List(c, userID, c.Query("period"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load budgets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"budgets": statuses})
}
