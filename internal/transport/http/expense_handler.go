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

type ExpenseHandler struct {
	expenses  *usecase.ExpenseService
	analytics *usecase.AnalyticsService
}

func NewExpenseHandler(expenses *usecase.ExpenseService, analytics *usecase.AnalyticsService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, analytics: analytics}
}

// POST /api/v1/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		Amount             decimal.Decimal `json:"amount" binding:"required"`
		Category           string          `json:"category" binding:"required"`
		Subcategory        string          `json:"subcategory"`
		Description        string          `json:"description"`
		PaymentMethod      string          `json:"payment_method"`
		Date               time.Time       `json:"date"`
		IsRecurring        bool            `json:"is_recurring"`
		RecurringFrequency string          `json:"recurring_frequency"`
		Tags               []string        `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, unlocked, err := h.expenses.Create(c, userID, usecase.CreateExpenseInput{
		Amount:             req.Amount,
		Category:           req.Category,
		Subcategory:        req.Subcategory,
		Description:        req.Description,
		PaymentMethod:      req.PaymentMethod,
		Date:               req.Date,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		Tags:               req.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save expense"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense, "unlocked": unlocked})
}

// GET /api/v1/expenses?month=2026-08
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	list, err := h.expenses.List(c, userID, c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": list})
}

// DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense id"})
		return
	}

	if err := h.expenses.Delete(c, userID, expenseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/v1/analytics/summary
func (h *ExpenseHandler) Summary(c *gin.Context) {
	userID := currentUserID(c)

	summary, err := h.analytics.Summary(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
