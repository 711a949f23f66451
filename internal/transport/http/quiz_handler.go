package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vamsipakalapati4107/finlit4/internal/application/usecase"
	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizzes *usecase.QuizService
}

func NewQuizHandler(quizzes *usecase.QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

// GET /api/v1/quiz/questions?topic=budgeting&difficulty=easy&limit=5
func (h *QuizHandler) Questions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	questions, err := h.quizzes.Questions(c, c.Query("topic"), c.Query("difficulty"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// POST /api/v1/quiz/attempts
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		Topic          string `json:"topic" binding:"required"`
		Score          int    `json:"score"`
		TotalQuestions int    `json:"total_questions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.quizzes.SubmitAttempt(c, userID, req.Topic, req.Score, req.TotalQuestions)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidScore) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attempt"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /api/v1/quiz/attempts
func (h *QuizHandler) History(c *gin.Context) {
	userID := currentUserID(c)

	attempts, err := h.quizzes.History(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attempts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}
