package handlers

import (
	"errors"
	"net/http"

	"github.com/vamsipakalapati4107/finlit4/internal/application/usecase"
	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/ai"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseHandler struct {
	courses *usecase.CourseService
}

func NewCourseHandler(courses *usecase.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.ListCourses(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GET /api/v1/courses/:id
// Незнакомый слаг запускает генерацию, поэтому маршрут ходит под лимитером
func (h *CourseHandler) GetOne(c *gin.Context) {
	userID := currentUserID(c)

	detail, err := h.courses.GetCourse(c, userID, c.Param("id"))
	if err != nil {
		h.respondCourseError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/v1/courses/:id/lessons/:lessonId
func (h *CourseHandler) GetLesson(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson id"})
		return
	}

	lesson, err := h.courses.GetLesson(c, c.Param("id"), lessonID)
	if err != nil {
		h.respondCourseError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// POST /api/v1/courses/:id/lessons/:lessonId/complete
func (h *CourseHandler) CompleteLesson(c *gin.Context) {
	userID := currentUserID(c)

	lessonID, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson id"})
		return
	}

	result, err := h.courses.CompleteLesson(c, userID, c.Param("id"), lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete lesson"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CourseHandler) respondCourseError(c *gin.Context, err error) {
	var httpErr *ai.HTTPError
	switch {
	case errors.Is(err, domain.ErrInvalidCourseID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, ai.ErrNoAPIKey):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Content generation is not configured"})
	case errors.As(err, &httpErr), errors.Is(err, ai.ErrEmptyResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Content generation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load course content"})
	}
}
