package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userId кладет AuthMiddleware, дальше route guard гарантирует его наличие
func currentUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get("userId")
	id, _ := v.(uuid.UUID)
	return id
}

// GET /healthz
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
