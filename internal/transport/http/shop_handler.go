package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vamsipakalapati4107/finlit4/internal/application/usecase"
	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	shop *usecase.ShopService
}

func NewShopHandler(shop *usecase.ShopService) *ShopHandler {
	return &ShopHandler{shop: shop}
}

// GET /api/v1/shop/avatars
func (h *ShopHandler) ListAvatars(c *gin.Context) {
	userID := currentUserID(c)

	items, err := h.shop.ListAvatars(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load avatars"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatars": items})
}

// POST /api/v1/shop/avatars/:id/purchase
func (h *ShopHandler) PurchaseAvatar(c *gin.Context) {
	userID := currentUserID(c)

	avatarID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid avatar id"})
		return
	}

	profile, err := h.shop.Purchase(c, userID, avatarID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAvatarID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrAlreadyOwned):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrInsufficientCoins):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Purchase failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "coins": profile.Coins})
}
