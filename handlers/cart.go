package handlers

import (
	"errors"
	"net/http"

	"shoply-backend/store"
	"shoply-backend/utils"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Engine *store.CartEngine
}

// The user id travels in the request rather than the token: cart
// ownership is keyed by whatever identifier the client supplies.

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.Engine.GetCart(c.Query("user_id"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		UserID    string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	cart, err := h.Engine.AddItem(req.UserID, req.ProductID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		UserID    string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	cart, err := h.Engine.RemoveItem(req.UserID, req.ProductID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	cart, err := h.Engine.ClearCart(req.UserID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully", "cart": cart})
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrUserIDRequired), errors.Is(err, store.ErrProductIDRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
	}
}
