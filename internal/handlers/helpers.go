package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"walletvault/internal/services"
)

func addressFromCtx(c *gin.Context) (string, bool) {
	v, ok := c.Get("wallet_address")
	if !ok {
		return "", false
	}
	addr, ok := v.(string)
	return addr, ok && addr != ""
}

// respondServiceError maps service sentinels to transport statuses. Every
// verification miss becomes the same opaque message so callers cannot tell a
// missing wallet from a wrong phrase.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingPhrase),
		errors.Is(err, services.ErrMissingAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidPhrase):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid phrase"})
	case errors.Is(err, services.ErrInvalidLogin):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid address or password"})
	case errors.Is(err, services.ErrWalletNotFound):
		// data inconsistency, not a user problem; keep the message opaque
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recovery failed"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporarily unavailable"})
	}
}
