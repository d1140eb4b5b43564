package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"walletvault/internal/middleware"
	"walletvault/internal/models"
	"walletvault/internal/services"
	"walletvault/internal/utils"
)

type RecoveryHandler struct {
	recovery services.RecoveryService
}

func NewRecoveryHandler(recovery services.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{recovery: recovery}
}

// @Summary      Recover wallet access with a phrase
// @Description  Resolves the wallet from the phrase alone, resets its password and returns a session token
// @Tags         Recovery
// @Accept       json
// @Produce      json
// @Param        request  body      models.RecoverRequest  true  "Phrase and optional new password"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /recover [post]
func (h *RecoveryHandler) Recover(c *gin.Context) {
	res, ok := h.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"wallet_address": res.WalletAddress,
		"token":          res.Session.Token,
		"expires_at":     res.Session.ExpiresAt,
	})
}

// @Summary      Recover wallet access, cookie session variant
// @Description  Same flow as /recover; the session is attached as a cookie instead of a bearer token
// @Tags         Recovery
// @Accept       json
// @Produce      json
// @Param        request  body      models.RecoverRequest  true  "Phrase and optional new password"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /recover/simple [post]
func (h *RecoveryHandler) RecoverSimple(c *gin.Context) {
	res, ok := h.run(c)
	if !ok {
		return
	}
	maxAge := int(time.Until(res.Session.ExpiresAt).Seconds())
	c.SetCookie(middleware.SessionCookie, res.Session.Token, maxAge, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"wallet_address": res.WalletAddress,
	})
}

// run binds the request and drives the coordinator; both transport variants
// share it and differ only in how they attach the session.
func (h *RecoveryHandler) run(c *gin.Context) (*services.RecoveryResult, bool) {
	var req models.RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	res, err := h.recovery.Recover(req)
	if err != nil {
		// log detail server-side, keep the client message generic
		log.Printf("[recovery][http] failed: %v", err)
		respondServiceError(c, err)
		return nil, false
	}
	log.Printf("[recovery][http] success for %s", utils.MaskAddress(res.WalletAddress))
	return res, true
}
