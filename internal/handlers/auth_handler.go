package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"walletvault/internal/models"
	"walletvault/internal/services"
	"walletvault/internal/utils"
)

type AuthHandler struct {
	wallets  services.WalletService
	sessions services.SessionIssuer
}

func NewAuthHandler(wallets services.WalletService, sessions services.SessionIssuer) *AuthHandler {
	return &AuthHandler{wallets: wallets, sessions: sessions}
}

// @Summary      Custodial wallet login
// @Description  Authenticates a wallet address and password and returns a session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Address and password"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[auth][login] attempt address=%s", utils.MaskAddress(req.Address))

	wallet, err := h.wallets.Authenticate(req.Address, req.Password)
	if err != nil {
		log.Printf("[auth][login] rejected address=%s: %v", utils.MaskAddress(req.Address), err)
		respondServiceError(c, err)
		return
	}

	session, err := h.sessions.StartSession(wallet.Address, wallet.IsAdmin)
	if err != nil {
		log.Printf("[auth][login] session issue failed for %s: %v", utils.MaskAddress(wallet.Address), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Login successful",
		"wallet":     wallet, // PasswordHash is json:"-", never serialized
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}
