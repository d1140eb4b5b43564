package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"walletvault/internal/models"
	"walletvault/internal/pdf"
	"walletvault/internal/services"
	"walletvault/internal/utils"
)

type CredentialHandler struct {
	credentials services.CredentialService
	verifier    services.VerificationService
	kits        pdf.Generator
}

func NewCredentialHandler(credentials services.CredentialService, verifier services.VerificationService, kits pdf.Generator) *CredentialHandler {
	return &CredentialHandler{credentials: credentials, verifier: verifier, kits: kits}
}

// @Summary      Recovery phrase for the authenticated wallet
// @Description  Returns the wallet's recovery phrase, creating it on first request
// @Tags         Credential
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /credential/phrase [get]
func (h *CredentialHandler) GetPhrase(c *gin.Context) {
	addr, ok := addressFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No wallet in session"})
		return
	}
	h.servePhrase(c, addr)
}

// @Summary      Recovery phrase by address
// @Description  Unauthenticated variant used by the recovery UX
// @Tags         Credential
// @Produce      json
// @Param        address  query     string  true  "Wallet address"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Router       /credential/phrase-public [get]
func (h *CredentialHandler) GetPhrasePublic(c *gin.Context) {
	addr, err := utils.NormalizeAddress(c.Query("address"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallet address"})
		return
	}
	h.servePhrase(c, addr)
}

func (h *CredentialHandler) servePhrase(c *gin.Context, addr string) {
	cred, created, err := h.credentials.GetOrCreate(addr)
	if err != nil {
		log.Printf("[credential][phrase] get-or-create failed for %s: %v", utils.MaskAddress(addr), err)
		respondServiceError(c, err)
		return
	}
	if created {
		log.Printf("[credential][phrase] materialized phrase for %s", utils.MaskAddress(addr))
	}
	c.JSON(http.StatusOK, gin.H{"phrase": cred.SeedPhrase})
}

// @Summary      Verify a phrase against an address
// @Description  Direct, address-scoped exposure of the verification cascade for diagnostics
// @Tags         Credential
// @Accept       json
// @Produce      json
// @Param        request  body      models.VerifyRequest  true  "Address and candidate phrase"
// @Success      200      {object}  services.VerificationResult
// @Failure      400      {object}  map[string]string
// @Router       /credential/verify [post]
func (h *CredentialHandler) VerifyPhrase(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.verifier.Verify(req.Address, req.Phrase)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Materialize a credential for a wallet (admin)
// @Description  Idempotent get-or-create used for bulk migration off the legacy phrase
// @Tags         Credential
// @Accept       json
// @Produce      json
// @Param        request  body      models.MigrateRequest  true  "Wallet address"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /credential/migrate [post]
func (h *CredentialHandler) Migrate(c *gin.Context) {
	var req models.MigrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	addr, err := utils.NormalizeAddress(req.WalletAddress)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallet address"})
		return
	}
	cred, created, err := h.credentials.GetOrCreate(addr)
	if err != nil {
		log.Printf("[credential][migrate] failed for %s: %v", utils.MaskAddress(addr), err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"seed_phrase": cred.SeedPhrase,
		"was_created": created,
	})
}

// @Summary      Printable recovery kit
// @Description  PDF with the wallet address and numbered phrase words
// @Tags         Credential
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  map[string]string
// @Router       /credential/kit [get]
func (h *CredentialHandler) DownloadKit(c *gin.Context) {
	addr, ok := addressFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No wallet in session"})
		return
	}
	cred, _, err := h.credentials.GetOrCreate(addr)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	kit, err := h.kits.GenerateRecoveryKit(pdf.KitData{
		WalletAddress: cred.WalletAddress,
		Phrase:        cred.SeedPhrase,
		GeneratedAt:   time.Now(),
	})
	if err != nil {
		log.Printf("[credential][kit] render failed for %s: %v", utils.MaskAddress(addr), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render kit"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=recovery-kit-%s.pdf", utils.MaskAddress(addr)))
	c.Data(http.StatusOK, "application/pdf", kit)
}
