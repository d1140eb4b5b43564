package app

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"walletvault/internal/config"
	"walletvault/internal/handlers"
	"walletvault/internal/pdf"
	"walletvault/internal/phrase"
	"walletvault/internal/repositories"
	"walletvault/internal/routes"
	"walletvault/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "walletvault/docs"
)

// @title        Wallet Vault API
// @version      1.0
// @description  Custodial wallet credential derivation, verification and recovery.

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	credRepo := repositories.NewCredentialRepository(db)
	walletRepo := repositories.NewCustodialWalletRepository(db)

	// === Services ===
	deriver := phrase.NewDeriver(cfg.Recovery.DerivationSecret)
	authService := services.NewAuthService(cfg.Recovery.BcryptCost)
	sessionService := services.NewSessionService(
		[]byte(cfg.Session.Secret),
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
	)
	alertService := services.NewAlertService(
		cfg.Alerts.SMTPHost,
		cfg.Alerts.SMTPPort,
		cfg.Alerts.SMTPUser,
		cfg.Alerts.SMTPPassword,
		cfg.Alerts.FromEmail,
		cfg.Alerts.ToEmail,
		cfg.Alerts.TelegramBotToken,
		cfg.Alerts.TelegramChatID,
	)
	credentialService := services.NewCredentialService(credRepo, deriver)
	verificationService := services.NewVerificationService(credRepo, deriver, cfg.Recovery.LegacyPhrase, alertService)
	walletService := services.NewWalletService(walletRepo, authService)
	recoveryService := services.NewRecoveryService(
		credRepo, walletRepo, verificationService, authService, sessionService, alertService,
	)

	kitGen := pdf.NewKitGenerator("Wallet Vault")

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(walletService, sessionService)
	credentialHandler := handlers.NewCredentialHandler(credentialService, verificationService, kitGen)
	recoveryHandler := handlers.NewRecoveryHandler(recoveryService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		[]byte(cfg.Session.Secret),
		authHandler,
		credentialHandler,
		recoveryHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
