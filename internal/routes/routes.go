package routes

import (
	"github.com/gin-gonic/gin"

	"walletvault/internal/handlers"
	"walletvault/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	sessionSecret []byte,
	authHandler *handlers.AuthHandler,
	credentialHandler *handlers.CredentialHandler,
	recoveryHandler *handlers.RecoveryHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/recover", recoveryHandler.Recover)
	r.POST("/recover/simple", recoveryHandler.RecoverSimple)
	r.GET("/credential/phrase-public", credentialHandler.GetPhrasePublic)
	r.POST("/credential/verify", credentialHandler.VerifyPhrase)

	// ---- protected
	auth := r.Group("/", middleware.AuthMiddleware(sessionSecret))
	{
		auth.GET("/credential/phrase", credentialHandler.GetPhrase)
		auth.GET("/credential/kit", credentialHandler.DownloadKit)

		admin := auth.Group("/", middleware.RequireAdmin())
		{
			admin.POST("/credential/migrate", credentialHandler.Migrate)
		}
	}

	return r
}
