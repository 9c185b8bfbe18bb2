package routes

import (
	"net/http"

	"github.com/Govind-619/Storefront/config"
	"github.com/Govind-619/Storefront/controllers"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config, ctl *controllers.Controller) *gin.Engine {
	router := gin.New()

	// Middleware must be registered before the routes it applies to
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// The visitor session holds the auth token, order draft ids and, with the
	// session promotion store, the flash-sale deadline
	store := cookie.NewStore(cfg.SessionKey())
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24 * 30, // 30 days
		Path:     "/",
		Secure:   cfg.IsProduction(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(cfg.SessionName, store))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	api := router.Group("/" + utils.APIVersion)
	{
		initUserRoutes(api, ctl)
		initAdminRoutes(api, ctl)
	}

	return router
}
