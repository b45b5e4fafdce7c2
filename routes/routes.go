package routes

import (
	"github.com/TuanAnh19122003/motoparts-storefront/config"
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Session middleware backing the stored user identity and the listing
	// filter state
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   cfg.Env == "production",
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("motoparts", store))

	// API version group
	api := router.Group("/" + utils.APIVersion)
	{
		initStorefrontRoutes(api)
		initUserRoutes(api)
	}

	return router
}
