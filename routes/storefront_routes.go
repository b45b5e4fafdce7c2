package routes

import (
	"github.com/TuanAnh19122003/motoparts-storefront/controllers"
	"github.com/gin-gonic/gin"
)

// initStorefrontRoutes initializes the public storefront routes
func initStorefrontRoutes(router *gin.RouterGroup) {
	router.GET("/home", controllers.GetHome)
	router.GET("/products", controllers.GetProducts)
	router.GET("/products/:slug", controllers.GetProductDetail)
	router.GET("/about", controllers.GetAbout)

	router.POST("/login", controllers.Login)
	router.POST("/logout", controllers.Logout)
}
