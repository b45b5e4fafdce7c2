package routes

import (
	"github.com/TuanAnh19122003/motoparts-storefront/controllers"
	"github.com/TuanAnh19122003/motoparts-storefront/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes routes that require a stored user identity
func initUserRoutes(router *gin.RouterGroup) {
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		// Cart operations
		protected.POST("/cart/add", controllers.AddToCart)
		protected.GET("/cart/count", controllers.GetCartCount)

		// Orders
		protected.GET("/orders", controllers.GetOrderHistory)
		protected.GET("/orders/export", controllers.ExportOrderHistory)
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)
	}
}
