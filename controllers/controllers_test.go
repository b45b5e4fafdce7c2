package controllers

import (
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TuanAnh19122003/motoparts-storefront/config"
	"github.com/TuanAnh19122003/motoparts-storefront/middleware"
	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	gob.Register(models.User{})
}

// setupTest points the controllers at a fake shop API and returns a router
// with the storefront routes mounted.
func setupTest(t *testing.T, upstream http.Handler) *gin.Engine {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)
	Init(&config.Config{APIBaseURL: server.URL})

	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("motoparts", store))

	api := router.Group("/v1")
	api.GET("/home", GetHome)
	api.GET("/products", GetProducts)
	api.GET("/products/:slug", GetProductDetail)
	api.GET("/about", GetAbout)
	protected := api.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	protected.POST("/cart/add", AddToCart)
	protected.GET("/cart/count", GetCartCount)
	protected.GET("/orders", GetOrderHistory)
	protected.GET("/orders/export", ExportOrderHistory)
	protected.GET("/orders/:id/invoice", DownloadInvoice)

	return router
}
