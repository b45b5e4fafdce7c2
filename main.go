package main

import (
	"encoding/gob"
	"log"

	"github.com/TuanAnh19122003/motoparts-storefront/config"
	"github.com/TuanAnh19122003/motoparts-storefront/controllers"
	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/TuanAnh19122003/motoparts-storefront/routes"
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Register types for session serialization
	gob.Register(models.User{})

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Wire controllers to the remote shop API
	controllers.Init(cfg)

	// Set up router
	router := routes.SetupRouter(cfg)

	utils.LogInfo("Storefront starting on port %s (API at %s)", cfg.Port, cfg.APIBaseURL)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
