package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"think-shop/config"
	_ "think-shop/docs"
	"think-shop/libs"
	"think-shop/middleware"
	"think-shop/repositories"
	"think-shop/routes"
	"think-shop/services"
)

// @title ThinkPlus BD Storefront API
// @version 1.0
// @description Local storefront service: catalog, cart, checkout, and order history.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.InitStorage()
	defer config.CloseStorage()

	catalog := repositories.NewCatalogRepository()
	if _, err := catalog.FetchCatalog(context.Background()); err != nil {
		// The storefront degrades to an empty catalog with an error notice.
		log.Printf("Could not load products: %v", err)
	}

	cart := services.NewCartService(config.Store)
	orders := services.NewOrderService(config.Store)
	checkout := services.NewCheckoutService(cart, orders)

	mailer, err := libs.NewMailer()
	if err != nil {
		log.Printf("Email disabled: %v", err)
		mailer = nil
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(router, catalog, cart, orders, checkout, mailer)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
