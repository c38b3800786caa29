package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"think-shop/controllers"
	"think-shop/libs"
	"think-shop/repositories"
	"think-shop/services"
)

func SetupRoutes(router *gin.Engine, catalog *repositories.CatalogRepository, cart *services.CartService, orders *services.OrderService, checkout *services.CheckoutService, mailer *libs.Mailer) {
	productCtrl := controllers.NewProductController(catalog)
	cartCtrl := controllers.NewCartController(cart, catalog)
	checkoutCtrl := controllers.NewCheckoutController(cart, checkout, mailer)
	orderCtrl := controllers.NewOrderController(orders)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/featured", productCtrl.GetFeaturedProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/catalog/:category/:slug", productCtrl.GetProductBySlug)

	router.GET("/cart", cartCtrl.GetCart)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.GET("/cart/summary", cartCtrl.GetSummary)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items", cartCtrl.UpdateQuantity)
	router.DELETE("/cart/items", cartCtrl.RemoveItem)

	router.POST("/checkout", checkoutCtrl.Checkout)

	router.GET("/orders", orderCtrl.GetAllOrders)
	router.GET("/orders/unread-count", orderCtrl.GetUnreadCount)
	router.POST("/orders/mark-viewed", orderCtrl.MarkAllViewed)
	router.GET("/orders/:id", orderCtrl.GetOrderByID)
}
