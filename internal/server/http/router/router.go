package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	returnsHandler := handlers.NewReturnsHandler(facade)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))

	userAuth.GET("/cart", cartHandler.Get)
	userAuth.POST("/cart/items", cartHandler.AddItem)
	userAuth.PATCH("/cart/items/:id", cartHandler.UpdateItem)
	userAuth.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	userAuth.POST("/cart/promo", cartHandler.ApplyPromo)
	userAuth.DELETE("/cart/promo", cartHandler.RemovePromo)

	userAuth.GET("/addresses", catalogHandler.Addresses)
	userAuth.POST("/addresses", catalogHandler.CreateAddress)
	userAuth.DELETE("/addresses/:id", catalogHandler.DeleteAddress)
	userAuth.GET("/payment-methods", catalogHandler.PaymentMethods)
	userAuth.GET("/shipping-options", catalogHandler.ShippingOptions)

	userAuth.GET("/checkout", checkoutHandler.Get)
	userAuth.DELETE("/checkout", checkoutHandler.Cancel)
	userAuth.POST("/checkout/shipping-address", checkoutHandler.SetShippingAddress)
	userAuth.POST("/checkout/billing-address", checkoutHandler.SetBillingAddress)
	userAuth.POST("/checkout/same-address", checkoutHandler.SetSameAddress)
	userAuth.POST("/checkout/shipping-option", checkoutHandler.SetShippingOption)
	userAuth.POST("/checkout/pickup-point", checkoutHandler.SetPickupPoint)
	userAuth.POST("/checkout/payment-method", checkoutHandler.SetPaymentMethod)
	userAuth.POST("/checkout/new-card", checkoutHandler.SetNewCard)
	userAuth.POST("/checkout/save-card", checkoutHandler.SetSaveCard)
	userAuth.POST("/checkout/terms", checkoutHandler.SetTerms)
	userAuth.POST("/checkout/next", checkoutHandler.Next)
	userAuth.POST("/checkout/back", checkoutHandler.Back)
	userAuth.POST("/checkout/goto", checkoutHandler.GoTo)
	userAuth.POST("/checkout/place-order", checkoutHandler.PlaceOrder)

	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/:number", orderHandler.Detail)

	userAuth.POST("/returns", returnsHandler.Create)
	userAuth.GET("/returns", returnsHandler.List)
	userAuth.GET("/returns/:id", returnsHandler.Detail)

	return engine
}
