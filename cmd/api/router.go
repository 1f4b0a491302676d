package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
	"storefront-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "DB_UNAVAILABLE", err.Error())
			return
		}
		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "REDIS_UNAVAILABLE", err.Error())
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/otp/request", c.AuthHandler.RequestOTP)
		auth.POST("/otp/verify", c.AuthHandler.VerifyOTP)
		auth.POST("/refresh", c.AuthHandler.RefreshTokens)
	}

	// Public catalog browsing.
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/products", c.CatalogHandler.ListProducts)
		catalog.GET("/products/:id", c.CatalogHandler.GetProduct)
		catalog.GET("/slug/:slug", c.CatalogHandler.GetProductBySlug)
		catalog.GET("/brands", c.CatalogHandler.ListBrands)
		catalog.GET("/categories", c.CatalogHandler.ListCategories)
	}

	v1.GET("/coupons/:code", c.PromotionHandler.CheckCoupon)

	// Authenticated self-service.
	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.GET("/me", c.AuthHandler.GetProfile)
		authed.PATCH("/me", c.AuthHandler.UpdateProfile)

		phones := authed.Group("/me/phones")
		{
			phones.GET("", c.PhoneHandler.ListPhones)
			phones.POST("", c.PhoneHandler.AddPhone)
			phones.PUT("/:id/default", c.PhoneHandler.SetDefaultPhone)
			phones.DELETE("/:id", c.PhoneHandler.DeletePhone)
		}

		addresses := authed.Group("/me/addresses")
		{
			addresses.GET("", c.AddressHandler.ListAddresses)
			addresses.POST("", c.AddressHandler.AddAddress)
			addresses.GET("/:id", c.AddressHandler.GetAddress)
			addresses.PATCH("/:id", c.AddressHandler.UpdateAddress)
			addresses.PUT("/:id/default", c.AddressHandler.SetDefaultShipping)
			addresses.PUT("/:id/billing", c.AddressHandler.SetDefaultBilling)
			addresses.DELETE("/:id", c.AddressHandler.DeleteAddress)
		}

		cart := authed.Group("/cart")
		{
			cart.GET("", c.CartHandler.GetCart)
			cart.POST("/items", c.CartHandler.AddItem)
			cart.PATCH("/items/:item_id", c.CartHandler.UpdateItem)
			cart.DELETE("/items/:item_id", c.CartHandler.RemoveItem)
			cart.POST("/coupon", c.CartHandler.ApplyCoupon)
			cart.DELETE("/coupon", c.CartHandler.RemoveCoupon)
		}

		orders := authed.Group("/orders")
		{
			orders.POST("", c.OrderHandler.CreateOrder)
			orders.GET("", c.OrderHandler.ListOrders)
			orders.GET("/:id", c.OrderHandler.GetOrder)
			orders.PUT("/:id/cancel", c.OrderHandler.CancelOrder)
		}
	}

	// Admin surface.
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("/products", c.CatalogHandler.CreateProduct)
		admin.PUT("/products/:id", c.CatalogHandler.UpdateProduct)
		admin.DELETE("/products/:id", c.CatalogHandler.DeleteProduct)
		admin.POST("/products/import", c.CatalogHandler.ImportProducts)
		admin.POST("/variants/:variant_id/image", c.CatalogHandler.UploadVariantImage)

		admin.GET("/promotions", c.PromotionHandler.ListPromotions)
		admin.POST("/promotions", c.PromotionHandler.CreatePromotion)
		admin.GET("/promotions/:id", c.PromotionHandler.GetPromotion)
		admin.PUT("/promotions/:id", c.PromotionHandler.UpdatePromotion)
		admin.DELETE("/promotions/:id", c.PromotionHandler.DeletePromotion)

		admin.PUT("/orders/:id/status", c.OrderHandler.UpdateStatus)
	}

	return router
}
