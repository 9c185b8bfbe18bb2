package routes

import (
	"github.com/Govind-619/Storefront/controllers"
	"github.com/Govind-619/Storefront/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes the storefront routes
func initUserRoutes(router *gin.RouterGroup, ctl *controllers.Controller) {
	// Catalog
	router.GET("/products", ctl.ListProducts)
	router.GET("/products/:id", ctl.GetProductDetail)
	router.GET("/products/:id/reviews", ctl.ListProductReviews)

	// Order draft of the product page
	order := router.Group("/products/:id/order")
	{
		order.GET("", ctl.GetOrderDraft)
		order.PATCH("", ctl.UpdateOrderDraft)
		order.DELETE("", ctl.DeleteOrderDraft)
		order.POST("/submit", ctl.SubmitOrderDraft)
		order.POST("/confirm", ctl.ConfirmOrderDraft)
		order.GET("/receipt", ctl.DownloadReceipt)
	}

	// Flash-sale countdown
	router.GET("/promotion/countdown", ctl.GetCountdown)
	router.GET("/promotion/countdown/stream", ctl.StreamCountdown)

	// Address selectors
	router.GET("/geography/cities", ctl.ListCities)
	router.GET("/geography/cities/:city/districts", ctl.ListDistricts)
	router.GET("/geography/cities/:city/districts/:district/wards", ctl.ListWards)

	// Accounts
	auth := router.Group("/auth")
	{
		auth.POST("/login", ctl.Login)
		auth.POST("/sign-up", ctl.SignUp)
		auth.POST("/logout", ctl.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), ctl.Me)
	}
}
