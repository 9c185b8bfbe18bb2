package routes

import (
	"github.com/Govind-619/Storefront/controllers"
	"github.com/Govind-619/Storefront/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup, ctl *controllers.Controller) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		// Product management
		admin.GET("/products", ctl.AdminListProducts)
		admin.POST("/products", ctl.AdminCreateProduct)
		admin.PUT("/products/:id", ctl.AdminUpdateProduct)
		admin.DELETE("/products/:id", ctl.AdminDeleteProduct)

		// Tier management
		admin.GET("/product-tiers", ctl.AdminListTiers)
		admin.POST("/product-tiers", ctl.AdminCreateTier)
		admin.GET("/product-tiers/:id", ctl.AdminGetTier)
		admin.PUT("/product-tiers/:id", ctl.AdminUpdateTier)
		admin.DELETE("/product-tiers/:id", ctl.AdminDeleteTier)

		// Reviews
		admin.POST("/reviews", ctl.AdminCreateReview)

		// Order management
		admin.GET("/orders", ctl.AdminListOrders)
		admin.GET("/orders/export", ctl.AdminExportOrders)
		admin.GET("/orders/:id/options", ctl.AdminOrderOptions)
		admin.PUT("/orders/:id", ctl.AdminUpdateOrder)

		// Raw image upload
		admin.POST("/upload", ctl.UploadImage)
	}
}
