package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/trevin-livele/doll-wigs/controllers/order"
	productControllers "github.com/trevin-livele/doll-wigs/controllers/product"
	userControllers "github.com/trevin-livele/doll-wigs/controllers/user"
	"github.com/trevin-livele/doll-wigs/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAPIKey(deps.AdminAPIKey))
	{
		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(deps.Orders))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(deps.Lifecycle))
			orderAdmin.GET("/stats", orderControllers.GetOrderStats(deps.Orders))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(deps.Orders))
			orderAdmin.GET("/ws", deps.Hub.Handler())
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(deps.Products))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.Products))
			productAdmin.GET("", productControllers.GetProducts(deps.Products))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(deps.Products))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(deps.Categories))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(deps.Categories))
			categoryAdmin.GET("", productControllers.GetAllCategories(deps.Categories))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(deps.Categories))
		}

		// ─────────── Customers ───────────
		adminGroup.GET("/customers", userControllers.GetAllCustomers(deps.Profiles))
	}
}
