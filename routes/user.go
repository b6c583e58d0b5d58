package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/trevin-livele/doll-wigs/controllers/cart"
	checkoutControllers "github.com/trevin-livele/doll-wigs/controllers/checkout"
	orderControllers "github.com/trevin-livele/doll-wigs/controllers/order"
	productControllers "github.com/trevin-livele/doll-wigs/controllers/product"
	wishlistControllers "github.com/trevin-livele/doll-wigs/controllers/wishlist"
	"github.com/trevin-livele/doll-wigs/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a session.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireSession(deps.JWTSecret))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Carts))
			cartGroup.POST("/", cartControllers.AddCartItem(deps.Carts))
			cartGroup.PATCH("/:id", cartControllers.UpdateCartItem(deps.Carts))
			cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(deps.Carts))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Carts))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(deps.Wishlists))
			wishlistGroup.POST("/:product_id", wishlistControllers.ToggleWishlistItem(deps.Wishlists))
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", checkoutControllers.Checkout(deps.OrderService, deps.CheckoutGuard))
		userGroup.GET("/orders", orderControllers.GetUserOrders(deps.Orders))
		userGroup.GET("/orders/:id", orderControllers.GetUserOrderByID(deps.Orders))

		// ──────────────── Browse Catalog ────────────────
		userGroup.GET("/products", productControllers.GetProducts(deps.Products))
		userGroup.GET("/products/:id", productControllers.GetProductByID(deps.Products))
		userGroup.GET("/categories", productControllers.GetAllCategories(deps.Categories))
	}
}
