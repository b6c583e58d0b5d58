package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trevin-livele/doll-wigs/checkout"
	orderControllers "github.com/trevin-livele/doll-wigs/controllers/order"
	"github.com/trevin-livele/doll-wigs/repository"
	"github.com/trevin-livele/doll-wigs/services"
)

// Deps carries everything the route groups need, wired once in main.
type Deps struct {
	JWTSecret   string
	AdminAPIKey string

	Carts      *repository.CartStore
	Wishlists  *repository.WishlistStore
	Orders     *repository.OrderStore
	Products   *repository.ProductStore
	Categories *repository.CategoryStore
	Profiles   *repository.ProfileStore

	OrderService *services.OrderService
	Lifecycle    *services.LifecycleService

	Hub           *orderControllers.Hub
	CheckoutGuard *checkout.Guard
}

// SetupRoutes is the single entry-point that wires up the user and admin
// route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupUserRoutes(r, deps)
	SetupAdminRoutes(r, deps)
}
