package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trevin-livele/doll-wigs/repository"
)

// GET /admin/customers
func GetAllCustomers(profiles *repository.ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := profiles.ListCustomers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}
