package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trevin-livele/doll-wigs/models"
	"github.com/trevin-livele/doll-wigs/repository"
)

type ProductInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	OldPrice    *decimal.Decimal `json:"old_price"`
	Image       string           `json:"image"`
	Category    string           `json:"category"`
	Stock       int              `json:"stock"`
}

// GET /user/products?category=
func GetProducts(products *repository.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /user/products/:id
func GetProductByID(products *repository.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /admin/products
func CreateProduct(products *repository.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Category:    input.Category,
			Stock:       input.Stock,
		}
		if input.OldPrice != nil {
			product.OldPrice = decimal.NewNullDecimal(*input.OldPrice)
		}

		if err := products.Create(c.Request.Context(), &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(products *repository.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"price":       input.Price,
			"image":       input.Image,
			"category":    input.Category,
			"stock":       input.Stock,
		}
		if input.OldPrice != nil {
			updates["old_price"] = *input.OldPrice
		} else {
			updates["old_price"] = nil
		}

		if err := products.Update(c.Request.Context(), c.Param("id"), updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}

// DELETE /admin/products/:id
func DeleteProduct(products *repository.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
