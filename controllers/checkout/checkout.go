package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trevin-livele/doll-wigs/apperrors"
	"github.com/trevin-livele/doll-wigs/checkout"
)

type CheckoutRequest struct {
	checkout.DeliveryDetails
	PaymentPhone string `json:"payment_phone"`
}

// POST /user/checkout
//
// Drives the full delivery -> payment -> confirmed workflow for one
// submission. Concurrent submissions for the same user are rejected so a
// double-click cannot place two orders.
func Checkout(orders checkout.OrderPlacer, guard *checkout.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !guard.Begin(userID) {
			c.JSON(http.StatusConflict, gin.H{"error": "A checkout is already in progress"})
			return
		}
		defer guard.End(userID)

		wf := checkout.New(orders, userID)

		if err := wf.SubmitDelivery(req.DeliveryDetails); err != nil {
			if ve := apperrors.AsValidation(err); ve != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": ve.Reason, "fields": ve.Fields})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		order, err := wf.SubmitPayment(c.Request.Context(), req.PaymentPhone)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrAuthRequired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			case errors.Is(err, checkout.ErrSubmissionInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": "A checkout is already in progress"})
			case apperrors.IsPersistence(err):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not place order, please try again"})
			default:
				if ve := apperrors.AsValidation(err); ve != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": ve.Reason, "fields": ve.Fields})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}
