package checkoutControllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevin-livele/doll-wigs/checkout"
	"github.com/trevin-livele/doll-wigs/models"
)

type stubPlacer struct {
	order *models.Order
	err   error
}

func (s *stubPlacer) PlaceOrder(ctx context.Context, userID string, addr models.ShippingAddress) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

func newRouter(placer checkout.OrderPlacer, guard *checkout.Guard, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user/checkout", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		Checkout(placer, guard)(c)
	})
	return r
}

const validBody = `{
	"first_name": "Jane",
	"last_name": "Wanjiku",
	"phone": "792164579",
	"address": "Moi Avenue, Apt 4",
	"city": "Nairobi",
	"payment_phone": "792164579"
}`

func TestCheckoutSuccess(t *testing.T) {
	placer := &stubPlacer{order: &models.Order{ID: "order-1", Status: models.OrderStatusProcessing}}
	r := newRouter(placer, checkout.NewGuard(), "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout", strings.NewReader(validBody))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "order-1", got.ID)
	assert.Equal(t, models.OrderStatusProcessing, got.Status)
}

func TestCheckoutListsMissingDeliveryFields(t *testing.T) {
	r := newRouter(&stubPlacer{}, checkout.NewGuard(), "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout",
		strings.NewReader(`{"first_name": "Jane", "payment_phone": "792164579"}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.ElementsMatch(t, []string{"last_name", "phone", "address", "city"}, body.Fields)
}

func TestCheckoutRequiresSession(t *testing.T) {
	r := newRouter(&stubPlacer{}, checkout.NewGuard(), "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout", strings.NewReader(validBody))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutRejectsConcurrentSubmission(t *testing.T) {
	guard := checkout.NewGuard()
	require.True(t, guard.Begin("user-1")) // a submission is already running

	r := newRouter(&stubPlacer{order: &models.Order{ID: "order-1"}}, guard, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout", strings.NewReader(validBody))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckoutSurfacesStoreFailure(t *testing.T) {
	placer := &stubPlacer{err: errors.New("connection reset")}
	r := newRouter(placer, checkout.NewGuard(), "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout", strings.NewReader(validBody))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
