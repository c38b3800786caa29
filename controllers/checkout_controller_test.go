package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"think-shop/repositories"
	"think-shop/services"
	"think-shop/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.CartService, *services.OrderService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := repositories.NewCatalogRepository()
	_, err := catalog.FetchCatalog(context.Background())
	require.NoError(t, err)

	store := storage.NewMemoryStorage()
	cart := services.NewCartService(store)
	orders := services.NewOrderService(store)
	checkout := services.NewCheckoutService(cart, orders)

	cartCtrl := NewCartController(cart, catalog)
	checkoutCtrl := NewCheckoutController(cart, checkout, nil)
	orderCtrl := NewOrderController(orders)

	router := gin.New()
	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items", cartCtrl.UpdateQuantity)
	router.POST("/checkout", checkoutCtrl.Checkout)
	router.GET("/orders", orderCtrl.GetAllOrders)
	router.GET("/orders/unread-count", orderCtrl.GetUnreadCount)

	return router, cart, orders
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddToCartEndpoint(t *testing.T) {
	router, cart, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/cart/items", `{"product_id":1}`)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "added to cart!")

	w = doJSON(router, http.MethodPost, "/cart/items", `{"product_id":1}`)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "quantity updated!")

	assert.Equal(t, 2, cart.TotalCount())
	assert.Equal(t, "498.00", cart.TotalAmount().StringFixed(2))
}

func TestAddToCartUnknownProduct(t *testing.T) {
	router, cart, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/cart/items", `{"product_id":9999}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid product.")
	assert.Equal(t, 0, cart.TotalCount())
}

func TestAddToCartWithDuration(t *testing.T) {
	router, cart, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/cart/items", `{"product_id":4,"duration_label":"1 YEAR"}`)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "CANVA PRO (official) (1 YEAR) added to cart!")

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "99.00", lines[0].Price.StringFixed(2))

	w = doJSON(router, http.MethodPost, "/cart/items", `{"product_id":4,"duration_label":"2 WEEKS"}`)
	assert.Equal(t, 400, w.Code)
}

func TestCheckoutRejectsBadEmail(t *testing.T) {
	router, cart, orders := newTestRouter(t)

	doJSON(router, http.MethodPost, "/cart/items", `{"product_id":1}`)

	w := doJSON(router, http.MethodPost, "/checkout", `{
		"name": "Rahim Uddin",
		"email": "bad-email",
		"phone": "01712345678",
		"transaction_id": "TRX12345",
		"payment_method": "bkash"
	}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email.")

	// Cart and order store untouched by the rejection.
	assert.Equal(t, 1, cart.TotalCount())
	assert.Empty(t, orders.Orders())
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/checkout", `{
		"name": "Rahim Uddin",
		"email": "rahim@example.com",
		"phone": "01712345678",
		"transaction_id": "TRX12345",
		"payment_method": "bkash"
	}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Your cart is empty.")
}

func TestCheckoutConfirmsOrder(t *testing.T) {
	router, cart, orders := newTestRouter(t)

	doJSON(router, http.MethodPost, "/cart/items", `{"product_id":1}`)
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id":1}`)

	w := doJSON(router, http.MethodPost, "/checkout", `{
		"name": "Rahim Uddin",
		"email": "rahim@example.com",
		"phone": "01712345678",
		"transaction_id": "TRX12345",
		"payment_method": "bkash"
	}`)
	require.Equal(t, 201, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			OrderID string `json:"order_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Regexp(t, `^TPBD-\d{6}$`, resp.Data.OrderID)
	assert.Contains(t, resp.Message, "placed successfully!")

	assert.Equal(t, 0, cart.TotalCount())
	require.Len(t, orders.Orders(), 1)
	assert.Equal(t, "498.00", orders.Orders()[0].TotalAmount.StringFixed(2))

	// The badge sees the new unviewed order.
	w = doJSON(router, http.MethodGet, "/orders/unread-count", "")
	assert.Contains(t, w.Body.String(), `"unread_count":1`)
}
