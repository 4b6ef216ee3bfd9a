package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/cart"
)

func setupRouter(t *testing.T) (*gin.Engine, *cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := cart.NewStore(time.Minute)

	r := gin.New()
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("/session", CreateSession(store))
		cartGroup.GET("", GetCart(store))
		cartGroup.POST("/items", AddItem(store))
		cartGroup.PUT("/items/:product_id", SetItemQuantity(store))
		cartGroup.DELETE("/items/:product_id", RemoveItem(store))
		cartGroup.DELETE("", ClearCart(store))
	}
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/cart/session", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		CartToken string `json:"cart_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.CartToken)
	return resp.CartToken
}

type cartBody struct {
	Items       []cart.Item `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	TotalItems  int         `json:"total_items"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartBody {
	t.Helper()
	var body cartBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCartFlow(t *testing.T) {
	r, _ := setupRouter(t)
	token := newSession(t, r)

	item := map[string]any{"product_id": "p1", "name": "Bolo de Brigadeiro", "price": 25.50, "image_url": "https://img/b.jpg"}

	// add twice -> one line, quantity 2
	w := doJSON(t, r, http.MethodPost, "/cart/items", token, item)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/cart/items", token, item)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/cart/items", token,
		map[string]any{"product_id": "p2", "name": "Bolo de Morango", "price": 40.00})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeCart(t, w)
	require.Len(t, body.Items, 2)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, 91.00, body.TotalAmount)
	assert.Equal(t, 3, body.TotalItems)

	// quantity 0 removes the line
	w = doJSON(t, r, http.MethodPut, "/cart/items/p1", token, map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeCart(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "p2", body.Items[0].ProductID)
	assert.Equal(t, 1, body.TotalItems)

	// removing an unknown product is a no-op, not a fault
	w = doJSON(t, r, http.MethodDelete, "/cart/items/ghost", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart", token, nil)
	body = decodeCart(t, w)
	assert.Empty(t, body.Items)
	assert.Equal(t, 0.0, body.TotalAmount)
}

func TestCartMissingToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartUnknownToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/cart", "not-a-session", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItemValidation(t *testing.T) {
	r, _ := setupRouter(t)
	token := newSession(t, r)

	// product_id and name are required
	w := doJSON(t, r, http.MethodPost, "/cart/items", token, map[string]any{"price": 10.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
