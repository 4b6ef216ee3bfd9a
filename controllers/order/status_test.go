package orderControllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "orders.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.ProductSales{}))
	return db
}

func lifecycleRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	orders := r.Group("/admin/orders")
	{
		orders.GET("/:orderID", GetOrderByIDHandler(db))
		orders.PUT("/:orderID/status", UpdateOrderStatusHandler(db))
		orders.DELETE("/:orderID", PermanentDeleteHandler(db))
	}
	return r
}

// seedOrder creates a pending order with two snapshot lines: 2x Bolo de
// Pote at 10.00 and 1x Fatia Gourmet at 5.00.
func seedOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()
	order := models.Order{
		CustomerName:        "Maria",
		CustomerPhone:       "11 99999-0000",
		AddressStreet:       "Rua das Flores",
		AddressNeighborhood: "Centro",
		AddressNumber:       "12",
		Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Bolo de Pote", ProductPrice: 10, Quantity: 2},
			{ProductID: "p2", ProductName: "Fatia Gourmet", ProductPrice: 5, Quantity: 1},
		},
		TotalAmount: 25.00,
		Status:      models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func putStatus(r *gin.Engine, orderID, status string) *httptest.ResponseRecorder {
	body := strings.NewReader(`{"status":"` + status + `"}`)
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/"+orderID+"/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func rollupFor(t *testing.T, db *gorm.DB, productID string) (models.ProductSales, bool) {
	t.Helper()
	var sale models.ProductSales
	err := db.Where("product_id = ?", productID).First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ProductSales{}, false
	}
	require.NoError(t, err)
	return sale, true
}

func TestUpdateOrderStatusRejectsAcceptedToPending(t *testing.T) {
	db := setupDB(t)
	r := lifecycleRouter(db)
	order := seedOrder(t, db)

	require.Equal(t, http.StatusOK, putStatus(r, order.ID, "accepted").Code)

	w := putStatus(r, order.ID, "pending")
	assert.Equal(t, http.StatusConflict, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusAccepted, got.Status)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	db := setupDB(t)
	r := lifecycleRouter(db)

	w := putStatus(r, "no-such-order", "accepted")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPermanentDeleteRequiresSoftDelete(t *testing.T) {
	db := setupDB(t)
	r := lifecycleRouter(db)
	order := seedOrder(t, db)

	w := doRequest(r, http.MethodDelete, "/admin/orders/"+order.ID)
	assert.Equal(t, http.StatusConflict, w.Code)

	// the order is untouched
	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func TestPermanentDeleteRemovesSoftDeletedOrder(t *testing.T) {
	db := setupDB(t)
	r := lifecycleRouter(db)
	order := seedOrder(t, db)

	require.Equal(t, http.StatusOK, putStatus(r, order.ID, "deleted").Code)
	require.Equal(t, http.StatusOK, doRequest(r, http.MethodDelete, "/admin/orders/"+order.ID).Code)

	w := doRequest(r, http.MethodGet, "/admin/orders/"+order.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// snapshot rows go with the order
	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestAcceptFoldsOrderIntoRollup(t *testing.T) {
	db := setupDB(t)
	r := lifecycleRouter(db)
	order := seedOrder(t, db)

	require.Equal(t, http.StatusOK, putStatus(r, order.ID, "accepted").Code)

	sale, ok := rollupFor(t, db, "p1")
	require.True(t, ok)
	assert.Equal(t, 2, sale.QuantitySold)
	assert.Equal(t, 20.0, sale.TotalRevenue)

	sale, ok = rollupFor(t, db, "p2")
	require.True(t, ok)
	assert.Equal(t, 1, sale.QuantitySold)
	assert.Equal(t, 5.0, sale.TotalRevenue)
}

func TestSoftDeleteRetractsRollup(t *testing.T) {
	db := setupDB(t)
	r := lifecycleRouter(db)
	order := seedOrder(t, db)

	require.Equal(t, http.StatusOK, putStatus(r, order.ID, "accepted").Code)
	require.Equal(t, http.StatusOK, putStatus(r, order.ID, "deleted").Code)

	_, ok := rollupFor(t, db, "p1")
	assert.False(t, ok, "soft-deleting an accepted order must remove its rollup contribution")
	_, ok = rollupFor(t, db, "p2")
	assert.False(t, ok)
}

// An order that cycles accepted -> deleted -> accepted contributes to
// the rollup exactly once.
func TestReacceptCountsOrderOnce(t *testing.T) {
	db := setupDB(t)
	r := lifecycleRouter(db)
	order := seedOrder(t, db)

	require.Equal(t, http.StatusOK, putStatus(r, order.ID, "accepted").Code)
	require.Equal(t, http.StatusOK, putStatus(r, order.ID, "deleted").Code)
	require.Equal(t, http.StatusOK, putStatus(r, order.ID, "accepted").Code)

	sale, ok := rollupFor(t, db, "p1")
	require.True(t, ok)
	assert.Equal(t, 2, sale.QuantitySold)
	assert.Equal(t, 20.0, sale.TotalRevenue)
}

// Retracting one order must not disturb another order's share of the
// same product's rollup row.
func TestRetractLeavesOtherOrdersIntact(t *testing.T) {
	db := setupDB(t)
	r := lifecycleRouter(db)
	first := seedOrder(t, db)
	second := seedOrder(t, db)

	require.Equal(t, http.StatusOK, putStatus(r, first.ID, "accepted").Code)
	require.Equal(t, http.StatusOK, putStatus(r, second.ID, "accepted").Code)
	require.Equal(t, http.StatusOK, putStatus(r, first.ID, "deleted").Code)

	sale, ok := rollupFor(t, db, "p1")
	require.True(t, ok)
	assert.Equal(t, 2, sale.QuantitySold)
	assert.Equal(t, 20.0, sale.TotalRevenue)
}
