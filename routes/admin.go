package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/order"
	productcontroller "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/product"
	salesControllers "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/sales"
	settingsControllers "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/settings"
	"github.com/contanova1845944-collab/ConfeitariaGebolos/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the
// admin token middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetOrdersHandler(db))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			// accept / soft-delete / restore, per the transition table
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			// permanent removal, only from the deleted tab
			orderAdmin.DELETE("/:orderID", orderControllers.PermanentDeleteHandler(db))
		}

		// ─────────── Site Settings ───────────
		adminGroup.PUT("/settings", settingsControllers.UpdateSettings(db))

		// ─────────── Analytics ───────────
		analytics := adminGroup.Group("/analytics")
		{
			analytics.GET("/sales", salesControllers.GetSalesReport(db))
			analytics.GET("/sales/export", salesControllers.ExportSalesToExcel(db))
		}
	}
}
