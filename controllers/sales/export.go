package salesControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
)

// ExportSalesToExcel downloads the rollup as a spreadsheet, best sellers
// first.
func ExportSalesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sales []models.ProductSales
		if err := db.Order("quantity_sold DESC").Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sales")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{"Position", "ProductID", "ProductName", "QuantitySold", "TotalRevenue", "LastSaleAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for i, sale := range sales {
			row := sheet.AddRow()
			row.AddCell().SetValue(i + 1)
			row.AddCell().SetValue(sale.ProductID)
			row.AddCell().SetValue(sale.ProductName)
			row.AddCell().SetValue(sale.QuantitySold)
			row.AddCell().SetValue(sale.TotalRevenue)
			row.AddCell().SetValue(sale.LastSaleAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=sales.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
