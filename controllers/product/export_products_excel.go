package productcontroller

import (
	"net/http"

	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

var variantSheetHeaders = []string{
	"ProductID", "ProductName", "Category", "BasePrice", "VariantID", "Size", "Color", "Stock",
}

// GET /api/admin/products/export-excel
// One row per variant; products without variants get a row with empty
// variant columns.
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.ListProducts(c.Request.Context(), store.ProductFilter{})
		if err != nil {
			_ = c.Error(err)
			return
		}
		lookup, err := s.IndexForProducts(c.Request.Context(), products...)
		if err != nil {
			_ = c.Error(err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Variants")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range variantSheetHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			category := ""
			if p.CategoryID != nil {
				if cat, ok := lookup.Category(*p.CategoryID); ok {
					category = cat.Name
				}
			}
			addProductCells := func(row *xlsx.Row) {
				row.AddCell().SetValue(p.ID)
				row.AddCell().SetValue(p.Name)
				row.AddCell().SetValue(category)
				row.AddCell().SetValue(p.BasePrice.String())
			}

			if len(p.Variants) == 0 {
				addProductCells(sheet.AddRow())
				continue
			}
			for _, v := range p.Variants {
				row := sheet.AddRow()
				addProductCells(row)
				row.AddCell().SetValue(v.ID)
				row.AddCell().SetValue(v.Size)
				row.AddCell().SetValue(v.Color)
				row.AddCell().SetValue(v.Stock)
			}
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
