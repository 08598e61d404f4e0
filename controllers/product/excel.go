package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// POST /api/admin/variants/import-excel
// Restocks variants from the first sheet of an uploaded workbook laid out like
// the export (ProductID, ..., Size, Color, Stock). Missing variants are created.
func ImportVariantsFromExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || len(xlFile.Sheets[0].Rows) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for _, row := range sheet.Rows[1:] {
			get := func(index int) string {
				if row != nil && index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			productID, err1 := strconv.ParseUint(get(0), 10, 64)
			size, color := get(5), get(6)
			stock, err2 := strconv.Atoi(get(7))
			if err1 != nil || err2 != nil || size == "" || color == "" {
				skippedCount++
				continue
			}

			created, err := s.UpsertVariantStock(c.Request.Context(), uint(productID), size, color, stock)
			switch {
			case err != nil:
				skippedCount++
			case created:
				createdCount++
			default:
				updatedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
