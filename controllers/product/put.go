package productcontroller

import (
	"net/http"

	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductUpdate carries only the fields to change.
type ProductUpdate struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	BasePrice     *decimal.Decimal `json:"base_price"`
	ImageURL      *string          `json:"image_url"`
	Stock         *int             `json:"stock"`
	CategoryID    *uint            `json:"category_id"`
	ClearCategory bool             `json:"clear_category"`
}

// PUT /api/admin/products/:id
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ProductUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := s.GetProduct(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = input.Description
		}
		if input.BasePrice != nil {
			product.BasePrice = *input.BasePrice
		}
		if input.ImageURL != nil {
			product.ImageURL = input.ImageURL
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.CategoryID != nil {
			product.CategoryID = input.CategoryID
		}
		if input.ClearCategory {
			product.CategoryID = nil
		}

		if err := s.SaveProduct(c.Request.Context(), product); err != nil {
			_ = c.Error(err)
			return
		}
		lookup, err := s.IndexForProducts(c.Request.Context(), *product)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, product.Serialize(lookup, true))
	}
}
