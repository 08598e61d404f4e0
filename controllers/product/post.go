package productcontroller

import (
	"net/http"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type VariantInput struct {
	Size  string `json:"size" binding:"required"`
	Color string `json:"color" binding:"required"`
	Stock int    `json:"stock"`
}

type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	ImageURL    *string         `json:"image_url"`
	Stock       int             `json:"stock"`
	CategoryID  *uint           `json:"category_id"`
	Variants    []VariantInput  `json:"variants" binding:"dive"`
}

// POST /api/admin/products
// Variants listed in the body are created together with the product.
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			BasePrice:   input.BasePrice,
			ImageURL:    input.ImageURL,
			Stock:       input.Stock,
			CategoryID:  input.CategoryID,
		}
		for _, v := range input.Variants {
			product.Variants = append(product.Variants, models.Variant{Size: v.Size, Color: v.Color, Stock: v.Stock})
		}

		if err := s.CreateProduct(c.Request.Context(), &product); err != nil {
			_ = c.Error(err)
			return
		}
		lookup, err := s.IndexForProducts(c.Request.Context(), product)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, product.Serialize(lookup, true))
	}
}
