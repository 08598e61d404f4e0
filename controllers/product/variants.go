package productcontroller

import (
	"net/http"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

type VariantUpdate struct {
	Size  *string `json:"size"`
	Color *string `json:"color"`
	Stock *int    `json:"stock"`
}

// POST /api/admin/products/:id/variants
func CreateVariant(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input VariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		variant := models.Variant{ProductID: productID, Size: input.Size, Color: input.Color, Stock: input.Stock}
		if err := s.CreateVariant(c.Request.Context(), &variant); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, variant.Serialize())
	}
}

// GET /api/products/:id/variants
func GetVariants(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if _, err := s.GetProduct(c.Request.Context(), productID); err != nil {
			_ = c.Error(err)
			return
		}

		variants, err := s.ListVariants(c.Request.Context(), productID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		out := make([]map[string]interface{}, 0, len(variants))
		for i := range variants {
			out = append(out, variants[i].Serialize())
		}
		c.JSON(http.StatusOK, out)
	}
}

// PUT /api/admin/variants/:id
func UpdateVariant(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant ID"})
			return
		}

		var input VariantUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		variant, err := s.GetVariant(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if input.Size != nil {
			variant.Size = *input.Size
		}
		if input.Color != nil {
			variant.Color = *input.Color
		}
		if input.Stock != nil {
			variant.Stock = *input.Stock
		}

		if err := s.SaveVariant(c.Request.Context(), variant); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, variant.Serialize())
	}
}

// DELETE /api/admin/variants/:id
func DeleteVariant(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant ID"})
			return
		}
		if err := s.DeleteVariant(c.Request.Context(), id); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Variant deleted successfully"})
	}
}
