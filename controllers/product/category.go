package productcontroller

import (
	"net/http"
	"strings"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// POST /api/admin/categories
func CreateCategory(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{Name: strings.TrimSpace(input.Name)}
		if err := s.CreateCategory(c.Request.Context(), &category); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, category.Serialize())
	}
}

// GET /api/categories
func GetAllCategories(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.ListCategories(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}

		out := make([]map[string]interface{}, 0, len(categories))
		for i := range categories {
			out = append(out, categories[i].Serialize())
		}
		c.JSON(http.StatusOK, out)
	}
}

// PUT /api/admin/categories/:id
func UpdateCategory(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, err := s.GetCategory(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		category.Name = strings.TrimSpace(input.Name)
		if err := s.SaveCategory(c.Request.Context(), category); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, category.Serialize())
	}
}

// DELETE /api/admin/categories/:id
func DeleteCategory(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		if err := s.DeleteCategory(c.Request.Context(), id); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
