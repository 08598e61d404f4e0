package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

// GET /api/products?category_id=&search=&limit=&offset=&include_variants=
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter store.ProductFilter

		if v := c.Query("category_id"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			id := uint(cid)
			filter.CategoryID = &id
		}
		filter.Search = c.Query("search")
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			filter.Limit = n
		}
		if v := c.Query("offset"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
				return
			}
			filter.Offset = n
		}
		includeVariants := c.Query("include_variants") == "true"

		products, err := s.ListProducts(c.Request.Context(), filter)
		if err != nil {
			_ = c.Error(err)
			return
		}
		lookup, err := s.IndexForProducts(c.Request.Context(), products...)
		if err != nil {
			_ = c.Error(err)
			return
		}

		out := make([]map[string]interface{}, 0, len(products))
		for i := range products {
			out = append(out, products[i].Serialize(lookup, includeVariants))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetProductByID returns a single product with its variants unless
// include_variants=false is given.
// URL param: /products/:id
func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := s.GetProduct(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		lookup, err := s.IndexForProducts(c.Request.Context(), *product)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, product.Serialize(lookup, c.Query("include_variants") != "false"))
	}
}
