package routes

import (
	productControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/product"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers the public, read-only catalog.
func SetupCatalogRoutes(api *gin.RouterGroup, d Deps) {
	api.GET("/categories", productControllers.GetAllCategories(d.Store))

	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(d.Store))
		products.GET("/:id", productControllers.GetProductByID(d.Store))
		products.GET("/:id/variants", productControllers.GetVariants(d.Store))
	}
}
