package routes

import (
	adminController "github.com/4GeeksAcademy/Ecommerce-Project/controllers/admin"
	orderControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/order"
	productcontroller "github.com/4GeeksAcademy/Ecommerce-Project/controllers/product"
	userControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/user"
	"github.com/4GeeksAcademy/Ecommerce-Project/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires an admin token.
func SetupAdminRoutes(api *gin.RouterGroup, d Deps) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(d.Issuer), middleware.RequireAdmin)
	{
		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(d.Store))
		adminGroup.GET("/users", userControllers.GetAllUsers(d.Store))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(d.Store))

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.POST("/approve", adminController.ApproveAdmin(d.Store))
			adminMgmt.POST("/reject", adminController.RejectAdmin(d.Store))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(d.Store))
			categoryAdmin.GET("", productcontroller.GetAllCategories(d.Store))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(d.Store))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(d.Store))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.Store))
			productAdmin.GET("", productcontroller.GetProducts(d.Store))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.Store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.Store))
			productAdmin.POST("/:id/variants", productcontroller.CreateVariant(d.Store))
			productAdmin.POST("/:id/image", productcontroller.UploadProductImage(d.Store, d.Images))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Store))
		}

		// ─────────── Variant Stock ───────────
		variantAdmin := adminGroup.Group("/variants")
		{
			variantAdmin.PUT("/:id", productcontroller.UpdateVariant(d.Store))
			variantAdmin.DELETE("/:id", productcontroller.DeleteVariant(d.Store))
			variantAdmin.POST("/import-excel", productcontroller.ImportVariantsFromExcel(d.Store))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(d.Store))
			// websocket endpoint for real-time order updates
			orderAdmin.GET("/ws", d.Hub.OrderWebSocketHandler)
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.Store, d.Hub))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(d.Store))
		}
	}
}
