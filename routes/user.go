package routes

import (
	cartControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/cart"
	orderControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/order"
	userControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/user"
	"github.com/4GeeksAcademy/Ecommerce-Project/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers all "/api/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(api *gin.RouterGroup, d Deps) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.Issuer))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("", userControllers.GetUser(d.Store))                  // GET /api/user
		userGroup.PUT("", userControllers.UpdateUser(d.Store, d.BcryptCost)) // PUT /api/user

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(d.Store))               // GET /api/user/cart
			cartGroup.POST("", cartControllers.AddCartItem(d.Store))              // POST /api/user/cart
			cartGroup.DELETE("", cartControllers.ClearUserCart(d.Store))          // DELETE /api/user/cart
			cartGroup.PUT("/:itemID", cartControllers.UpdateCartItem(d.Store))    // PUT /api/user/cart/:itemID
			cartGroup.DELETE("/:itemID", cartControllers.DeleteCartItem(d.Store)) // DELETE /api/user/cart/:itemID
		}

		// ──────────────── Order History ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(d.Store))
		userGroup.GET("/orders/:orderID", orderControllers.GetUserOrderHandler(d.Store))
	}
}
