package routes

import (
	orderControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/order"
	"github.com/4GeeksAcademy/Ecommerce-Project/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(api *gin.RouterGroup, d Deps) {
	// Turn the caller's cart into an order
	api.POST("/checkout",
		middleware.ValidateToken(d.Issuer),
		orderControllers.CheckoutHandler(d.Store, d.Hub),
	)
}
