package routes

import (
	"github.com/4GeeksAcademy/Ecommerce-Project/auth"
	orderControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/order"
	productcontroller "github.com/4GeeksAcademy/Ecommerce-Project/controllers/product"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

// Deps carries everything the route groups hand to their controllers.
type Deps struct {
	Store       *store.Store
	Issuer      *auth.Issuer
	Google      auth.TokenVerifier // nil disables Google sign-in
	Hub         *orderControllers.Hub
	Images      productcontroller.Images
	BcryptCost  int
	AdminEmails []string
}

// SetupRoutes is the single entry-point that wires up every "/api" route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	// 1️⃣ Public auth + catalog routes (no middleware)
	SetupAuthRoutes(api, d)
	SetupCatalogRoutes(api, d)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(api, d)

	// 3️⃣ Checkout
	SetupOrderRoutes(api, d)

	// 4️⃣ Admin routes (JWT + is_admin)
	SetupAdminRoutes(api, d)
}
