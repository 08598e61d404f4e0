package routes

import (
	"github.com/4GeeksAcademy/Ecommerce-Project/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, d Deps) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(d.Store, d.Issuer, d.BcryptCost, d.AdminEmails))
		authGroup.POST("/login", auth.Login(d.Store, d.Issuer))

		if d.Google != nil {
			authGroup.POST("/google", auth.GoogleLogin(d.Store, d.Issuer, d.Google, d.BcryptCost, d.AdminEmails))
		}
	}
}
