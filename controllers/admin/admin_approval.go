package adminController

import (
	"log"
	"net/http"

	"github.com/4GeeksAcademy/Ecommerce-Project/middleware"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

type adminRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/admin/admin-management/approve
// Grants the admin flag to an existing account. It takes effect on the
// user's next login.
func ApproveAdmin(s *store.Store) gin.HandlerFunc {
	return setAdmin(s, true, "Admin approved")
}

// POST /api/admin/admin-management/reject
// Revokes the admin flag. Admins cannot revoke themselves.
func RejectAdmin(s *store.Store) gin.HandlerFunc {
	return setAdmin(s, false, "Admin rejected")
}

func setAdmin(s *store.Store, admin bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if !admin {
			callerID, _ := middleware.UserID(c)
			if caller, err := s.GetUser(c.Request.Context(), callerID); err == nil && caller.Email == req.Email {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Admins cannot revoke themselves"})
				return
			}
		}

		user, err := s.SetAdmin(c.Request.Context(), req.Email, admin)
		if err != nil {
			_ = c.Error(err)
			return
		}
		log.Printf("👤 Admin flag of %s set to %t", user.Email, admin)
		c.JSON(http.StatusOK, gin.H{"message": message, "user": user.Serialize()})
	}
}
