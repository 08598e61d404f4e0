package adminController

import (
	"net/http"

	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

// GET /api/admin/admins
func GetAllAdmins(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		admins, err := s.ListAdmins(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}

		out := make([]map[string]interface{}, 0, len(admins))
		for i := range admins {
			out = append(out, admins[i].Serialize())
		}
		c.JSON(http.StatusOK, out)
	}
}
