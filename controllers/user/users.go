package userControllers

import (
	"net/http"
	"strconv"

	"github.com/4GeeksAcademy/Ecommerce-Project/middleware"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

type UpdateUserInput struct {
	Name     *string `json:"name" binding:"omitempty,max=120"`
	Address  *string `json:"address" binding:"omitempty,max=255"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
}

// GET /api/user
func GetUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := s.GetUser(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, user.Serialize())
	}
}

// GET /api/admin/users
func GetAllUsers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.ListUsers(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		out := make([]map[string]interface{}, 0, len(users))
		for i := range users {
			out = append(out, users[i].Serialize())
		}
		c.JSON(http.StatusOK, out)
	}
}

// PUT /api/user
// Email and admin flag cannot be changed here.
func UpdateUser(s *store.Store, bcryptCost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := s.GetUser(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Address != nil {
			user.Address = *input.Address
		}
		if input.Password != nil {
			if err := user.SetPasswordWithCost(*input.Password, bcryptCost); err != nil {
				_ = c.Error(err)
				return
			}
		}

		if err := s.SaveUser(c.Request.Context(), user); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, user.Serialize())
	}
}

// DELETE /api/admin/users/:id
// Users with orders are kept; the store reports a conflict.
func DeleteUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		if err := s.DeleteUser(c.Request.Context(), uint(id)); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
