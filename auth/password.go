package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
// Emails listed in adminEmails are registered as admins.
func Register(s *store.Store, issuer *Issuer, cost int, adminEmails []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := &models.User{
			Email:   input.Email,
			Name:    input.Name,
			Address: input.Address,
			IsAdmin: isListed(adminEmails, input.Email),
		}
		if err := user.SetPasswordWithCost(input.Password, cost); err != nil {
			_ = c.Error(err)
			return
		}

		if err := createAccount(c.Request.Context(), s, user); err != nil {
			if errors.Is(err, models.ErrConstraintViolation) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
				return
			}
			_ = c.Error(err)
			return
		}

		token, err := issuer.Issue(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user.Serialize()})
	}
}

// POST /api/auth/login
func Login(s *store.Store, issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := s.GetUserByEmail(c.Request.Context(), input.Email)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			_ = c.Error(err)
			return
		}
		if user == nil || !user.CheckPassword(input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := issuer.Issue(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Serialize()})
	}
}

// createAccount stores the user together with an empty cart.
func createAccount(ctx context.Context, s *store.Store, user *models.User) error {
	return s.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.CreateCart(ctx, &models.Cart{UserID: user.ID})
	})
}

func isListed(emails []string, email string) bool {
	for _, e := range emails {
		if strings.EqualFold(strings.TrimSpace(e), strings.TrimSpace(email)) {
			return true
		}
	}
	return false
}
