package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// TokenVerifier checks Google sign-in ID tokens. *fbauth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// NewFirebaseVerifier builds a Firebase Auth client from a service account
// JSON blob.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsJSON string) (*fbauth.Client, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsJSON([]byte(credentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return client, nil
}

type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ---------------------------------------------
// GOOGLE LOGIN
// ---------------------------------------------
// POST /api/auth/google
// Signs in with a Firebase ID token. Unknown emails get a new account whose
// password is random, so only Google sign-in works for it until the user
// sets one.
func GoogleLogin(s *store.Store, issuer *Issuer, verifier TokenVerifier, cost int, adminEmails []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GoogleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := c.Request.Context()
		token, err := verifier.VerifyIDTokenAndCheckRevoked(ctx, input.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}
		email, _ := token.Claims["email"].(string)
		email = strings.TrimSpace(email)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token carries no email"})
			return
		}
		name, _ := token.Claims["name"].(string)

		// 1️⃣ Fetch or create the account
		status := http.StatusOK
		user, err := s.GetUserByEmail(ctx, email)
		switch {
		case errors.Is(err, models.ErrNotFound):
			user = &models.User{Email: email, Name: name, IsAdmin: isListed(adminEmails, email)}
			if err := user.SetPasswordWithCost(uuid.NewString(), cost); err != nil {
				_ = c.Error(err)
				return
			}
			if err := createAccount(ctx, s, user); err != nil {
				_ = c.Error(err)
				return
			}
			log.Printf("👤 Created account for %s via Google (uid %s)", email, token.UID)
			status = http.StatusCreated
		case err != nil:
			_ = c.Error(err)
			return
		case user.Name == "" && name != "":
			user.Name = name
			if err := s.SaveUser(ctx, user); err != nil {
				_ = c.Error(err)
				return
			}
		}

		// 2️⃣ Issue our own token
		jwtStr, err := issuer.Issue(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(status, gin.H{"token": jwtStr, "user": user.Serialize()})
	}
}
