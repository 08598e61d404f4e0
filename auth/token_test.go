package auth

import (
	"testing"
	"time"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	token, err := iss.Issue(&models.User{ID: 12, IsAdmin: true})
	require.NoError(t, err)

	claims, err := iss.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "12", claims.Subject)
}

func TestIssuer_Rejects(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	token, err := iss.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	_, err = NewIssuer("other", time.Hour).Parse(token)
	require.Error(t, err)

	expired, err := NewIssuer("secret", -time.Minute).Issue(&models.User{ID: 1})
	require.NoError(t, err)
	_, err = iss.Parse(expired)
	require.Error(t, err)

	_, err = iss.Parse("not-a-token")
	require.Error(t, err)
}
