package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSetPassword(t *testing.T) {
	u := &User{Email: "ana@example.com"}
	require.NoError(t, u.SetPasswordWithCost("first", bcrypt.MinCost))
	assert.NotEqual(t, "first", u.PasswordHash)
	assert.True(t, u.CheckPassword("first"))
	assert.False(t, u.CheckPassword("First"))

	require.NoError(t, u.SetPasswordWithCost("second", bcrypt.MinCost))
	assert.False(t, u.CheckPassword("first"))
	assert.True(t, u.CheckPassword("second"))
}

func TestSetPassword_Invalid(t *testing.T) {
	u := &User{}
	require.ErrorIs(t, u.SetPassword(""), ErrValidation)
	require.ErrorIs(t, u.SetPassword(strings.Repeat("x", 73)), ErrValidation)
	assert.Empty(t, u.PasswordHash)
	assert.False(t, u.CheckPassword(""))
}

func TestUserSerialize_OmitsHash(t *testing.T) {
	u := &User{ID: 7, Email: "ana@example.com", Name: "Ana", Address: "Calle 1"}
	require.NoError(t, u.SetPasswordWithCost("pw", bcrypt.MinCost))

	data := u.Serialize()
	assert.Equal(t, map[string]interface{}{
		"id":       uint(7),
		"email":    "ana@example.com",
		"is_admin": false,
		"name":     "Ana",
		"address":  "Calle 1",
	}, data)
	for _, v := range data {
		assert.NotEqual(t, u.PasswordHash, v)
	}
}

func TestValidate(t *testing.T) {
	u := &User{Email: "nope"}
	err := Validate(u)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "PasswordHash")

	require.NoError(t, Validate(&Category{Name: "Shirts"}))
	require.ErrorIs(t, Validate(&Variant{ProductID: 1, Size: "XXXXXXXXXXL", Color: "Red"}), ErrValidation)
}

func TestParseOrderStatus(t *testing.T) {
	st, err := ParseOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, st)

	_, err = ParseOrderStatus("returned")
	require.ErrorIs(t, err, ErrValidation)
}
