package models

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email" validate:"required,email,max=120"`
	PasswordHash string    `gorm:"size:255;not null" json:"-" validate:"required"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `gorm:"size:120" json:"name" validate:"max=120"`
	Address      string    `gorm:"size:255" json:"address" validate:"max=255"`

	Orders []Order `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
	Cart   *Cart   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

// SetPassword replaces the stored hash with a bcrypt hash of password.
func (u *User) SetPassword(password string) error {
	return u.SetPasswordWithCost(password, bcrypt.DefaultCost)
}

// SetPasswordWithCost is SetPassword with an explicit bcrypt cost.
func (u *User) SetPasswordWithCost(password string, cost int) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: password is too long", ErrValidation)
		}
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Serialize never includes the password hash.
func (u *User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"email":    u.Email,
		"is_admin": u.IsAdmin,
		"name":     u.Name,
		"address":  u.Address,
	}
}
