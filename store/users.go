package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	u.Email = strings.TrimSpace(u.Email)
	if err := models.Validate(u); err != nil {
		return err
	}
	return translate(s.conn(ctx).Omit("Orders", "Cart").Create(u).Error)
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.first(ctx, &u, nil, "id = ?", id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.first(ctx, &u, nil, "email = ?", strings.TrimSpace(email)); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.conn(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (s *Store) SaveUser(ctx context.Context, u *models.User) error {
	if err := models.Validate(u); err != nil {
		return err
	}
	return s.update(ctx, u)
}

// DeleteUser removes the user together with their cart. Users that still own
// orders cannot be removed.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if _, err := tx.GetUser(ctx, id); err != nil {
			return err
		}

		var orders int64
		if err := tx.conn(ctx).Model(&models.Order{}).Where("user_id = ?", id).Count(&orders).Error; err != nil {
			return translate(err)
		}
		if orders > 0 {
			return fmt.Errorf("%w: user %d still has %d orders", models.ErrConstraintViolation, id, orders)
		}

		cart, err := tx.GetCartByUser(ctx, id)
		switch {
		case err == nil:
			if err := tx.deleteCart(ctx, cart.ID); err != nil {
				return err
			}
		case !isNotFound(err):
			return err
		}

		return translate(tx.conn(ctx).Delete(&models.User{}, id).Error)
	})
}

func (s *Store) ListAdmins(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.conn(ctx).Where("is_admin = ?", true).Order("email").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// SetAdmin grants or revokes the admin flag of the user with email.
func (s *Store) SetAdmin(ctx context.Context, email string, admin bool) (*models.User, error) {
	var u *models.User
	err := s.Transaction(ctx, func(tx *Store) error {
		found, err := tx.GetUserByEmail(ctx, email)
		if err != nil {
			return err
		}
		if err := tx.conn(ctx).Model(found).Update("is_admin", admin).Error; err != nil {
			return translate(err)
		}
		found.IsAdmin = admin
		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
