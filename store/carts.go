package store

import (
	"context"
	"fmt"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateCart(ctx context.Context, c *models.Cart) error {
	if err := models.Validate(c); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.mustExist(ctx, &models.User{}, c.UserID, "user"); err != nil {
			return err
		}
		return translate(tx.conn(ctx).Omit("Items").Create(c).Error)
	})
}

func (s *Store) GetCart(ctx context.Context, id uint) (*models.Cart, error) {
	var c models.Cart
	if err := s.first(ctx, &c, nil, "id = ?", id); err != nil {
		return nil, err
	}
	return &c, s.loadCartItems(ctx, &c)
}

func (s *Store) GetCartByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var c models.Cart
	if err := s.first(ctx, &c, nil, "user_id = ?", userID); err != nil {
		return nil, err
	}
	return &c, s.loadCartItems(ctx, &c)
}

func (s *Store) loadCartItems(ctx context.Context, c *models.Cart) error {
	return translate(s.conn(ctx).Where("cart_id = ?", c.ID).Order("id").Find(&c.Items).Error)
}

// EnsureCart returns the user's cart, creating an empty one on first use.
func (s *Store) EnsureCart(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart *models.Cart
	err := s.Transaction(ctx, func(tx *Store) error {
		c, err := tx.GetCartByUser(ctx, userID)
		if err == nil {
			cart = c
			return nil
		}
		if !isNotFound(err) {
			return err
		}
		c = &models.Cart{UserID: userID}
		if err := models.Validate(c); err != nil {
			return err
		}
		if err := tx.mustExist(ctx, &models.User{}, userID, "user"); err != nil {
			return err
		}
		if err := tx.conn(ctx).Omit("Items").Create(c).Error; err != nil {
			return translate(err)
		}
		cart = c
		return nil
	})
	return cart, err
}

// AddCartItem puts a variant in the cart. When the cart already holds that
// variant the quantities are merged into the existing line.
func (s *Store) AddCartItem(ctx context.Context, item *models.CartItem) error {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkCartItemRefs(ctx, item); err != nil {
			return err
		}

		var existing models.CartItem
		err := tx.first(ctx, &existing, nil, "cart_id = ? AND variant_id = ?", item.CartID, item.VariantID)
		switch {
		case err == nil:
			existing.Quantity += item.Quantity
			if err := tx.update(ctx, &existing); err != nil {
				return err
			}
			*item = existing
			return nil
		case isNotFound(err):
			return translate(tx.conn(ctx).Omit(clause.Associations).Create(item).Error)
		default:
			return err
		}
	})
}

// checkCartItemRefs resolves the cart, product and variant of item. A variant
// given without its product gets the product filled in.
func (s *Store) checkCartItemRefs(ctx context.Context, item *models.CartItem) error {
	if item.VariantID != 0 {
		v, err := s.GetVariant(ctx, item.VariantID)
		if isNotFound(err) {
			return fmt.Errorf("%w: variant %d does not exist", models.ErrConstraintViolation, item.VariantID)
		}
		if err != nil {
			return err
		}
		if item.ProductID == 0 {
			item.ProductID = v.ProductID
		}
		if v.ProductID != item.ProductID {
			return fmt.Errorf("%w: variant %d does not belong to product %d", models.ErrConstraintViolation, v.ID, item.ProductID)
		}
	}
	if err := models.Validate(item); err != nil {
		return err
	}
	if err := s.mustExist(ctx, &models.Cart{}, item.CartID, "cart"); err != nil {
		return err
	}
	return s.mustExist(ctx, &models.Product{}, item.ProductID, "product")
}

func (s *Store) GetCartItem(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.first(ctx, &item, nil, "id = ?", id); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) SaveCartItem(ctx context.Context, item *models.CartItem) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkCartItemRefs(ctx, item); err != nil {
			return err
		}
		return tx.update(ctx, item)
	})
}

func (s *Store) DeleteCartItem(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&models.CartItem{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ClearCart empties the cart but keeps it.
func (s *Store) ClearCart(ctx context.Context, cartID uint) error {
	return translate(s.conn(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error)
}

// DeleteCart removes the cart and its items.
func (s *Store) DeleteCart(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		return tx.deleteCart(ctx, id)
	})
}

func (s *Store) deleteCart(ctx context.Context, id uint) error {
	if err := s.ClearCart(ctx, id); err != nil {
		return err
	}
	res := s.conn(ctx).Delete(&models.Cart{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
