package store

import (
	"context"
	"fmt"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
)

func (s *Store) CreateVariant(ctx context.Context, v *models.Variant) error {
	return s.Transaction(ctx, func(tx *Store) error {
		return tx.createVariant(ctx, v)
	})
}

func (s *Store) createVariant(ctx context.Context, v *models.Variant) error {
	if err := models.Validate(v); err != nil {
		return err
	}
	if err := s.mustExist(ctx, &models.Product{}, v.ProductID, "product"); err != nil {
		return err
	}
	return translate(s.conn(ctx).Create(v).Error)
}

func (s *Store) GetVariant(ctx context.Context, id uint) (*models.Variant, error) {
	var v models.Variant
	if err := s.first(ctx, &v, nil, "id = ?", id); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) ListVariants(ctx context.Context, productID uint) ([]models.Variant, error) {
	var variants []models.Variant
	if err := s.conn(ctx).Where("product_id = ?", productID).Order("id").Find(&variants).Error; err != nil {
		return nil, translate(err)
	}
	return variants, nil
}

func (s *Store) SaveVariant(ctx context.Context, v *models.Variant) error {
	if err := models.Validate(v); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.mustExist(ctx, &models.Product{}, v.ProductID, "product"); err != nil {
			return err
		}
		return tx.update(ctx, v)
	})
}

// UpsertVariantStock sets the stock of the (product, size, color) variant,
// creating it when it does not exist yet. It reports whether a row was created.
func (s *Store) UpsertVariantStock(ctx context.Context, productID uint, size, color string, stock int) (bool, error) {
	created := false
	err := s.Transaction(ctx, func(tx *Store) error {
		var v models.Variant
		err := tx.first(ctx, &v, nil, "product_id = ? AND size = ? AND color = ?", productID, size, color)
		switch {
		case err == nil:
			v.Stock = stock
			if err := models.Validate(&v); err != nil {
				return err
			}
			return tx.update(ctx, &v)
		case isNotFound(err):
			created = true
			return tx.createVariant(ctx, &models.Variant{ProductID: productID, Size: size, Color: color, Stock: stock})
		default:
			return err
		}
	})
	return created, err
}

// DeleteVariant removes a variant that has never been ordered, along with the
// cart lines that point at it.
func (s *Store) DeleteVariant(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if _, err := tx.GetVariant(ctx, id); err != nil {
			return err
		}

		var ordered int64
		if err := tx.conn(ctx).Model(&models.OrderItem{}).Where("variant_id = ?", id).Count(&ordered).Error; err != nil {
			return translate(err)
		}
		if ordered > 0 {
			return fmt.Errorf("%w: variant %d is referenced by %d order items", models.ErrConstraintViolation, id, ordered)
		}

		if err := tx.conn(ctx).Where("variant_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return translate(err)
		}
		return translate(tx.conn(ctx).Delete(&models.Variant{}, id).Error)
	})
}
