package store

import (
	"context"
	"fmt"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"gorm.io/gorm"
)

// ProductFilter narrows ListProducts. Zero values match everything.
type ProductFilter struct {
	CategoryID *uint
	Search     string
	Limit      int
	Offset     int
}

// CreateProduct inserts the product and any variants attached to it in one
// transaction.
func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	if err := models.Validate(p); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if p.CategoryID != nil {
			if err := tx.mustExist(ctx, &models.Category{}, *p.CategoryID, "category"); err != nil {
				return err
			}
		}

		variants := p.Variants
		p.Variants = nil
		if err := tx.conn(ctx).Omit("Variants").Create(p).Error; err != nil {
			p.Variants = variants
			return translate(err)
		}

		for i := range variants {
			variants[i].ProductID = p.ID
			if err := tx.createVariant(ctx, &variants[i]); err != nil {
				p.Variants = variants
				return err
			}
		}
		p.Variants = variants
		return nil
	})
}

// GetProduct returns the product with its variants loaded.
func (s *Store) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.first(ctx, &p, []string{"Variants"}, "id = ?", id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := s.conn(ctx).Model(&models.Product{}).Preload("Variants", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+f.Search+"%")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var products []models.Product
	if err := q.Order("id").Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

// SaveProduct writes the product row only; variants are managed on their own.
func (s *Store) SaveProduct(ctx context.Context, p *models.Product) error {
	if err := models.Validate(p); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if p.CategoryID != nil {
			if err := tx.mustExist(ctx, &models.Category{}, *p.CategoryID, "category"); err != nil {
				return err
			}
		}
		return tx.update(ctx, p)
	})
}

// DeleteProduct removes the product and its variants. Cart lines pointing at
// them go too; a product that has been ordered cannot be removed.
func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if _, err := tx.GetProduct(ctx, id); err != nil {
			return err
		}

		var ordered int64
		if err := tx.conn(ctx).Model(&models.OrderItem{}).
			Where("product_id = ? OR variant_id IN (?)", id,
				tx.conn(ctx).Model(&models.Variant{}).Select("id").Where("product_id = ?", id)).
			Count(&ordered).Error; err != nil {
			return translate(err)
		}
		if ordered > 0 {
			return fmt.Errorf("%w: product %d is referenced by %d order items", models.ErrConstraintViolation, id, ordered)
		}

		if err := tx.conn(ctx).Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.conn(ctx).Where("product_id = ?", id).Delete(&models.Variant{}).Error; err != nil {
			return translate(err)
		}
		return translate(tx.conn(ctx).Delete(&models.Product{}, id).Error)
	})
}
