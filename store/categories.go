package store

import (
	"context"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
)

func (s *Store) CreateCategory(ctx context.Context, c *models.Category) error {
	if err := models.Validate(c); err != nil {
		return err
	}
	return translate(s.conn(ctx).Omit("Products").Create(c).Error)
}

func (s *Store) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	if err := s.first(ctx, &c, nil, "id = ?", id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var c models.Category
	if err := s.first(ctx, &c, nil, "name = ?", name); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.conn(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

func (s *Store) SaveCategory(ctx context.Context, c *models.Category) error {
	if err := models.Validate(c); err != nil {
		return err
	}
	return s.update(ctx, c)
}

// DeleteCategory detaches the category's products before removing it.
func (s *Store) DeleteCategory(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if _, err := tx.GetCategory(ctx, id); err != nil {
			return err
		}
		if err := tx.conn(ctx).Model(&models.Product{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return translate(err)
		}
		return translate(tx.conn(ctx).Delete(&models.Category{}, id).Error)
	})
}
