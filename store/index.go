package store

import (
	"context"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
)

// IndexFor loads the variants and products with the given ids, the products
// those variants belong to, and the categories of all of them. Missing ids are
// left out of the index.
func (s *Store) IndexFor(ctx context.Context, productIDs, variantIDs []uint) (*models.Index, error) {
	ix := models.NewIndex()
	productIDs = append([]uint(nil), productIDs...)

	if ids := uniq(variantIDs); len(ids) > 0 {
		var variants []models.Variant
		if err := s.conn(ctx).Where("id IN ?", ids).Find(&variants).Error; err != nil {
			return nil, translate(err)
		}
		ix.AddVariants(variants...)
		for _, v := range variants {
			productIDs = append(productIDs, v.ProductID)
		}
	}

	var categoryIDs []uint
	if ids := uniq(productIDs); len(ids) > 0 {
		var products []models.Product
		if err := s.conn(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
			return nil, translate(err)
		}
		ix.AddProducts(products...)
		for _, p := range products {
			if p.CategoryID != nil {
				categoryIDs = append(categoryIDs, *p.CategoryID)
			}
		}
	}

	if ids := uniq(categoryIDs); len(ids) > 0 {
		var categories []models.Category
		if err := s.conn(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
			return nil, translate(err)
		}
		ix.AddCategories(categories...)
	}
	return ix, nil
}

func (s *Store) IndexForProducts(ctx context.Context, products ...models.Product) (*models.Index, error) {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return s.IndexFor(ctx, ids, nil)
}

func (s *Store) IndexForOrders(ctx context.Context, orders ...models.Order) (*models.Index, error) {
	var productIDs, variantIDs []uint
	for _, o := range orders {
		for _, item := range o.Items {
			productIDs = append(productIDs, item.ProductID)
			variantIDs = append(variantIDs, item.VariantID)
		}
	}
	return s.IndexFor(ctx, productIDs, variantIDs)
}

func (s *Store) IndexForCart(ctx context.Context, cart *models.Cart) (*models.Index, error) {
	var productIDs, variantIDs []uint
	for _, item := range cart.Items {
		productIDs = append(productIDs, item.ProductID)
		variantIDs = append(variantIDs, item.VariantID)
	}
	return s.IndexFor(ctx, productIDs, variantIDs)
}

func uniq(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
