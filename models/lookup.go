package models

import "fmt"

// Lookup resolves non-owning references by id.
type Lookup interface {
	Category(id uint) (*Category, bool)
	Product(id uint) (*Product, bool)
	Variant(id uint) (*Variant, bool)
}

// Index is an in-memory Lookup filled from rows already read from the store.
type Index struct {
	categories map[uint]*Category
	products   map[uint]*Product
	variants   map[uint]*Variant
}

func NewIndex() *Index {
	return &Index{
		categories: make(map[uint]*Category),
		products:   make(map[uint]*Product),
		variants:   make(map[uint]*Variant),
	}
}

func (ix *Index) AddCategories(categories ...Category) *Index {
	for i := range categories {
		c := categories[i]
		ix.categories[c.ID] = &c
	}
	return ix
}

func (ix *Index) AddProducts(products ...Product) *Index {
	for i := range products {
		p := products[i]
		ix.products[p.ID] = &p
	}
	return ix
}

func (ix *Index) AddVariants(variants ...Variant) *Index {
	for i := range variants {
		v := variants[i]
		ix.variants[v.ID] = &v
	}
	return ix
}

func (ix *Index) Category(id uint) (*Category, bool) {
	c, ok := ix.categories[id]
	return c, ok
}

func (ix *Index) Product(id uint) (*Product, bool) {
	p, ok := ix.products[id]
	return p, ok
}

func (ix *Index) Variant(id uint) (*Variant, bool) {
	v, ok := ix.variants[id]
	return v, ok
}

// resolveVariant follows variant -> product.
func resolveVariant(lookup Lookup, variantID uint) (*Variant, *Product, error) {
	if lookup == nil {
		return nil, nil, fmt.Errorf("%w: variant %d", ErrNotFound, variantID)
	}
	v, ok := lookup.Variant(variantID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: variant %d", ErrNotFound, variantID)
	}
	p, ok := lookup.Product(v.ProductID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: product %d", ErrNotFound, v.ProductID)
	}
	return v, p, nil
}
