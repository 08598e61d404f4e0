package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:120;not null" json:"name" validate:"required,max=120"`
	Description *string         `gorm:"type:text" json:"description"`
	BasePrice   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"base_price" validate:"gte=0"`
	ImageURL    *string         `gorm:"size:500" json:"image_url" validate:"omitempty,max=500"`
	Stock       int             `gorm:"default:0" json:"stock" validate:"gte=0"`
	CategoryID  *uint           `gorm:"index" json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Variants []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty" validate:"-"`
}

// Serialize renders the product for the API. The parent category is resolved
// through lookup and rendered by name; variants are only included on request.
func (p *Product) Serialize(lookup Lookup, includeVariants bool) map[string]interface{} {
	data := map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": optional(p.Description),
		"base_price":  p.BasePrice.InexactFloat64(),
		"image_url":   optional(p.ImageURL),
		"stock":       p.Stock,
		"category":    nil,
	}
	if p.CategoryID != nil && lookup != nil {
		if cat, ok := lookup.Category(*p.CategoryID); ok {
			data["category"] = cat.Name
		}
	}
	if includeVariants {
		variants := make([]map[string]interface{}, 0, len(p.Variants))
		for i := range p.Variants {
			variants = append(variants, p.Variants[i].Serialize())
		}
		data["variants"] = variants
	}
	return data
}

// Variant is a size/color instance of a product with its own stock.
type Variant struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_product_size_color" json:"product_id" validate:"required"`
	Size      string `gorm:"size:10;not null;uniqueIndex:idx_product_size_color" json:"size" validate:"required,max=10"`
	Color     string `gorm:"size:50;not null;uniqueIndex:idx_product_size_color" json:"color" validate:"required,max=50"`
	Stock     int    `gorm:"default:0" json:"stock" validate:"gte=0"`
}

func (v *Variant) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         v.ID,
		"product_id": v.ProductID,
		"size":       v.Size,
		"color":      v.Color,
		"stock":      v.Stock,
	}
}

func optional(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
