package models

type Cart struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"uniqueIndex;not null" json:"user_id" validate:"required"` // one cart per user
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items" validate:"-"`
}

func (c *Cart) Serialize(lookup Lookup) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(c.Items))
	for i := range c.Items {
		items = append(items, c.Items[i].Serialize(lookup))
	}
	return map[string]interface{}{
		"id":      c.ID,
		"user_id": c.UserID,
		"items":   items,
	}
}

// CartItem holds one line per variant and cart.
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CartID    uint `gorm:"not null;uniqueIndex:idx_cart_variant" json:"cart_id" validate:"required"`
	ProductID uint `gorm:"not null;index" json:"product_id" validate:"required"`
	VariantID uint `gorm:"not null;index;uniqueIndex:idx_cart_variant" json:"variant_id" validate:"required"`
	Quantity  int  `gorm:"default:1" json:"quantity" validate:"gte=1"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Variant *Variant `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

// Serialize nests the product form when the product still resolves.
func (i *CartItem) Serialize(lookup Lookup) map[string]interface{} {
	data := map[string]interface{}{
		"id":         i.ID,
		"quantity":   i.Quantity,
		"product_id": i.ProductID,
		"variant_id": i.VariantID,
		"product":    nil,
	}
	if lookup == nil {
		return data
	}
	if p, ok := lookup.Product(i.ProductID); ok {
		data["product"] = p.Serialize(lookup, false)
	}
	if v, ok := lookup.Variant(i.VariantID); ok {
		data["size"] = v.Size
		data["color"] = v.Color
	}
	return data
}
