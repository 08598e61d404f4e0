package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// Transitions between statuses are decided by the caller.
const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// ParseOrderStatus accepts a status name in any letter case.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range []OrderStatus{OrderStatusPending, OrderStatusShipped, OrderStatusDelivered} {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: invalid order status %q", ErrValidation, s)
}

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Reference       string          `gorm:"size:64;uniqueIndex;not null" json:"reference"`
	UserID          uint            `gorm:"not null;index" json:"user_id" validate:"required"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount" validate:"gte=0"`
	Status          OrderStatus     `gorm:"size:50;default:'Pending'" json:"status" validate:"required,oneof=Pending Shipped Delivered"`
	CreatedAt       time.Time       `json:"created_at"`
	ShippingAddress string          `gorm:"size:255" json:"shipping_address" validate:"max=255"`
	City            string          `gorm:"size:100" json:"city" validate:"max=100"`
	Region          string          `gorm:"size:100" json:"region" validate:"max=100"`
	ZipCode         string          `gorm:"size:20" json:"zip_code" validate:"max=20"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items" validate:"-"`
}

// Serialize always includes the order items. It fails when an item's variant
// or product cannot be resolved through lookup.
func (o *Order) Serialize(lookup Lookup) (map[string]interface{}, error) {
	items := make([]map[string]interface{}, 0, len(o.Items))
	for i := range o.Items {
		item, err := o.Items[i].Serialize(lookup)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return map[string]interface{}{
		"id":               o.ID,
		"reference":        o.Reference,
		"user_id":          o.UserID,
		"total_amount":     o.TotalAmount.InexactFloat64(),
		"status":           string(o.Status),
		"created_at":       o.CreatedAt.UTC().Format(time.RFC3339),
		"shipping_address": o.ShippingAddress,
		"city":             o.City,
		"region":           o.Region,
		"zip_code":         o.ZipCode,
		"items":            items,
	}, nil
}

// OrderItem keeps the price it was bought at; later base price changes do not
// reach it.
type OrderItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderID         uint            `gorm:"not null;index" json:"order_id"`
	VariantID       uint            `gorm:"not null;index" json:"variant_id" validate:"required"`
	ProductID       uint            `gorm:"index" json:"product_id"`
	Quantity        int             `gorm:"not null" json:"quantity" validate:"gte=1"`
	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_at_purchase" validate:"gte=0"`

	// Ordered variants and products cannot be deleted.
	Variant *Variant `gorm:"foreignKey:VariantID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
}

func (i *OrderItem) Serialize(lookup Lookup) (map[string]interface{}, error) {
	variant, product, err := resolveVariant(lookup, i.VariantID)
	if err != nil {
		return nil, fmt.Errorf("order item %d: %w", i.ID, err)
	}
	return map[string]interface{}{
		"id":                i.ID,
		"variant_id":        i.VariantID,
		"product_id":        i.ProductID,
		"quantity":          i.Quantity,
		"price_at_purchase": i.PriceAtPurchase.InexactFloat64(),
		"product_name":      product.Name,
		"size":              variant.Size,
		"color":             variant.Color,
	}, nil
}

// Subtotal is quantity times the captured price.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
