package store

import (
	"context"
	"fmt"
	"time"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Shipping is the delivery information captured at checkout.
type Shipping struct {
	Address string
	City    string
	Region  string
	ZipCode string
}

// newReference builds a sortable unique order reference,
// e.g. 20250908130500-<uuid4>.
func newReference() string {
	return time.Now().UTC().Format("20060102150405") + "-" + uuid.NewString()
}

// CreateOrder inserts the order and its items in one transaction. For every
// item the variant row is locked and its stock decremented; the product id is
// copied from the variant and the product's current base price is captured
// when no price was given. A zero total is replaced by the sum of the items.
func (s *Store) CreateOrder(ctx context.Context, o *models.Order) error {
	return s.Transaction(ctx, func(tx *Store) error {
		return tx.createOrder(ctx, o)
	})
}

func (s *Store) createOrder(ctx context.Context, o *models.Order) error {
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	if o.Reference == "" {
		o.Reference = newReference()
	}
	if err := models.Validate(o); err != nil {
		return err
	}
	if err := s.mustExist(ctx, &models.User{}, o.UserID, "user"); err != nil {
		return err
	}

	total := decimal.Zero
	for i := range o.Items {
		item := &o.Items[i]
		if err := s.reserveItem(ctx, item); err != nil {
			return err
		}
		total = total.Add(item.Subtotal())
	}
	if o.TotalAmount.IsZero() {
		o.TotalAmount = total
	}

	// Items are inserted with the order; their variant and product rows are
	// only referenced.
	return translate(s.conn(ctx).Omit("Items.Variant", "Items.Product").Create(o).Error)
}

// reserveItem takes the item's quantity out of the variant stock and fills
// in the denormalized product id and the price snapshot.
func (s *Store) reserveItem(ctx context.Context, item *models.OrderItem) error {
	if err := models.Validate(item); err != nil {
		return err
	}

	q := s.conn(ctx)
	if q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var v models.Variant
	if err := q.Where("id = ?", item.VariantID).First(&v).Error; err != nil {
		if err = translate(err); isNotFound(err) {
			return fmt.Errorf("%w: variant %d does not exist", models.ErrConstraintViolation, item.VariantID)
		}
		return err
	}
	if item.ProductID != 0 && item.ProductID != v.ProductID {
		return fmt.Errorf("%w: variant %d does not belong to product %d", models.ErrConstraintViolation, v.ID, item.ProductID)
	}
	if v.Stock < item.Quantity {
		return fmt.Errorf("%w: variant %d has %d left, %d requested", models.ErrInsufficientStock, v.ID, v.Stock, item.Quantity)
	}

	res := s.conn(ctx).Model(&models.Variant{}).
		Where("id = ? AND stock >= ?", v.ID, item.Quantity).
		Update("stock", gorm.Expr("stock - ?", item.Quantity))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: variant %d", models.ErrInsufficientStock, v.ID)
	}

	var p models.Product
	if err := s.first(ctx, &p, nil, "id = ?", v.ProductID); err != nil {
		return err
	}
	item.ProductID = p.ID
	if item.PriceAtPurchase.IsZero() {
		item.PriceAtPurchase = p.BasePrice
	}
	return models.Validate(item)
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (s *Store) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	err := s.conn(ctx).Preload("Items", orderItemsByID).Where("id = ?", id).First(&o).Error
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.conn(ctx).Preload("Items", orderItemsByID).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.conn(ctx).Preload("Items", orderItemsByID).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

// SaveOrder writes the order row. Items are immutable once placed.
func (s *Store) SaveOrder(ctx context.Context, o *models.Order) error {
	if err := models.Validate(o); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.mustExist(ctx, &models.User{}, o.UserID, "user"); err != nil {
			return err
		}
		return tx.update(ctx, o)
	})
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	if _, err := models.ParseOrderStatus(string(status)); err != nil {
		return err
	}
	res := s.conn(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteOrder removes the order and its items.
func (s *Store) DeleteOrder(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.conn(ctx).Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return translate(err)
		}
		res := tx.conn(ctx).Delete(&models.Order{}, id)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}

// Checkout turns the user's cart into a pending order and empties the cart,
// all in one transaction.
func (s *Store) Checkout(ctx context.Context, userID uint, ship Shipping) (*models.Order, error) {
	var order *models.Order
	err := s.Transaction(ctx, func(tx *Store) error {
		cart, err := tx.GetCartByUser(ctx, userID)
		if err != nil && !isNotFound(err) {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return fmt.Errorf("%w: cart is empty", models.ErrValidation)
		}

		o := &models.Order{
			UserID:          userID,
			ShippingAddress: ship.Address,
			City:            ship.City,
			Region:          ship.Region,
			ZipCode:         ship.ZipCode,
		}
		for _, line := range cart.Items {
			o.Items = append(o.Items, models.OrderItem{
				VariantID: line.VariantID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}
		if err := tx.createOrder(ctx, o); err != nil {
			return err
		}
		if err := tx.ClearCart(ctx, cart.ID); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
