package store_test

import (
	"context"
	"testing"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCart_OnePerUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.store

	require.NoError(t, s.CreateCart(ctx, &models.Cart{UserID: f.user.ID}))
	require.ErrorIs(t, s.CreateCart(ctx, &models.Cart{UserID: f.user.ID}), models.ErrConstraintViolation)
	require.ErrorIs(t, s.CreateCart(ctx, &models.Cart{UserID: f.user.ID + 10}), models.ErrConstraintViolation)

	a, err := s.EnsureCart(ctx, f.user.ID)
	require.NoError(t, err)
	b, err := s.EnsureCart(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestAddCartItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.store

	cart, err := s.EnsureCart(ctx, f.user.ID)
	require.NoError(t, err)

	first := &models.CartItem{CartID: cart.ID, VariantID: f.variant.ID}
	require.NoError(t, s.AddCartItem(ctx, first))
	assert.Equal(t, 1, first.Quantity)
	assert.Equal(t, f.product.ID, first.ProductID)

	second := &models.CartItem{CartID: cart.ID, VariantID: f.variant.ID, Quantity: 2}
	require.NoError(t, s.AddCartItem(ctx, second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)

	got, err := s.GetCartByUser(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)

	ix, err := s.IndexForCart(ctx, got)
	require.NoError(t, err)
	data := got.Serialize(ix)
	items := data["items"].([]map[string]interface{})
	require.Len(t, items, 1)
	product := items[0]["product"].(map[string]interface{})
	assert.Equal(t, "Tee", product["name"])
	assert.NotContains(t, product, "variants")
	assert.Equal(t, "M", items[0]["size"])
}

func TestAddCartItem_Constraints(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.store

	cart, err := s.EnsureCart(ctx, f.user.ID)
	require.NoError(t, err)

	err = s.AddCartItem(ctx, &models.CartItem{CartID: cart.ID, VariantID: f.variant.ID + 9})
	require.ErrorIs(t, err, models.ErrConstraintViolation)

	err = s.AddCartItem(ctx, &models.CartItem{CartID: cart.ID + 9, VariantID: f.variant.ID})
	require.ErrorIs(t, err, models.ErrConstraintViolation)

	err = s.AddCartItem(ctx, &models.CartItem{CartID: cart.ID, ProductID: f.product.ID + 1, VariantID: f.variant.ID})
	require.ErrorIs(t, err, models.ErrConstraintViolation)

	err = s.AddCartItem(ctx, &models.CartItem{CartID: cart.ID, VariantID: f.variant.ID, Quantity: -2})
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestCartItemUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.store

	cart, err := s.EnsureCart(ctx, f.user.ID)
	require.NoError(t, err)
	item := &models.CartItem{CartID: cart.ID, VariantID: f.variant.ID}
	require.NoError(t, s.AddCartItem(ctx, item))

	item.Quantity = 4
	require.NoError(t, s.SaveCartItem(ctx, item))
	got, err := s.GetCartItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)

	require.NoError(t, s.DeleteCartItem(ctx, item.ID))
	require.ErrorIs(t, s.DeleteCartItem(ctx, item.ID), models.ErrNotFound)
}

func TestDeleteCart_RemovesItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.store

	cart, err := s.EnsureCart(ctx, f.user.ID)
	require.NoError(t, err)
	require.NoError(t, s.AddCartItem(ctx, &models.CartItem{CartID: cart.ID, VariantID: f.variant.ID}))

	require.NoError(t, s.DeleteCart(ctx, cart.ID))
	assert.Zero(t, count(t, s, &models.CartItem{}, "cart_id = ?", cart.ID))
	_, err = s.GetCart(ctx, cart.ID)
	require.ErrorIs(t, err, models.ErrNotFound)
	require.ErrorIs(t, s.DeleteCart(ctx, cart.ID), models.ErrNotFound)
}
