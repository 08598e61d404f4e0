package store_test

import (
	"context"
	"testing"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/4GeeksAcademy/Ecommerce-Project/store/storetest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store    *store.Store
	user     *models.User
	category *models.Category
	product  *models.Product
	variant  *models.Variant
}

func newUser(t *testing.T, s *store.Store, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Name: "Test User"}
	require.NoError(t, u.SetPasswordWithCost("secret", bcrypt.MinCost))
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

// newFixture seeds Shirts / Tee (20.00) / M Blue with 5 in stock.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := storetest.New(t)

	f := &fixture{store: s, user: newUser(t, s, "ana@example.com")}

	f.category = &models.Category{Name: "Shirts"}
	require.NoError(t, s.CreateCategory(ctx, f.category))

	f.product = &models.Product{
		Name:       "Tee",
		BasePrice:  decimal.NewFromInt(20),
		CategoryID: &f.category.ID,
	}
	require.NoError(t, s.CreateProduct(ctx, f.product))

	f.variant = &models.Variant{ProductID: f.product.ID, Size: "M", Color: "Blue", Stock: 5}
	require.NoError(t, s.CreateVariant(ctx, f.variant))
	return f
}

func count(t *testing.T, s *store.Store, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.DB().Model(model).Where(query, args...).Count(&n).Error)
	return n
}
