package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/4GeeksAcademy/Ecommerce-Project/auth"
	orderControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/order"
	productcontroller "github.com/4GeeksAcademy/Ecommerce-Project/controllers/product"
	"github.com/4GeeksAcademy/Ecommerce-Project/middleware"
	"github.com/4GeeksAcademy/Ecommerce-Project/routes"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/4GeeksAcademy/Ecommerce-Project/store/storetest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type api struct {
	t *testing.T
	r *gin.Engine
	s *store.Store
}

func newAPI(t *testing.T) *api {
	gin.SetMode(gin.TestMode)
	s := storetest.New(t)

	r := gin.New()
	r.Use(middleware.Errors())
	routes.SetupRoutes(r, routes.Deps{
		Store:       s,
		Issuer:      auth.NewIssuer("test-secret", time.Hour),
		Hub:         orderControllers.NewHub(),
		Images:      productcontroller.Images{Dir: t.TempDir()},
		BcryptCost:  bcrypt.MinCost,
		AdminEmails: []string{"root@example.com"},
	})
	return &api{t: t, r: r, s: s}
}

func (a *api) do(method, path, token string, body interface{}) (int, map[string]interface{}) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func (a *api) list(path, token string) []interface{} {
	a.t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	var out []interface{}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (a *api) register(email string) string {
	a.t.Helper()
	code, body := a.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email": email, "password": "secret123", "name": "Test",
	})
	require.Equal(a.t, http.StatusCreated, code, body)
	return body["token"].(string)
}

func (a *api) admin(email string) string {
	a.t.Helper()
	a.register(email)

	ctx := context.Background()
	u, err := a.s.GetUserByEmail(ctx, email)
	require.NoError(a.t, err)
	u.IsAdmin = true
	require.NoError(a.t, a.s.SaveUser(ctx, u))

	return a.login(email)
}

func (a *api) login(email string) string {
	a.t.Helper()
	code, body := a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": "secret123"})
	require.Equal(a.t, http.StatusOK, code, body)
	return body["token"].(string)
}

func id(v interface{}) uint {
	return uint(v.(float64))
}

func TestAuthRoutes(t *testing.T) {
	a := newAPI(t)
	a.register("alice@example.com")

	code, _ := a.do(http.MethodPost, "/api/auth/register", "", gin.H{"email": "alice@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "alice@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "alice@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, code)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")

	code, _ = a.do(http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestProfileUpdate(t *testing.T) {
	a := newAPI(t)
	token := a.register("bob@example.com")

	code, body := a.do(http.MethodPut, "/api/user", token, gin.H{"name": "Bob", "address": "1 Main St"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Bob", body["name"])
	assert.Equal(t, "1 Main St", body["address"])

	code, body = a.do(http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Bob", body["name"])
	assert.Equal(t, false, body["is_admin"])
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	a := newAPI(t)
	token := a.register("carol@example.com")

	code, _ := a.do(http.MethodGet, "/api/admin/orders", token, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = a.do(http.MethodPost, "/api/admin/categories", token, gin.H{"name": "Shirts"})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestAdminApproval(t *testing.T) {
	a := newAPI(t)
	root := a.register("root@example.com")
	staff := a.register("staff@example.com")

	code, _ := a.do(http.MethodGet, "/api/admin/users", staff, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body := a.do(http.MethodPost, "/api/admin/admin-management/approve", root, gin.H{"email": "staff@example.com"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Len(t, a.list("/api/admin/admins", root), 2)

	// The flag is carried by the token, so a fresh login is needed.
	staff = a.login("staff@example.com")
	assert.Len(t, a.list("/api/admin/users", staff), 2)

	code, _ = a.do(http.MethodPost, "/api/admin/admin-management/reject", staff, gin.H{"email": "staff@example.com"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.do(http.MethodPost, "/api/admin/admin-management/reject", root, gin.H{"email": "staff@example.com"})
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, a.list("/api/admin/admins", root), 1)

	code, _ = a.do(http.MethodPost, "/api/admin/admin-management/approve", root, gin.H{"email": "ghost@example.com"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestShoppingFlow(t *testing.T) {
	a := newAPI(t)
	adminToken := a.admin("admin@example.com")
	shopper := a.register("shopper@example.com")

	// Catalog
	code, category := a.do(http.MethodPost, "/api/admin/categories", adminToken, gin.H{"name": "Shirts"})
	require.Equal(t, http.StatusCreated, code, category)

	code, product := a.do(http.MethodPost, "/api/admin/products", adminToken, gin.H{
		"name":        "Tee",
		"base_price":  20,
		"category_id": id(category["id"]),
		"variants":    []gin.H{{"size": "M", "color": "Blue", "stock": 5}},
	})
	require.Equal(t, http.StatusCreated, code, product)
	assert.Equal(t, "Shirts", product["category"])
	variants := product["variants"].([]interface{})
	require.Len(t, variants, 1)
	variantID := id(variants[0].(map[string]interface{})["id"])
	productPath := fmt.Sprintf("/api/products/%d", id(product["id"]))

	code, public := a.do(http.MethodGet, productPath+"?include_variants=false", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, public, "variants")

	// Cart
	code, cart := a.do(http.MethodPost, "/api/user/cart", shopper, gin.H{"variant_id": variantID, "quantity": 1})
	require.Equal(t, http.StatusCreated, code, cart)
	code, cart = a.do(http.MethodPost, "/api/user/cart", shopper, gin.H{"variant_id": variantID})
	require.Equal(t, http.StatusCreated, code, cart)
	items := cart["items"].([]interface{})
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.EqualValues(t, 2, line["quantity"])
	assert.Equal(t, "Blue", line["color"])

	// Checkout
	code, order := a.do(http.MethodPost, "/api/checkout", shopper, gin.H{
		"shipping_address": "1 Main St", "city": "Springfield", "zip_code": "12345",
	})
	require.Equal(t, http.StatusCreated, code, order)
	assert.Equal(t, "Pending", order["status"])
	assert.EqualValues(t, 40, order["total_amount"])
	orderItems := order["items"].([]interface{})
	require.Len(t, orderItems, 1)
	assert.Equal(t, "Tee", orderItems[0].(map[string]interface{})["product_name"])

	code, cart = a.do(http.MethodGet, "/api/user/cart", shopper, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, cart["items"])

	code, _ = a.do(http.MethodPost, "/api/checkout", shopper, gin.H{"shipping_address": "1 Main St", "city": "Springfield"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, public = a.do(http.MethodGet, productPath, "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, public["variants"].([]interface{})[0].(map[string]interface{})["stock"])

	// Orders
	assert.Len(t, a.list("/api/user/orders", shopper), 1)
	assert.Len(t, a.list("/api/admin/orders", adminToken), 1)

	orderPath := fmt.Sprintf("/api/admin/orders/%d", id(order["id"]))
	code, updated := a.do(http.MethodPut, orderPath+"/status", adminToken, gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, code, updated)
	assert.Equal(t, "Shipped", updated["status"])

	code, _ = a.do(http.MethodPut, orderPath+"/status", adminToken, gin.H{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, code)

	// Ordered variants cannot be removed while the order exists.
	code, _ = a.do(http.MethodDelete, fmt.Sprintf("/api/admin/variants/%d", variantID), adminToken, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = a.do(http.MethodDelete, orderPath, adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, a.list("/api/user/orders", shopper))
}

func TestCartItemsOfOtherUsersAreHidden(t *testing.T) {
	a := newAPI(t)
	adminToken := a.admin("admin@example.com")
	owner := a.register("owner@example.com")
	other := a.register("other@example.com")

	code, product := a.do(http.MethodPost, "/api/admin/products", adminToken, gin.H{
		"name":       "Cap",
		"base_price": 10,
		"variants":   []gin.H{{"size": "One", "color": "Red", "stock": 2}},
	})
	require.Equal(t, http.StatusCreated, code, product)
	variantID := id(product["variants"].([]interface{})[0].(map[string]interface{})["id"])

	code, cart := a.do(http.MethodPost, "/api/user/cart", owner, gin.H{"variant_id": variantID})
	require.Equal(t, http.StatusCreated, code, cart)
	itemID := id(cart["items"].([]interface{})[0].(map[string]interface{})["id"])

	code, _ = a.do(http.MethodPut, fmt.Sprintf("/api/user/cart/%d", itemID), other, gin.H{"quantity": 3})
	assert.Equal(t, http.StatusNotFound, code)

	code, cart = a.do(http.MethodPut, fmt.Sprintf("/api/user/cart/%d", itemID), owner, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, code, cart)
	assert.EqualValues(t, 3, cart["items"].([]interface{})[0].(map[string]interface{})["quantity"])

	// More than the two in stock.
	code, _ = a.do(http.MethodPost, "/api/checkout", owner, gin.H{"shipping_address": "2 Side St", "city": "Shelbyville"})
	assert.Equal(t, http.StatusConflict, code)
}
