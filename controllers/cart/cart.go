package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/4GeeksAcademy/Ecommerce-Project/middleware"
	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

type CartItemInput struct {
	VariantID uint `json:"variant_id" binding:"required"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type CartItemUpdate struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// userCart resolves the authenticated user's cart, creating it on first use.
func userCart(c *gin.Context, s *store.Store) (*models.Cart, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	cart, err := s.EnsureCart(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return cart, true
}

func writeCart(c *gin.Context, s *store.Store, status int, cartID uint) {
	cart, err := s.GetCart(c.Request.Context(), cartID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	lookup, err := s.IndexForCart(c.Request.Context(), cart)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(status, cart.Serialize(lookup))
}

// GET /api/user/cart
func GetUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, s)
		if !ok {
			return
		}
		writeCart(c, s, http.StatusOK, cart.ID)
	}
}

// POST /api/user/cart
func AddCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, ok := userCart(c, s)
		if !ok {
			return
		}

		item := models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			VariantID: input.VariantID,
			Quantity:  input.Quantity,
		}
		if err := s.AddCartItem(c.Request.Context(), &item); err != nil {
			_ = c.Error(err)
			return
		}
		writeCart(c, s, http.StatusCreated, cart.ID)
	}
}

// PUT /api/user/cart/:itemID
func UpdateCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, item, ok := ownedItem(c, s)
		if !ok {
			return
		}
		item.Quantity = input.Quantity
		if err := s.SaveCartItem(c.Request.Context(), item); err != nil {
			_ = c.Error(err)
			return
		}
		writeCart(c, s, http.StatusOK, cart.ID)
	}
}

// DELETE /api/user/cart/:itemID
func DeleteCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, item, ok := ownedItem(c, s)
		if !ok {
			return
		}
		if err := s.DeleteCartItem(c.Request.Context(), item.ID); err != nil {
			_ = c.Error(err)
			return
		}
		writeCart(c, s, http.StatusOK, cart.ID)
	}
}

// DELETE /api/user/cart
func ClearUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, s)
		if !ok {
			return
		}
		if err := s.ClearCart(c.Request.Context(), cart.ID); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// ownedItem loads the cart item named in the path and checks it sits in the
// caller's cart. Items of other carts are reported as missing.
func ownedItem(c *gin.Context, s *store.Store) (*models.Cart, *models.CartItem, bool) {
	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return nil, nil, false
	}

	cart, ok := userCart(c, s)
	if !ok {
		return nil, nil, false
	}
	item, err := s.GetCartItem(c.Request.Context(), uint(itemID))
	if err != nil {
		_ = c.Error(err)
		return nil, nil, false
	}
	if item.CartID != cart.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return nil, nil, false
	}
	return cart, item, true
}
