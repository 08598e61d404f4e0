package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/4GeeksAcademy/Ecommerce-Project/middleware"
	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-gonic/gin"
)

const (
	EventOrderPlaced  = "order_placed"
	EventOrderUpdated = "order_updated"
)

// -------- Request Structs --------
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	City            string `json:"city" binding:"required"`
	Region          string `json:"region"`
	ZipCode         string `json:"zip_code"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func paramOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}

func serializeOrders(c *gin.Context, s *store.Store, orders ...models.Order) ([]map[string]interface{}, bool) {
	lookup, err := s.IndexForOrders(c.Request.Context(), orders...)
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	out := make([]map[string]interface{}, 0, len(orders))
	for i := range orders {
		data, err := orders[i].Serialize(lookup)
		if err != nil {
			_ = c.Error(err)
			return nil, false
		}
		out = append(out, data)
	}
	return out, true
}

// -------- Handlers --------

// POST /api/checkout
// Turns the caller's cart into an order.
func CheckoutHandler(s *store.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := s.Checkout(c.Request.Context(), userID, store.Shipping{
			Address: req.ShippingAddress,
			City:    req.City,
			Region:  req.Region,
			ZipCode: req.ZipCode,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}

		out, ok := serializeOrders(c, s, *order)
		if !ok {
			return
		}
		hub.Broadcast(EventOrderPlaced, out[0])
		c.JSON(http.StatusCreated, out[0])
	}
}

// GET /api/user/orders
func GetUserOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orders, err := s.ListOrdersByUser(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if out, ok := serializeOrders(c, s, orders...); ok {
			c.JSON(http.StatusOK, out)
		}
	}
}

// GET /api/user/orders/:orderID
// Orders of other users are reported as missing.
func GetUserOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}

		order, err := s.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if order.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if out, ok := serializeOrders(c, s, *order); ok {
			c.JSON(http.StatusOK, out[0])
		}
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.ListOrders(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		if out, ok := serializeOrders(c, s, orders...); ok {
			c.JSON(http.StatusOK, out)
		}
	}
}

// PUT /api/admin/orders/:orderID/status
func UpdateOrderStatusHandler(s *store.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			_ = c.Error(err)
			return
		}

		if err := s.UpdateOrderStatus(c.Request.Context(), orderID, status); err != nil {
			_ = c.Error(err)
			return
		}
		order, err := s.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		out, ok := serializeOrders(c, s, *order)
		if !ok {
			return
		}
		hub.Broadcast(EventOrderUpdated, out[0])
		c.JSON(http.StatusOK, out[0])
	}
}

// DELETE /api/admin/orders/:orderID
func DeleteOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}
		if err := s.DeleteOrder(c.Request.Context(), orderID); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
