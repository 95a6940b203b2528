package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos"
	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
)

type OrderHandler struct {
	orders repos.OrderRepo
}

func NewOrderHandler(orders repos.OrderRepo) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GET /api/orders
// ?status=pending|shipped|recent, ?days= bounds the recent window,
// ?customer= / ?employee= filter by reference.
func (h *OrderHandler) List(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	var (
		rows []*domain.Order
		err  error
	)
	switch {
	case c.Query("customer") != "":
		var customerID int
		if customerID, err = strconv.Atoi(c.Query("customer")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_customer"})
			return
		}
		rows, err = h.orders.GetOrdersByCustomer(dbc, customerID)
	case c.Query("employee") != "":
		var employeeID int
		if employeeID, err = strconv.Atoi(c.Query("employee")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_employee"})
			return
		}
		rows, err = h.orders.GetOrdersByEmployee(dbc, employeeID)
	case c.Query("status") == "pending":
		rows, err = h.orders.GetPendingOrders(dbc)
	case c.Query("status") == "shipped":
		rows, err = h.orders.GetShippedOrders(dbc)
	case c.Query("status") == "recent":
		days, _ := strconv.Atoi(c.Query("days"))
		rows, err = h.orders.GetRecentOrders(dbc, days)
	default:
		rows, err = h.orders.GetOrdersWithDetails(dbc)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": rows})
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.orders.GetOrderWithDetails(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "total": order.Total()})
}

// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	created, err := h.orders.Add(dbctx.Context{Ctx: c.Request.Context()}, &order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": created})
}

// POST /api/orders/:id/details
func (h *OrderHandler) AddDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var line domain.OrderDetail
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	line.OrderID = id
	created, err := h.orders.AddOrderDetail(dbctx.Context{Ctx: c.Request.Context()}, &line)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order_detail": created})
}

// DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.orders.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
