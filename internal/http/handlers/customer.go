package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos"
	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
)

type CustomerHandler struct {
	customers repos.CustomerRepo
}

func NewCustomerHandler(customers repos.CustomerRepo) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// GET /api/customers
// ?country= filters; ?active=1 keeps only customers with order history.
func (h *CustomerHandler) List(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	var (
		rows []*domain.Customer
		err  error
	)
	switch {
	case c.Query("country") != "":
		rows, err = h.customers.GetCustomersByCountry(dbc, c.Query("country"))
	case c.Query("active") == "1":
		rows, err = h.customers.GetCustomersWithOrders(dbc)
	default:
		rows, err = h.customers.GetAll(dbc)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": rows})
}

// GET /api/customers/countries
func (h *CustomerHandler) Countries(c *gin.Context) {
	countries, err := h.customers.GetDistinctCountries(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// GET /api/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cust, err := h.customers.GetCustomerWithOrders(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if cust == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": cust})
}

// POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var cust domain.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	created, err := h.customers.Add(dbctx.Context{Ctx: c.Request.Context()}, &cust)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customer": created})
}

// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var cust domain.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	cust.ID = id
	if err := h.customers.Update(dbctx.Context{Ctx: c.Request.Context()}, &cust); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": cust})
}

// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.customers.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
