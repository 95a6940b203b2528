package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos"
	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
)

type ShipperHandler struct {
	shippers repos.ShipperRepo
}

func NewShipperHandler(shippers repos.ShipperRepo) *ShipperHandler {
	return &ShipperHandler{shippers: shippers}
}

// GET /api/shippers
// ?active=1 keeps only carriers with at least one order.
func (h *ShipperHandler) List(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	var (
		rows []*domain.Shipper
		err  error
	)
	if c.Query("active") == "1" {
		rows, err = h.shippers.GetActiveShippers(dbc)
	} else {
		rows, err = h.shippers.GetShippersWithOrders(dbc)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shippers": rows})
}

// GET /api/shippers/:id
func (h *ShipperHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	shipper, err := h.shippers.GetShipperWithOrders(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if shipper == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shipper": shipper})
}

// POST /api/shippers
func (h *ShipperHandler) Create(c *gin.Context) {
	var shipper domain.Shipper
	if err := c.ShouldBindJSON(&shipper); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	created, err := h.shippers.Add(dbctx.Context{Ctx: c.Request.Context()}, &shipper)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shipper": created})
}

// PUT /api/shippers/:id
func (h *ShipperHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var shipper domain.Shipper
	if err := c.ShouldBindJSON(&shipper); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	shipper.ID = id
	if err := h.shippers.Update(dbctx.Context{Ctx: c.Request.Context()}, &shipper); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shipper": shipper})
}

// DELETE /api/shippers/:id
func (h *ShipperHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.shippers.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
