package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos"
	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
)

type SupplierHandler struct {
	suppliers repos.SupplierRepo
}

func NewSupplierHandler(suppliers repos.SupplierRepo) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// GET /api/suppliers
// ?active=1 narrows each supplier's catalog to products still sold.
func (h *SupplierHandler) List(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	var (
		rows []*domain.Supplier
		err  error
	)
	if c.Query("active") == "1" {
		rows, err = h.suppliers.GetSuppliersWithActiveProducts(dbc)
	} else {
		rows, err = h.suppliers.GetSuppliersWithProducts(dbc)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": rows})
}

// GET /api/suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	supplier, err := h.suppliers.GetSupplierWithProducts(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if supplier == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// POST /api/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var supplier domain.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	created, err := h.suppliers.Add(dbctx.Context{Ctx: c.Request.Context()}, &supplier)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"supplier": created})
}

// PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var supplier domain.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	supplier.ID = id
	if err := h.suppliers.Update(dbctx.Context{Ctx: c.Request.Context()}, &supplier); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.suppliers.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
