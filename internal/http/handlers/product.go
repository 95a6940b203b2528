package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos"
	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
)

type ProductHandler struct {
	products repos.ProductRepo
}

func NewProductHandler(products repos.ProductRepo) *ProductHandler {
	return &ProductHandler{products: products}
}

// GET /api/products
// ?category=, ?lowstock=1, ?discontinued=1
func (h *ProductHandler) List(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	var (
		rows []*domain.Product
		err  error
	)
	switch {
	case c.Query("category") != "":
		var categoryID int
		if categoryID, err = strconv.Atoi(c.Query("category")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
			return
		}
		rows, err = h.products.GetProductsByCategory(dbc, categoryID)
	case c.Query("lowstock") == "1":
		rows, err = h.products.GetLowStockProducts(dbc)
	case c.Query("discontinued") == "1":
		rows, err = h.products.GetDiscontinuedProducts(dbc)
	default:
		rows, err = h.products.GetProductsWithDetails(dbc)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": rows})
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.products.GetProductWithOrderHistory(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product":     product,
		"low_stock":   product.IsLowStock(),
		"total_value": product.TotalValue(),
	})
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	created, err := h.products.Add(dbctx.Context{Ctx: c.Request.Context()}, &product)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": created})
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	product.ID = id
	if err := h.products.Update(dbctx.Context{Ctx: c.Request.Context()}, &product); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.products.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
