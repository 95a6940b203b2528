package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos"
	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
)

type CategoryHandler struct {
	categories repos.CategoryRepo
}

func NewCategoryHandler(categories repos.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// GET /api/categories
// ?active=1 narrows each category's products to the ones still sold.
func (h *CategoryHandler) List(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	var (
		cats []*domain.Category
		err  error
	)
	if c.Query("active") == "1" {
		cats, err = h.categories.GetCategoriesWithActiveProducts(dbc)
	} else {
		cats, err = h.categories.GetCategoriesWithProducts(dbc)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cat, err := h.categories.GetCategoryWithProducts(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

// POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	created, err := h.categories.Add(dbctx.Context{Ctx: c.Request.Context()}, &cat)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": created})
}

// PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	cat.ID = id
	if err := h.categories.Update(dbctx.Context{Ctx: c.Request.Context()}, &cat); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.categories.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
