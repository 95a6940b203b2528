package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos"
	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
)

type EmployeeHandler struct {
	employees repos.EmployeeRepo
}

func NewEmployeeHandler(employees repos.EmployeeRepo) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	rows, err := h.employees.GetEmployeesWithOrders(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": rows})
}

// GET /api/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	emp, err := h.employees.GetByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if emp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": emp})
}

// GET /api/employees/:id/subordinates
func (h *EmployeeHandler) Subordinates(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.employees.GetEmployeesByManager(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": rows})
}

// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var emp domain.Employee
	if err := c.ShouldBindJSON(&emp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	created, err := h.employees.Add(dbctx.Context{Ctx: c.Request.Context()}, &emp)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"employee": created})
}

// PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var emp domain.Employee
	if err := c.ShouldBindJSON(&emp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	emp.ID = id
	if err := h.employees.Update(dbctx.Context{Ctx: c.Request.Context()}, &emp); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": emp})
}

// DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.employees.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
