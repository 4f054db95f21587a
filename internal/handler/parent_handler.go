package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
	"github.com/scholaris/scholaris-backend/internal/validator"
)

// ParentHandler handles parent registration and child links.
type ParentHandler struct {
	parentService *service.ParentService
}

// NewParentHandler creates a new ParentHandler.
func NewParentHandler(parentService *service.ParentService) *ParentHandler {
	return &ParentHandler{parentService: parentService}
}

// Register godoc
// POST /api/v1/admin/parents
func (h *ParentHandler) Register(c *gin.Context) {
	var req model.CreateParentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	parent, err := h.parentService.Register(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"parent": parent})
}

// List godoc
// GET /api/v1/admin/parents
func (h *ParentHandler) List(c *gin.Context) {
	parents, err := h.parentService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parents": parents})
}

// Get godoc
// GET /api/v1/admin/parents/:id
func (h *ParentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	parent, err := h.parentService.Get(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parent": parent})
}

// AssignChildren godoc
// PUT /api/v1/admin/parents/:id/children
// Replaces the full set of students linked to the parent.
func (h *ParentHandler) AssignChildren(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.AssignChildrenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.parentService.AssignChildren(c.Request.Context(), id, req.StudentIDs); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "child links updated"})
}

// Delete godoc
// DELETE /api/v1/admin/parents/:id
func (h *ParentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.parentService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "parent deleted successfully"})
}
