package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
	"github.com/scholaris/scholaris-backend/internal/validator"
)

// StaffHandler handles staff registration and subject assignment.
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Register godoc
// POST /api/v1/admin/staff
func (h *StaffHandler) Register(c *gin.Context) {
	var req model.CreateStaffRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	member, err := h.staffService.Register(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"staff": member})
}

// List godoc
// GET /api/v1/staff
func (h *StaffHandler) List(c *gin.Context) {
	members, err := h.staffService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": members})
}

// Get godoc
// GET /api/v1/staff/:id
func (h *StaffHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	member, err := h.staffService.Get(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": member})
}

// AssignSubjects godoc
// PUT /api/v1/admin/staff/:id/subjects
// Replaces the full set of subjects the staff member teaches.
func (h *StaffHandler) AssignSubjects(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.AssignSubjectsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.staffService.AssignSubjects(c.Request.Context(), id, req.SubjectIDs); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "subject assignments updated"})
}

// Delete godoc
// DELETE /api/v1/admin/staff/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.staffService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "staff deleted successfully"})
}
