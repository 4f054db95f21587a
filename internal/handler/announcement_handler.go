package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/middleware"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
	"github.com/scholaris/scholaris-backend/internal/validator"
)

// AnnouncementHandler handles announcement publishing and reading.
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// Publish godoc
// POST /api/v1/admin/announcements
func (h *AnnouncementHandler) Publish(c *gin.Context) {
	var req model.CreateAnnouncementRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	announcement, err := h.announcementService.Publish(c.Request.Context(), req, claims.UserID)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"announcement": announcement})
}

// List godoc
// GET /api/v1/announcements
// Lists the active announcements targeting the caller's role.
func (h *AnnouncementHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	announcements, err := h.announcementService.ListForRole(c.Request.Context(), claims.Role)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcements": announcements})
}

// Get godoc
// GET /api/v1/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	announcement, err := h.announcementService.Get(c.Request.Context(), claims.Role, id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcement": announcement})
}

// Deactivate godoc
// PUT /api/v1/admin/announcements/:id/deactivate
func (h *AnnouncementHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.announcementService.Deactivate(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "announcement deactivated"})
}

// Delete godoc
// DELETE /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "announcement deleted successfully"})
}
