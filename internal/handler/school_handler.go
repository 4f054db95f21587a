package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
	"github.com/scholaris/scholaris-backend/internal/validator"
)

// SchoolHandler handles the reference data endpoints: academic years,
// classes and subjects.
type SchoolHandler struct {
	schoolService *service.SchoolService
}

// NewSchoolHandler creates a new SchoolHandler.
func NewSchoolHandler(schoolService *service.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolService: schoolService}
}

// queryYearID parses the optional ?academic_year_id= filter.
func queryYearID(c *gin.Context) *int {
	raw := c.Query("academic_year_id")
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &id
}

// ─── Academic years ───

// CreateAcademicYear godoc
// POST /api/v1/admin/academic-years
func (h *SchoolHandler) CreateAcademicYear(c *gin.Context) {
	var req model.CreateAcademicYearRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	year, err := h.schoolService.CreateAcademicYear(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"academic_year": year})
}

// ListAcademicYears godoc
// GET /api/v1/academic-years
func (h *SchoolHandler) ListAcademicYears(c *gin.Context) {
	years, err := h.schoolService.ListAcademicYears(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"academic_years": years})
}

// GetActiveAcademicYear godoc
// GET /api/v1/academic-years/active
func (h *SchoolHandler) GetActiveAcademicYear(c *gin.Context) {
	year, err := h.schoolService.GetActiveAcademicYear(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"academic_year": year})
}

// ─── Classes ───

// CreateClass godoc
// POST /api/v1/admin/classes
func (h *SchoolHandler) CreateClass(c *gin.Context) {
	var req model.CreateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class, err := h.schoolService.CreateClass(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

// ListClasses godoc
// GET /api/v1/classes
func (h *SchoolHandler) ListClasses(c *gin.Context) {
	classes, err := h.schoolService.ListClasses(c.Request.Context(), queryYearID(c))
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// GetClass godoc
// GET /api/v1/classes/:id
func (h *SchoolHandler) GetClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	class, err := h.schoolService.GetClass(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class": class})
}

// UpdateClass godoc
// PUT /api/v1/admin/classes/:id
func (h *SchoolHandler) UpdateClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.CreateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class := &model.Class{
		ID:             id,
		Name:           req.Name,
		Grade:          req.Grade,
		Section:        req.Section,
		AcademicYearID: req.AcademicYearID,
		ClassTeacherID: req.ClassTeacherID,
	}
	if err := h.schoolService.UpdateClass(c.Request.Context(), class); err != nil {
		failFromError(c, err)
		return
	}

	updated, _ := h.schoolService.GetClass(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"class": updated})
}

// DeleteClass godoc
// DELETE /api/v1/admin/classes/:id
func (h *SchoolHandler) DeleteClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.schoolService.DeleteClass(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "class deleted successfully"})
}

// ─── Subjects ───

// CreateSubject godoc
// POST /api/v1/admin/subjects
func (h *SchoolHandler) CreateSubject(c *gin.Context) {
	var req model.CreateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subject, err := h.schoolService.CreateSubject(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subject": subject})
}

// ListSubjects godoc
// GET /api/v1/subjects
func (h *SchoolHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.schoolService.ListSubjects(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// DeleteSubject godoc
// DELETE /api/v1/admin/subjects/:id
func (h *SchoolHandler) DeleteSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.schoolService.DeleteSubject(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "subject deleted successfully"})
}
