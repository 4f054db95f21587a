package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/middleware"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/scope"
	"github.com/scholaris/scholaris-backend/internal/service"
	"github.com/scholaris/scholaris-backend/internal/validator"
)

// StudentHandler handles student enrollment and listing. Listing is
// scope-filtered: staff see their led classes, parents their children,
// students themselves.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// callerScope resolves the caller's visibility scope from their claims.
func callerScope(c *gin.Context) scope.Scope {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return scope.Scope{}
	}
	return scope.ForPrincipal(claims.Role, claims.ProfileID)
}

// Enroll godoc
// POST /api/v1/admin/students
// Creates the account and the student profile together.
func (h *StudentHandler) Enroll(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Enroll(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// List godoc
// GET /api/v1/students
// Lists the students visible to the caller, optionally by class.
func (h *StudentHandler) List(c *gin.Context) {
	var classID *int
	if raw := c.Query("class_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		classID = &id
	}

	students, err := h.studentService.List(c.Request.Context(), callerScope(c), classID)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// Get godoc
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), callerScope(c), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// AssignClass godoc
// PUT /api/v1/admin/students/:id/class
// Moves the student to a class; a null class removes the assignment.
func (h *StudentHandler) AssignClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.AssignClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.studentService.AssignClass(c.Request.Context(), id, req.ClassID); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "class assignment updated"})
}

// Delete godoc
// DELETE /api/v1/admin/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}
