package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/middleware"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
	"github.com/scholaris/scholaris-backend/internal/validator"
)

// ResultHandler handles result recording, listing and class rankings.
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// Record godoc
// POST /api/v1/results
// Records or overwrites a result for a student/subject/year/term.
// Derived fields are computed server-side; clients never send them.
func (h *ResultHandler) Record(c *gin.Context) {
	var req model.RecordResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var uploadedBy *int
	if claims := middleware.GetClaims(c); claims != nil && claims.Role == model.RoleStaff {
		id := claims.ProfileID
		uploadedBy = &id
	}

	result, err := h.resultService.Record(c.Request.Context(), req, uploadedBy)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"result": result})
}

// List godoc
// GET /api/v1/results?academic_year_id=&term=
// Lists the results visible to the caller for a year/term.
func (h *ResultHandler) List(c *gin.Context) {
	yearID, err := strconv.Atoi(c.Query("academic_year_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	term := model.Term(c.Query("term"))

	results, err := h.resultService.ListVisible(c.Request.Context(), callerScope(c), yearID, term)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// ListForStudent godoc
// GET /api/v1/students/:id/results?academic_year_id=&term=
// Lists one student's results when the caller may see that student.
func (h *ResultHandler) ListForStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var term *model.Term
	if raw := c.Query("term"); raw != "" {
		t := model.Term(raw)
		term = &t
	}

	results, err := h.resultService.ListStudentResults(c.Request.Context(), callerScope(c), id, queryYearID(c), term)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// ClassRankings godoc
// GET /api/v1/classes/:id/rankings?academic_year_id=&term=
// Returns the class standings ordered by average percentage with
// ranking-with-gaps positions.
func (h *ResultHandler) ClassRankings(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	yearID, err := strconv.Atoi(c.Query("academic_year_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	term := model.Term(c.Query("term"))

	rankings, err := h.resultService.GetClassRankings(c.Request.Context(), id, yearID, term)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rankings": rankings})
}

// Delete godoc
// DELETE /api/v1/admin/results/:id
func (h *ResultHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.resultService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "result deleted successfully"})
}
