package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/middleware"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
	"github.com/scholaris/scholaris-backend/internal/validator"
)

// AttendanceHandler handles attendance marking and history.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Mark godoc
// POST /api/v1/attendance
// Marks a student's attendance; re-marking the same day replaces it.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req model.MarkAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var markedBy *int
	if claims := middleware.GetClaims(c); claims != nil && claims.Role == model.RoleStaff {
		id := claims.ProfileID
		markedBy = &id
	}

	record, err := h.attendanceService.Mark(c.Request.Context(), req, markedBy)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"attendance": record})
}

// ClassSheet godoc
// GET /api/v1/classes/:id/attendance?date=
// Returns a class's attendance for one day (defaults to today).
func (h *AttendanceHandler) ClassSheet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	date := time.Now().Truncate(24 * time.Hour)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		date = parsed
	}

	records, err := h.attendanceService.ClassSheet(c.Request.Context(), id, date)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attendance": records})
}

// StudentHistory godoc
// GET /api/v1/students/:id/attendance?from=&to=
// Returns a student's attendance in a date range (default last 30 days)
// when the caller may see that student.
func (h *AttendanceHandler) StudentHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		to = parsed
	}

	records, err := h.attendanceService.StudentHistory(c.Request.Context(), callerScope(c), id, from, to)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attendance": records})
}
