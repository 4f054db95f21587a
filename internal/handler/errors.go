package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/scholaris/scholaris-backend/internal/grading"
	"github.com/scholaris/scholaris-backend/internal/repository"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
)

// failFromError maps service and repository errors onto the response
// taxonomy. Handlers call this on any error they don't special-case.
func failFromError(c *gin.Context, err error) {
	var scoreErr *grading.ScoreError
	if errors.As(err, &scoreErr) {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{scoreErr.Field: scoreErr.Error()})
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, pgx.ErrNoRows),
		errors.Is(err, repository.ErrResultReferenceMissing),
		errors.Is(err, repository.ErrAttendanceReferenceMissing):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrUnknownTerm):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidTerm)
	case errors.Is(err, service.ErrNegativeAmount):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidAmount)
	case errors.Is(err, repository.ErrDuplicateUsername),
		errors.Is(err, repository.ErrDuplicateStudentID),
		errors.Is(err, repository.ErrDuplicateStaffID),
		errors.Is(err, repository.ErrDuplicateParentID),
		errors.Is(err, repository.ErrDuplicateSubjectCode),
		errors.Is(err, repository.ErrDuplicateFeeStructure):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			case "23503":
				response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
				return
			}
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// pathID parses the :id route parameter, failing the request on bad
// input. The bool reports whether the handler may proceed.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}
