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

// FeeHandler handles the fee schedule and the payment ledger.
type FeeHandler struct {
	feeService *service.FeeService
}

// NewFeeHandler creates a new FeeHandler.
func NewFeeHandler(feeService *service.FeeService) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

// ApplyPayment godoc
// POST /api/v1/admin/fees/payments
// Folds a payment into the student's term ledger. Repeated payments
// accumulate; the running total caps at the resolved full amount.
func (h *FeeHandler) ApplyPayment(c *gin.Context) {
	var req model.ApplyFeePaymentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	ledger, err := h.feeService.ApplyPayment(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": ledger})
}

// GetLedger godoc
// GET /api/v1/students/:id/fees?academic_year_id=&term=
// Returns the student's ledger row for a year/term.
func (h *FeeHandler) GetLedger(c *gin.Context) {
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

	ledger, err := h.feeService.GetLedger(c.Request.Context(), callerScope(c), id, yearID, term)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": ledger})
}

// ListPayments godoc
// GET /api/v1/fees/payments?academic_year_id=&term=
// Lists the ledger rows visible to the caller. Staff see none.
func (h *FeeHandler) ListPayments(c *gin.Context) {
	var term *model.Term
	if raw := c.Query("term"); raw != "" {
		t := model.Term(raw)
		term = &t
	}

	payments, err := h.feeService.ListPayments(c.Request.Context(), callerScope(c), queryYearID(c), term)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

// CreateStructure godoc
// POST /api/v1/admin/fees/structures
func (h *FeeHandler) CreateStructure(c *gin.Context) {
	var req model.CreateFeeStructureRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	fs, err := h.feeService.CreateStructure(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"fee_structure": fs})
}

// ListStructures godoc
// GET /api/v1/fees/structures?academic_year_id=
func (h *FeeHandler) ListStructures(c *gin.Context) {
	structures, err := h.feeService.ListStructures(c.Request.Context(), queryYearID(c))
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"fee_structures": structures})
}

// DeleteStructure godoc
// DELETE /api/v1/admin/fees/structures/:id
func (h *FeeHandler) DeleteStructure(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.feeService.DeleteStructure(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "fee structure deleted successfully"})
}
