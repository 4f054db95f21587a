package response

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope every API reply uses. Data and Error are
// mutually exclusive; Metadata is always present.
type Response struct {
	Data       interface{} `json:"data"`
	Error      *ErrorBody  `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Metadata   Metadata    `json:"metadata"`
}

// ErrorBody carries a machine-readable code plus an optional map of
// per-field validation messages.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Pagination describes list slicing for paginated endpoints.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Metadata carries the request ID and server timestamp for tracing.
type Metadata struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Success writes a data envelope with the given status.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Data:     data,
		Metadata: metadataFor(c),
	})
}

// SuccessWithPagination writes a data envelope with pagination info.
func SuccessWithPagination(c *gin.Context, statusCode int, data interface{}, pagination *Pagination) {
	c.JSON(statusCode, Response{
		Data:       data,
		Pagination: pagination,
		Metadata:   metadataFor(c),
	})
}

// Fail writes an error envelope for the given code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, errorEnvelope(c, code, nil))
}

// FailWithFields writes an error envelope carrying per-field messages.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, errorEnvelope(c, code, fields))
}

// AbortFail writes an error envelope and stops the middleware chain.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, errorEnvelope(c, code, nil))
}

func errorEnvelope(c *gin.Context, code ErrCode, fields map[string]string) Response {
	return Response{
		Error:    &ErrorBody{Code: code, Message: GetMessage(code), Fields: fields},
		Metadata: metadataFor(c),
	}
}

func metadataFor(c *gin.Context) Metadata {
	id := c.GetString(ContextKeyRequestID)
	if id == "" {
		// Middleware was not applied; still give the client something
		// to quote in bug reports.
		id = uuid.New().String()
	}
	return Metadata{
		RequestID: id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
