package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Errors carries the per-field
// reasons of a failed form submission so the frontend can highlight exact
// inputs; Error is the free-form variant for everything else.
type Response struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      interface{}       `json:"data,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Error     interface{}       `json:"error,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// FieldErrors sends a validation failure with one entry per failing field.
func FieldErrors(c *gin.Context, code int, message string, fields map[string]string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Errors:    fields,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
