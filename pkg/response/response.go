package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// MessageSuccess is the message attached to every successful response.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal detail from 500 responses.
	DefaultErrorMessage = "internal server error"

	// InternalServerErrorCode is the generic error code for 500 responses.
	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends a 400 response carrying the error text and optional detail map.
func Error(c *gin.Context, err error, details map[string]interface{}) {
	resp := Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	}
	if len(details) > 0 {
		resp.Errors = details
	}
	c.JSON(http.StatusBadRequest, resp)
}

// InternalError sends 500 with the generic message, never the raw error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 when the client exceeded its rate limit.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "too many requests",
	})
}
