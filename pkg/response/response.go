package response

import (
	"errors"
	"net/http"

	"coin-launch-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID on every response.
const RequestIDHeader = "X-Request-ID"

// ErrorResponse is the error body. Message is only set for errors that
// surface a downstream failure, in which case Error holds that failure's text.
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// OK sends a 200 response with data as the body.
func OK(c *gin.Context, data interface{}) {
	c.Header(RequestIDHeader, getRequestID(c))
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	c.Header(RequestIDHeader, getRequestID(c))

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		body := ErrorResponse{Error: appErr.Message, Code: appErr.Code}
		if appErr.Expose {
			body.Message = appErr.Message
			body.Error = appErr.Detail()
		}
		c.JSON(status, body)
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Internal Server Error",
		Code:  "SYS_001",
	})
}

// AbortWithError writes the error response and stops the middleware chain.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
