package utils

import (
	"log"
	"net/http"
	"time"

	"healthcare-coordination-server/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// Envelope is the JSON shape shared by every response
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

// CreatedResponse sends a success response for a newly created resource
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	})
}

// ListResponse sends a success response carrying a collection and its count
func ListResponse(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Envelope{
		Success:   true,
		Data:      data,
		Count:     &count,
		Timestamp: now(),
	})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{
		Success:   true,
		Message:   message,
		Timestamp: now(),
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Success:   false,
		Message:   message,
		Timestamp: now(),
	})
}

// HandleError maps an application error onto the envelope and HTTP status
func HandleError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("Unhandled fault on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "internal server error"
	}
	ErrorResponse(c, status, message)
}
