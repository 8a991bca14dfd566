package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
//
//	{"success": bool, "data": ..., "message": "..."}
//
// plus endpoint-specific top-level fields (count, pagination, isFavorited, ...)
// added through With.

// OK writes a success envelope with data and a message.
func OK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// With writes a success envelope merged with extra top-level fields.
func With(c *gin.Context, status int, extra gin.H) {
	payload := gin.H{"success": true}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(status, payload)
}

// Fail writes a failure envelope with a human-readable message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// Common failures

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// InternalServerError deliberately carries a generic message; storage detail
// stays in the logs.
func InternalServerError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}

// ValidationFailed mirrors the 422 + field-errors shape used on create/update.
func ValidationFailed(c *gin.Context, errs error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  errs.Error(),
	})
}
