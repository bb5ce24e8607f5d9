package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

const (
	MsgUnauthorized    = "UnAuthorized access"
	MsgForbidden       = "Forbidden access"
	MsgForbiddenAccess = "forbidden access"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

func Unauthorized(c *gin.Context) {
	Write(c, http.StatusUnauthorized, "unauthorized", MsgUnauthorized)
}

// Forbidden is the bad-token / failed-role response.
func Forbidden(c *gin.Context) {
	Write(c, http.StatusForbidden, "forbidden", MsgForbidden)
}

// ForbiddenOwner is the response for a self-scoped read whose email does not
// match the token.
func ForbiddenOwner(c *gin.Context) {
	Write(c, http.StatusForbidden, "forbidden", MsgForbiddenAccess)
}

// Store maps repository errors; anything unknown becomes a 500 with code.
func Store(c *gin.Context, err error, code, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "not_found", "Document not found.")
	case errors.Is(err, store.ErrInvalidID):
		BadRequest(c, "invalid_id", "Invalid id.")
	default:
		Internal(c, code, message)
	}
}
