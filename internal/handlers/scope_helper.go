package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
)

// selfEmail returns the ?email= query value when it matches the token's
// email. On mismatch the request is aborted with 403 and ok is false.
func selfEmail(c *gin.Context) (string, bool) {
	email := c.Query("email")
	if email == "" || email != middleware.Email(c) {
		httperr.ForbiddenOwner(c)
		return "", false
	}
	return email, true
}

// roleError turns a use case error into the role-check response.
func roleError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "forbidden") {
		httperr.Forbidden(c)
		return
	}
	httperr.Internal(c, "role_change_failed", "Could not change role.")
}
