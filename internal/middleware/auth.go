package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/token"
)

const (
	ContextEmail  = "decodedEmail"
	ContextClaims = "decodedClaims"
)

// Verifier is satisfied by *token.Service.
type Verifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// AuthMiddleware rejects requests without a bearer token (401) or with one
// that does not verify (403). The decoded claim is stored on the context.
func AuthMiddleware(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := token.FromHeader(c.GetHeader("Authorization"))
		if errors.Is(err, token.ErrMissing) {
			httperr.Unauthorized(c)
			return
		}

		claims, err := v.Verify(raw)
		if err != nil {
			httperr.Forbidden(c)
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextEmail, claims.Email)

		c.Next()
	}
}

// Email returns the verified email for the request, or "" on public routes.
func Email(c *gin.Context) string {
	return c.GetString(ContextEmail)
}
