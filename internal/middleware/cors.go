package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware reflects the request origin, with credentials, when it is on
// the allow list. An empty allow list answers every origin with "*" and no
// credentials.
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		h := c.Writer.Header()
		switch {
		case len(set) == 0:
			h.Set("Access-Control-Allow-Origin", "*")
			setAllowHeaders(h)
		case origin != "" && originAllowed(set, origin):
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			setAllowHeaders(h)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func setAllowHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key, X-Request-ID")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
}

func originAllowed(set map[string]struct{}, origin string) bool {
	_, ok := set[origin]
	return ok
}
