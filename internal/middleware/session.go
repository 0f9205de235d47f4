// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

// SessionID makes sure every request carries a session id. A missing or
// malformed header gets a fresh uuid; the id is echoed back on the response
// so the client can hold onto it. Session state itself is created lazily by
// the session service on first use.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set("session_id", id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}
