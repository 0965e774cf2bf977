package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderXSessionID = "X-Session-ID"
	ContextSessionID = "session_id"
)

// Session resolves the caller's session. A client that presents no
// session header gets a fresh ID minted and echoed back, so the next
// request from the same page lands in the same session slot.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(HeaderXSessionID)
		if sid == "" {
			sid = uuid.New().String()
		}

		c.Set(ContextSessionID, sid)
		c.Header(HeaderXSessionID, sid)
		c.Next()
	}
}

// SessionID returns the session ID resolved by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
