package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookie = "session_id"

// SessionMiddleware makes sure every visitor carries a session id cookie and
// exposes it on the context. Carts and placed orders are keyed by this id.
func SessionMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set("sessionId", sid)
		c.Next()
	}
}
