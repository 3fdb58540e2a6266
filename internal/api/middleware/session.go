package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/forms-go/internal/config"
)

const sessionKey = "session_id"

const sessionMaxAge = 2 * 60 * 60

// Session gives every public visitor a session id cookie. Anti-spam tokens
// are scoped to it.
func Session(cookie string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookie, id, sessionMaxAge, "/", "", config.IsProduction, true)
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID returns the id set by Session, or "".
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
