package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthLogout ends the session. Tokens are stateless, so the client just discards its
// copy; this endpoint exists so clients have a uniform logout call.
func AuthLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
	}
}
