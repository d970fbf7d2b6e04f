package hooks

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

type AuthLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthLogin checks credentials and returns a signed token plus a snapshot of the
// account. The username field also accepts the account's email address.
func AuthLogin(
	accountsService *services.AccountsService,
	authTokensService *services.AuthTokensService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AuthLoginReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}

		// Find the account with the provided credentials
		user, err := accountsService.FindByLogin(req.Username, req.Password)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		// Create a token for the session
		token, err := authTokensService.CreateToken(
			user,
			time.Now(),
			time.Now().Add(time.Hour),
		)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "login successful",
			"token":   token,
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"avatar":   user.Avatar,
				"role":     user.Role,
			},
		})

	}
}
