package hooks

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"github.com/interpark/realty-api/v1/utils"
	"go.uber.org/zap"
)

// AuthWhoAmI returns the authenticated account along with a fresh token
func AuthWhoAmI(
	authTokensService *services.AuthTokensService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the account from the request
		user := utils.CtxGetAccount(c)

		// Refresh the token while we're at it
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
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
			"token":    token,
		})

	}
}
