package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"github.com/interpark/realty-api/v1/utils"
)

// CheckAuth resolves the account for the request's bearer token, if any, and stores it
// on the context. It never rejects a request: routes that need an account use
// RequireLogin on top of this.
func CheckAuth(authTokensService *services.AuthTokensService) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Pull the bearer token off the request, if there is one
		token := strings.TrimSpace(
			strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer"),
		)
		if token == "" {
			c.Next()
			return
		}

		// Resolve the account for the token. An invalid token just means no account.
		user, err := authTokensService.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if user != nil {
			utils.CtxSetAccount(c, user)
		}
		c.Next()

	}
}

// RequireLogin rejects requests that did not resolve to an account
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CtxGetAccount(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}
