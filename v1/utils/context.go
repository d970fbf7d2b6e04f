package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/models"
)

// ctxKeyAccount is the gin context key holding the authenticated user
const ctxKeyAccount = "auth_account"

// CtxSetAccount stores the authenticated user on the request context
func CtxSetAccount(c *gin.Context, user *models.User) {
	c.Set(ctxKeyAccount, user)
}

// CtxGetAccount gets the authenticated user from the request context, or nil if the
// request carried no valid token
func CtxGetAccount(c *gin.Context) *models.User {
	value, ok := c.Get(ctxKeyAccount)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
