package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

type RegisterPushTokenReq struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// NotificationsRegisterToken records the push-notification token for a user's device
func NotificationsRegisterToken(
	accountsService *services.AccountsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req RegisterPushTokenReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and token are required"})
			return
		}

		user, err := accountsService.SetPushToken(req.UserID, req.Token)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "push token registered successfully",
			"user":    user,
		})

	}
}
