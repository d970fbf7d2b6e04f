package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

// ChatGetMessages returns a room's message history, oldest first
func ChatGetMessages(
	messagesService *services.MessagesService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		messages, err := messagesService.ListMessages(c.Param("chatRoomId"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, messages)

	}
}
