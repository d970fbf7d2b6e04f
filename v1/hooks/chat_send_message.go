package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

type ChatSendMessageReq struct {
	ChatRoomID string `json:"chatRoomId"`
	SenderID   string `json:"senderId"`
	Content    string `json:"content"`
}

// ChatSendMessage persists a message over REST. This path only stores: live broadcast
// happens exclusively on the socket gateway, so REST-only clients must poll for history.
func ChatSendMessage(
	messagesService *services.MessagesService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req ChatSendMessageReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatRoomId, senderId and content are required"})
			return
		}

		// Store the message
		message, err := messagesService.AppendMessage(
			req.ChatRoomID,
			req.SenderID,
			req.Content,
		)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, message)

	}
}
