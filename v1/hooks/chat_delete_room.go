package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

// ChatDeleteRoom deletes a room together with its message history
func ChatDeleteRoom(
	roomsService *services.RoomsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		if err := roomsService.DeleteRoom(c.Param("chatRoomId")); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "chat room deleted successfully"})

	}
}
