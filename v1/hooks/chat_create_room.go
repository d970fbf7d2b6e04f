package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

type ChatCreateRoomReq struct {
	PropertyID      string `json:"propertyId"`
	AgentLandlordID string `json:"agentLandlordId"`
	ClientID        string `json:"clientId"`
}

// ChatCreateRoom finds or creates the chat room for a (property, agent, client) triple
func ChatCreateRoom(
	roomsService *services.RoomsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req ChatCreateRoomReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
			return
		}

		// Find or create the room for the triple
		room, err := roomsService.GetOrCreateRoom(
			req.PropertyID,
			req.AgentLandlordID,
			req.ClientID,
		)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, room)

	}
}
