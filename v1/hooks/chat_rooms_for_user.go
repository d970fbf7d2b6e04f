package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

// ChatRoomsForUser returns every room the user participates in, on either side of the
// conversation
func ChatRoomsForUser(
	roomsService *services.RoomsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		rooms, err := roomsService.ListRoomsForUser(c.Param("userId"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, rooms)

	}
}
