package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

// PropertyList returns every listing on the platform
func PropertyList(
	propertiesService *services.PropertiesService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		properties, err := propertiesService.List()
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"properties": properties})
	}
}

// PropertyListByAgent returns every listing published by an agent/landlord
func PropertyListByAgent(
	propertiesService *services.PropertiesService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		properties, err := propertiesService.ListByAgent(c.Param("agentLandlordId"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if len(properties) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "no properties found for this agent"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"properties": properties})
	}
}
