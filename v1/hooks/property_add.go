package hooks

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

type PropertyAddReq struct {
	Title           string      `json:"title"`
	Location        string      `json:"location"`
	Type            string      `json:"type"`
	Price           string      `json:"price"`
	Description     string      `json:"description"`
	NearbyPlaces    interface{} `json:"nearbyPlaces"`
	Purpose         string      `json:"purpose"`
	AgentLandlordID string      `json:"agentLandlordId"`
	Images          []string    `json:"images"`
}

// PropertyAdd publishes a new listing. NearbyPlaces may arrive either as a JSON array
// or as one comma-separated string.
func PropertyAdd(
	propertiesService *services.PropertiesService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req PropertyAddReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required, including images and purpose"})
			return
		}

		// Store the listing
		property, err := propertiesService.Add(&services.PropertyInfo{
			Title:           req.Title,
			Location:        req.Location,
			Type:            req.Type,
			Price:           req.Price,
			Description:     req.Description,
			NearbyPlaces:    parseNearbyPlaces(req.NearbyPlaces),
			Purpose:         req.Purpose,
			AgentLandlordID: req.AgentLandlordID,
			Images:          req.Images,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "property added successfully",
			"property": property,
		})

	}
}

// parseNearbyPlaces normalizes the nearbyPlaces field into a string slice
func parseNearbyPlaces(value interface{}) []string {
	switch v := value.(type) {
	case string:
		parts := strings.Split(v, ",")
		places := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				places = append(places, trimmed)
			}
		}
		return places
	case []interface{}:
		places := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				places = append(places, s)
			}
		}
		return places
	}
	return nil
}
