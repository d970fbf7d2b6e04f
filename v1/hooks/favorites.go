package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

type FavoriteReq struct {
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId"`
}

// FavoritesAdd saves a property to the user's favorites
func FavoritesAdd(
	favoritesService *services.FavoritesService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req FavoriteReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and propertyId are required"})
			return
		}

		favorite, err := favoritesService.Add(req.UserID, req.PropertyID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, favorite)

	}
}

// FavoritesRemove removes a property from the user's favorites
func FavoritesRemove(
	favoritesService *services.FavoritesService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req FavoriteReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and propertyId are required"})
			return
		}

		if err := favoritesService.Remove(req.UserID, req.PropertyID); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "favorite removed successfully"})

	}
}

// FavoritesList returns the user's favorites with full property details
func FavoritesList(
	favoritesService *services.FavoritesService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		favorites, err := favoritesService.ListForUser(c.Param("userId"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"favorites": favorites})

	}
}
