package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

// AuthUploadAvatar stores a new avatar image for a user and records its URL
func AuthUploadAvatar(
	accountsService *services.AccountsService,
	uploadsService *services.UploadsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the uploaded file
		file, err := c.FormFile("avatar")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
			return
		}

		// Store the image on disk
		avatarURL, err := uploadsService.SaveImage(file, "avatars", c.SaveUploadedFile)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		// Record the new avatar URL on the user
		if err := accountsService.SetAvatar(c.Param("userId"), avatarURL); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "avatar uploaded successfully",
			"avatar":  avatarURL,
		})

	}
}
