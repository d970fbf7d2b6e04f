package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interpark/realty-api/services"
	"go.uber.org/zap"
)

// propertyImagesDir is the subdirectory for property pictures under the uploads base
const propertyImagesDir = "propertypic"

// PropertyUploadImages stores a batch of listing images and returns their URLs
func PropertyUploadImages(
	uploadsService *services.UploadsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the multipart form
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
			return
		}

		// Store each image and collect the URLs
		urls := make([]string, 0, len(files))
		for _, file := range files {
			url, err := uploadsService.SaveImage(file, propertyImagesDir, c.SaveUploadedFile)
			if err != nil {
				respondError(c, logger, err)
				return
			}
			urls = append(urls, url)
		}

		c.JSON(http.StatusOK, gin.H{"images": urls})

	}
}

// PropertyListImages lists the filenames of all stored property images
func PropertyListImages(
	uploadsService *services.UploadsService,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		images, err := uploadsService.ListImages(propertyImagesDir)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"images": images})
	}
}
