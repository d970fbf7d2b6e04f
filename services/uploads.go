package services

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadsService stores uploaded images on local disk under a base directory. Stored
// files get generated names, so uploads never collide and client-supplied filenames
// never touch the filesystem.
type UploadsService struct {
	BaseDir string
	BaseURL string
}

// imageExtensions are the file extensions accepted for upload
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// SaveFunc writes an uploaded file to a destination path. In the HTTP handlers it is
// gin's SaveUploadedFile.
type SaveFunc func(file *multipart.FileHeader, dst string) error

// SaveImage stores one uploaded image in the given subdirectory and returns the public
// URL it will be served from
func (s *UploadsService) SaveImage(file *multipart.FileHeader, subdir string, save SaveFunc) (string, error) {

	// Only image files are allowed
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", NewValidationError("invalid file type, only images are allowed")
	}

	// Make sure the destination directory exists
	dir := filepath.Join(s.BaseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Store under a generated name
	filename := uuid.NewString() + ext
	if err := save(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + subdir + "/" + filename, nil

}

// ListImages lists the image filenames stored in a subdirectory
func (s *UploadsService) ListImages(subdir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.BaseDir, subdir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	images := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			images = append(images, entry.Name())
		}
	}
	return images, nil
}
