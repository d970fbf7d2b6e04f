package services

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/interpark/realty-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertiesService manages real-estate listings
type PropertiesService struct {
	DB *gorm.DB
}

// PropertyInfo is the data needed to publish a listing. Price arrives as a string from
// form-style clients and is parsed here; NearbyPlaces may arrive as a single
// comma-separated string or as a list.
type PropertyInfo struct {
	Title           string
	Location        string
	Type            string
	Price           string
	Description     string
	NearbyPlaces    []string
	Purpose         string
	AgentLandlordID string
	Images          []string
}

// Add validates and stores a new listing
func (s *PropertiesService) Add(info *PropertyInfo) (*models.Property, error) {

	// Everything is required, including at least one image
	if info.Title == "" || info.Location == "" || info.Type == "" || info.Price == "" ||
		info.Description == "" || len(info.NearbyPlaces) == 0 ||
		info.AgentLandlordID == "" || len(info.Images) == 0 || info.Purpose == "" {
		return nil, NewValidationError("all fields are required, including images and purpose")
	}

	// Parse the price
	price, err := strconv.ParseFloat(info.Price, 64)
	if err != nil {
		return nil, NewValidationError("invalid price format")
	}

	// Normalize the purpose to the enum
	purpose := models.PurposeRent
	if strings.EqualFold(info.Purpose, models.PurposeBuy) {
		purpose = models.PurposeBuy
	}

	// Encode the JSON array columns
	nearby, err := json.Marshal(info.NearbyPlaces)
	if err != nil {
		return nil, err
	}
	images, err := json.Marshal(info.Images)
	if err != nil {
		return nil, err
	}

	// Store the listing
	now := time.Now().UTC()
	property := models.Property{
		Title:           info.Title,
		Location:        info.Location,
		Type:            info.Type,
		Price:           price,
		Description:     info.Description,
		NearbyPlaces:    datatypes.JSON(nearby),
		Purpose:         purpose,
		AgentLandlordID: info.AgentLandlordID,
		Images:          datatypes.JSON(images),
		CreatedDate:     now,
		UpdatedDate:     now,
	}
	if err := s.DB.Create(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil

}

// List gets all listings
func (s *PropertiesService) List() ([]*models.Property, error) {
	properties := []*models.Property{}
	if err := s.DB.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// ListByAgent gets all listings published by an agent/landlord
func (s *PropertiesService) ListByAgent(agentLandlordID string) ([]*models.Property, error) {
	if agentLandlordID == "" {
		return nil, NewValidationError("agentLandlordId is required")
	}
	properties := []*models.Property{}
	err := s.DB.
		Where("agent_landlord_id = ?", agentLandlordID).
		Find(&properties).
		Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// GetByID gets a listing by id, or nil if no such listing exists
func (s *PropertiesService) GetByID(propertyID string) (*models.Property, error) {
	var property models.Property
	err := s.DB.
		Where("id = ?", propertyID).
		First(&property).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}
