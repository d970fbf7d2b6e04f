package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing purpose
const (
	PurposeBuy  = "BUY"
	PurposeRent = "RENT"
)

// Property is a real-estate listing published by an agent/landlord. Images and
// NearbyPlaces are JSON string arrays.
type Property struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	Title           string         `json:"title"`
	Location        string         `json:"location"`
	Type            string         `json:"type"`
	Price           float64        `json:"price"`
	Description     string         `json:"description"`
	NearbyPlaces    datatypes.JSON `json:"nearbyPlaces"`
	Purpose         string         `json:"purpose"`
	AgentLandlordID string         `json:"agentLandlordId" gorm:"index"`
	Images          datatypes.JSON `json:"images"`
	CreatedDate     time.Time      `json:"createdDate"`
	UpdatedDate     time.Time      `json:"updatedDate"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
