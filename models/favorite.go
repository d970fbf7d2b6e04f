package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite marks a property saved by a client. A client can favorite a given property
// at most once.
type Favorite struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	ClientID    string    `json:"clientId" gorm:"uniqueIndex:idx_favorites_client_property"`
	PropertyID  string    `json:"propertyId" gorm:"uniqueIndex:idx_favorites_client_property"`
	Property    *Property `json:"property,omitempty"`
	CreatedDate time.Time `json:"createdDate"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
