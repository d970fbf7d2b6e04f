package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientProfile is the client-side counterpart to AgentProfile. Favorites reference its
// ID, not the user id, so the favorites service resolves user → client before touching
// the favorites table.
type ClientProfile struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"userId" gorm:"uniqueIndex"`
	User        *User     `json:"user,omitempty"`
	CreatedDate time.Time `json:"createdDate"`
}

func (p *ClientProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
