package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentProfile holds the agent/landlord-specific details for a user with the
// AGENT_LANDLORD role. Its ID is the value referenced by Property.AgentLandlordID and
// ChatRoom.AgentLandlordID.
type AgentProfile struct {
	ID                   string    `json:"id" gorm:"primaryKey"`
	UserID               string    `json:"userId" gorm:"uniqueIndex"`
	User                 *User     `json:"user,omitempty"`
	PhoneNumber          string    `json:"phoneNumber"`
	NationalIDOrPassport string    `json:"nationalIdOrPassport"`
	AgentNumber          string    `json:"agentNumber"`
	CreatedDate          time.Time `json:"createdDate"`
}

func (p *AgentProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
