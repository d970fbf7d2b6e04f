package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatRoom is a chat channel between one client and one agent/landlord, scoped to a
// single property. The surrogate id is a generated UUID, but the (property, agent,
// client) triple is the natural key: the composite unique index guarantees at most one
// room per triple even when two find-or-create calls race.
type ChatRoom struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	PropertyID      string    `json:"propertyId" gorm:"uniqueIndex:idx_chat_rooms_triple"`
	AgentLandlordID string    `json:"agentLandlordId" gorm:"uniqueIndex:idx_chat_rooms_triple"`
	ClientID        string    `json:"clientId" gorm:"uniqueIndex:idx_chat_rooms_triple"`
	CreatedDate     time.Time `json:"createdDate"`
}

// BeforeCreate assigns the surrogate key before the row is inserted
func (r *ChatRoom) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RoomID is a validated chat room identifier. The realtime gateway only keys its
// membership registry on values that parsed, so malformed or arbitrary strings never
// become broadcast groups.
type RoomID string

// ParseRoomID validates a raw room id string from the wire
func ParseRoomID(raw string) (RoomID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", err
	}
	return RoomID(id.String()), nil
}

func (id RoomID) String() string {
	return string(id)
}

// SocketRoom is the name of the socket.io broadcast group for this room
func (id RoomID) SocketRoom() string {
	return "chatroom_" + string(id)
}
