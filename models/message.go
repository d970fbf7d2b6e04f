package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a single chat message. Messages belong exclusively to their room: they are
// created through the room's message path and deleted only when the room is deleted.
// The (chat_room_id, timestamp) index serves ordered history retrieval.
type Message struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	ChatRoomID string    `json:"chatRoomId" gorm:"index:idx_messages_room_time"`
	SenderID   string    `json:"senderId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp" gorm:"index:idx_messages_room_time"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
