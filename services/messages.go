package services

import (
	"time"

	"github.com/interpark/realty-api/models"
	"gorm.io/gorm"
)

// MessagesService persists and retrieves chat messages
type MessagesService struct {
	DB    *gorm.DB
	Rooms *RoomsService
}

// AppendMessage stores a new message in a room and returns it with its server-assigned
// timestamp. The room reference is not checked for existence here: the append path
// accepts any non-empty room id, matching the REST send contract.
func (s *MessagesService) AppendMessage(chatRoomID, senderID, content string) (*models.Message, error) {
	if chatRoomID == "" || senderID == "" || content == "" {
		return nil, NewValidationError("chatRoomId, senderId and content are required")
	}
	message := models.Message{
		ChatRoomID: chatRoomID,
		SenderID:   senderID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.DB.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListMessages gets a room's message history ordered oldest-first. Listing a room that
// does not exist is a not-found error, so a deleted room reads as gone rather than as
// an empty history.
func (s *MessagesService) ListMessages(chatRoomID string) ([]*models.Message, error) {
	if chatRoomID == "" {
		return nil, NewValidationError("chatRoomId is required")
	}

	room, err := s.Rooms.GetRoomByID(chatRoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	messages := []*models.Message{}
	err = s.DB.
		Where("chat_room_id = ?", chatRoomID).
		Order("timestamp asc").
		Find(&messages).
		Error
	if err != nil {
		return nil, err
	}
	return messages, nil

}
