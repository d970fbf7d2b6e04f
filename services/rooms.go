package services

import (
	"errors"
	"time"

	"github.com/interpark/realty-api/models"
	"gorm.io/gorm"
)

// RoomsService manages chat room identity. A room is unique per
// (property, agent/landlord, client) triple.
type RoomsService struct {
	DB *gorm.DB
}

// GetOrCreateRoom returns the room for the given triple, creating it on first use.
// Calling it repeatedly with the same triple always yields the same room: when two
// concurrent calls both miss the lookup, the composite unique index rejects the second
// insert and the loser re-reads the winner's row.
func (s *RoomsService) GetOrCreateRoom(propertyID, agentLandlordID, clientID string) (*models.ChatRoom, error) {

	// All three references are required
	if propertyID == "" || agentLandlordID == "" || clientID == "" {
		return nil, NewValidationError("propertyId, agentLandlordId and clientId are required")
	}

	// Look for an existing room with the exact triple
	room, err := s.findRoomByTriple(propertyID, agentLandlordID, clientID)
	if err != nil {
		return nil, err
	}
	if room != nil {
		return room, nil
	}

	// Create the room
	newRoom := models.ChatRoom{
		PropertyID:      propertyID,
		AgentLandlordID: agentLandlordID,
		ClientID:        clientID,
		CreatedDate:     time.Now().UTC(),
	}
	if err := s.DB.Create(&newRoom).Error; err != nil {

		// A concurrent create may have won the race on the unique index. Re-read, and
		// only surface the create error if the room still isn't there.
		room, findErr := s.findRoomByTriple(propertyID, agentLandlordID, clientID)
		if findErr == nil && room != nil {
			return room, nil
		}
		return nil, err

	}
	return &newRoom, nil

}

// ListRoomsForUser gets every room where the user is either the agent/landlord or the
// client. A user with no rooms gets an empty slice, not an error.
func (s *RoomsService) ListRoomsForUser(userID string) ([]*models.ChatRoom, error) {
	if userID == "" {
		return nil, NewValidationError("userId is required")
	}
	rooms := []*models.ChatRoom{}
	err := s.DB.
		Where("agent_landlord_id = ? OR client_id = ?", userID, userID).
		Find(&rooms).
		Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoomByID gets a room by its surrogate id, or nil when no such room exists
func (s *RoomsService) GetRoomByID(roomID string) (*models.ChatRoom, error) {
	if roomID == "" {
		return nil, NewValidationError("chatRoomId is required")
	}
	var room models.ChatRoom
	err := s.DB.
		Where("id = ?", roomID).
		First(&room).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// DeleteRoom deletes a room and its entire message history. The messages go first,
// inside the same transaction as the room row, so no orphaned messages can remain.
func (s *RoomsService) DeleteRoom(roomID string) error {
	if roomID == "" {
		return NewValidationError("chatRoomId is required")
	}

	// The room must exist
	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}

	// Cascade to the messages, then remove the room itself
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("chat_room_id = ?", room.ID).
			Delete(&models.Message{}).
			Error; err != nil {
			return err
		}
		return tx.Delete(room).Error
	})

}

// findRoomByTriple looks up the room matching the exact triple, or nil
func (s *RoomsService) findRoomByTriple(propertyID, agentLandlordID, clientID string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := s.DB.
		Where("property_id = ?", propertyID).
		Where("agent_landlord_id = ?", agentLandlordID).
		Where("client_id = ?", clientID).
		First(&room).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}
