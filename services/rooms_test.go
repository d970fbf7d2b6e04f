package services

import (
	"testing"

	"github.com/interpark/realty-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateRoomIdempotent(t *testing.T) {
	svc := &RoomsService{DB: newTestDB(t)}

	first, err := svc.GetOrCreateRoom("P1", "A1", "C1")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// The same triple always resolves to the same room
	second, err := svc.GetOrCreateRoom("P1", "A1", "C1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// A different triple gets its own room
	other, err := svc.GetOrCreateRoom("P1", "A1", "C2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	var count int64
	require.NoError(t, svc.DB.Model(&models.ChatRoom{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGetOrCreateRoomValidation(t *testing.T) {
	svc := &RoomsService{DB: newTestDB(t)}

	for _, triple := range [][3]string{
		{"", "A1", "C1"},
		{"P1", "", "C1"},
		{"P1", "A1", ""},
		{"", "", ""},
	} {
		_, err := svc.GetOrCreateRoom(triple[0], triple[1], triple[2])
		assert.True(t, IsValidation(err), "expected validation error for %v", triple)
	}

	// Nothing was persisted
	var count int64
	require.NoError(t, svc.DB.Model(&models.ChatRoom{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestGetOrCreateRoomReturnsRowCreatedElsewhere(t *testing.T) {
	svc := &RoomsService{DB: newTestDB(t)}

	// Insert the room out-of-band, as a racing request would
	existing := models.ChatRoom{
		PropertyID:      "P9",
		AgentLandlordID: "A9",
		ClientID:        "C9",
	}
	require.NoError(t, svc.DB.Create(&existing).Error)

	room, err := svc.GetOrCreateRoom("P9", "A9", "C9")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, room.ID)
}

func TestListRoomsForUser(t *testing.T) {
	svc := &RoomsService{DB: newTestDB(t)}

	asAgent, err := svc.GetOrCreateRoom("P1", "U1", "C1")
	require.NoError(t, err)
	asClient, err := svc.GetOrCreateRoom("P2", "A2", "U1")
	require.NoError(t, err)
	_, err = svc.GetOrCreateRoom("P3", "A3", "C3")
	require.NoError(t, err)

	// The user appears on both sides of the conversation
	rooms, err := svc.ListRoomsForUser("U1")
	require.NoError(t, err)
	ids := []string{}
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}
	assert.ElementsMatch(t, []string{asAgent.ID, asClient.ID}, ids)

	// No rooms is an empty slice, not an error
	rooms, err = svc.ListRoomsForUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, rooms)

	// A missing user id is a validation error
	_, err = svc.ListRoomsForUser("")
	assert.True(t, IsValidation(err))
}

func TestDeleteRoomCascadesToMessages(t *testing.T) {
	db := newTestDB(t)
	rooms := &RoomsService{DB: db}
	messages := &MessagesService{DB: db, Rooms: rooms}

	room, err := rooms.GetOrCreateRoom("P1", "A1", "C1")
	require.NoError(t, err)
	_, err = messages.AppendMessage(room.ID, "C1", "Hello")
	require.NoError(t, err)
	_, err = messages.AppendMessage(room.ID, "A1", "Hi there")
	require.NoError(t, err)

	require.NoError(t, rooms.DeleteRoom(room.ID))

	// No orphaned messages remain
	var count int64
	require.NoError(t, db.Model(&models.Message{}).Where("chat_room_id = ?", room.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// The room reads as gone
	_, err = messages.ListMessages(room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDeleteRoomNotFound(t *testing.T) {
	svc := &RoomsService{DB: newTestDB(t)}
	assert.ErrorIs(t, svc.DeleteRoom("no-such-room"), ErrRoomNotFound)
}
