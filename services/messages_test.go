package services

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/interpark/realty-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendMessageValidation(t *testing.T) {
	db := newTestDB(t)
	svc := &MessagesService{DB: db, Rooms: &RoomsService{DB: db}}

	for _, fields := range [][3]string{
		{"", "S1", "hello"},
		{"R1", "", "hello"},
		{"R1", "S1", ""},
	} {
		_, err := svc.AppendMessage(fields[0], fields[1], fields[2])
		assert.True(t, IsValidation(err), "expected validation error for %v", fields)
	}
}

func TestAppendMessageAssignsIDAndTimestamp(t *testing.T) {
	db := newTestDB(t)
	rooms := &RoomsService{DB: db}
	svc := &MessagesService{DB: db, Rooms: rooms}

	room, err := rooms.GetOrCreateRoom("P1", "A1", "C1")
	require.NoError(t, err)

	before := time.Now().UTC()
	message, err := svc.AppendMessage(room.ID, "C1", "Hello")
	require.NoError(t, err)

	assert.NotEmpty(t, message.ID)
	assert.Equal(t, room.ID, message.ChatRoomID)
	assert.Equal(t, "C1", message.SenderID)
	assert.Equal(t, "Hello", message.Content)
	assert.False(t, message.Timestamp.Before(before))
}

func TestAppendMessageDoesNotCheckRoomExists(t *testing.T) {
	db := newTestDB(t)
	svc := &MessagesService{DB: db, Rooms: &RoomsService{DB: db}}

	// The append path accepts a room id that was never created
	message, err := svc.AppendMessage(uuid.NewString(), "S1", "into the void")
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)
}

func TestListMessagesOrderedByTimestamp(t *testing.T) {
	db := newTestDB(t)
	rooms := &RoomsService{DB: db}
	svc := &MessagesService{DB: db, Rooms: rooms}

	room, err := rooms.GetOrCreateRoom("P1", "A1", "C1")
	require.NoError(t, err)

	// Insert history out of order, as racing writers would have left it
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, offset := range []int{3, 1, 2, 0} {
		require.NoError(t, db.Create(&models.Message{
			ChatRoomID: room.ID,
			SenderID:   "C1",
			Content:    "msg",
			Timestamp:  base.Add(time.Duration(offset) * time.Second),
		}).Error)
	}

	messages, err := svc.ListMessages(room.ID)
	require.NoError(t, err)
	require.Len(t, messages, 4)
	assert.True(t, sort.SliceIsSorted(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	}))
}

func TestListMessagesEmptyRoom(t *testing.T) {
	db := newTestDB(t)
	rooms := &RoomsService{DB: db}
	svc := &MessagesService{DB: db, Rooms: rooms}

	room, err := rooms.GetOrCreateRoom("P1", "A1", "C1")
	require.NoError(t, err)

	messages, err := svc.ListMessages(room.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestListMessagesUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	svc := &MessagesService{DB: db, Rooms: &RoomsService{DB: db}}

	_, err := svc.ListMessages(uuid.NewString())
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.ListMessages("")
	assert.True(t, IsValidation(err))
}
