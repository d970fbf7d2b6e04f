package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoomID(t *testing.T) {

	raw := uuid.NewString()
	roomID, err := ParseRoomID(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, roomID.String())
	assert.Equal(t, "chatroom_"+raw, roomID.SocketRoom())

	for _, bad := range []string{"", "rooms", "../../etc/passwd", "chatroom_abc"} {
		_, err := ParseRoomID(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}

}
