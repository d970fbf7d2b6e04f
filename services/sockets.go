package services

import (
	socketio "github.com/googollee/go-socket.io"
	"github.com/interpark/realty-api/models"
	"github.com/interpark/realty-api/utils"
	"go.uber.org/zap"
)

// memberConn is the slice of socketio.Conn the event handlers actually need. Handlers
// take this interface so tests can drive them with fake connections.
type memberConn interface {
	ID() string
	Join(room string)
	Emit(msg string, v ...interface{})
}

// RoomBroadcaster fans an event out to every connection in a room.
// *socketio.Server satisfies it.
type RoomBroadcaster interface {
	BroadcastToRoom(namespace string, room string, event string, args ...interface{}) bool
}

// SocketsService is the realtime gateway. Clients join rooms and exchange messages over
// a socket connection; messages sent on the live path are persisted first and then
// broadcast to every member of the room, the sender included. The sender re-renders its
// own message from the broadcast; there is no separate acknowledgment event.
type SocketsService struct {
	Server          *socketio.Server
	Broadcaster     RoomBroadcaster
	MessagesService *MessagesService
	Logger          *zap.Logger
	registry        RoomRegistry
}

// SendMessageMsg is the payload of the send_message event
type SendMessageMsg struct {
	ChatRoomID string `json:"chatRoomId"`
	SenderID   string `json:"senderId"`
	Content    string `json:"content"`
}

// Setup registers all of the socket event handlers on the server
func (s *SocketsService) Setup() {

	// Default the broadcaster to the socket.io server itself
	if s.Broadcaster == nil {
		s.Broadcaster = s.Server
	}

	// When a socket connects
	s.Server.OnConnect("/", func(conn socketio.Conn) error {
		s.Logger.Info("client connected",
			zap.String("conn_id", conn.ID()),
			zap.String("ip", utils.GetIPAddress(conn.RemoteHeader(), conn.RemoteAddr())),
		)
		return nil
	})

	// When a socket disconnects, its memberships evaporate with it
	s.Server.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		s.registry.RemoveConn(conn.ID())
		conn.LeaveAll()
		s.Logger.Info("client disconnected",
			zap.String("conn_id", conn.ID()),
			zap.String("reason", reason),
		)
	})

	// Register the chat event handlers
	s.Server.OnEvent("/", "join_room", func(conn socketio.Conn, roomID string) {
		s.HandleJoinRoom(conn, roomID)
	})
	s.Server.OnEvent("/", "send_message", func(conn socketio.Conn, data SendMessageMsg) {
		s.HandleSendMessage(conn, data)
	})

}

// Broadcast broadcasts an event to every member of a room
func (s *SocketsService) Broadcast(room, event string, args ...interface{}) bool {
	return s.Broadcaster.BroadcastToRoom("/", room, event, args...)
}

// HandleJoinRoom subscribes a connection to a room's broadcast group. The room id must
// parse as a room identifier, but the room is not required to exist and no authorization
// is applied: join_room has no response event either way. Joining twice is a no-op.
func (s *SocketsService) HandleJoinRoom(conn memberConn, rawRoomID string) {

	// Only validated identifiers become broadcast groups
	roomID, err := models.ParseRoomID(rawRoomID)
	if err != nil {
		s.Logger.Warn("join_room with malformed room id",
			zap.String("conn_id", conn.ID()),
			zap.String("room_id", rawRoomID),
		)
		return
	}

	// Record the membership and join the socket.io room
	if s.registry.Join(conn.ID(), roomID) {
		conn.Join(roomID.SocketRoom())
	}

	s.Logger.Info("joined room",
		zap.String("conn_id", conn.ID()),
		zap.String("room_id", roomID.String()),
		zap.Int("members", s.registry.RoomLen(roomID)),
	)

}

// HandleSendMessage persists a message and, on success, broadcasts it to the room.
// On persistence failure the error is logged and nothing is emitted: the wire protocol
// has no error event, so the sender gets no feedback on a failed send.
func (s *SocketsService) HandleSendMessage(conn memberConn, data SendMessageMsg) {

	// Persist the message
	message, err := s.MessagesService.AppendMessage(
		data.ChatRoomID,
		data.SenderID,
		data.Content,
	)
	if err != nil {
		s.Logger.Error("failed to store live message",
			zap.String("conn_id", conn.ID()),
			zap.String("room_id", data.ChatRoomID),
			zap.Error(err),
		)
		return
	}

	// Fan the stored message out to everyone in the room, sender included
	roomID := models.RoomID(message.ChatRoomID)
	s.Broadcast(roomID.SocketRoom(), "receive_message", message)

}

// Registry exposes the membership registry for inspection
func (s *SocketsService) Registry() *RoomRegistry {
	return &s.registry
}
