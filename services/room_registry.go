package services

import (
	"sync"

	"github.com/interpark/realty-api/models"
)

// RoomRegistry tracks which live connections have joined which rooms. It is the
// gateway's own view of room membership, keyed by validated room ids, and is the source
// of truth for join idempotence and disconnect cleanup. socket.io's internal rooms are
// only the delivery mechanism.
type RoomRegistry struct {
	rooms    map[models.RoomID]map[string]bool
	conns    map[string]map[models.RoomID]bool
	roomsMut sync.RWMutex
}

// Join records a connection as a member of a room. Joining a room twice is a no-op;
// the return value reports whether the membership is new.
func (r *RoomRegistry) Join(connID string, roomID models.RoomID) bool {

	// Lock on the registry
	r.roomsMut.Lock()
	defer r.roomsMut.Unlock()

	// Lazily create the maps
	if r.rooms == nil {
		r.rooms = map[models.RoomID]map[string]bool{}
	}
	if r.conns == nil {
		r.conns = map[string]map[models.RoomID]bool{}
	}

	// Get the membership set for the room
	members, ok := r.rooms[roomID]
	if !ok {
		members = map[string]bool{}
		r.rooms[roomID] = members
	}
	if members[connID] {
		return false
	}

	// Record the membership in both directions
	members[connID] = true
	joined, ok := r.conns[connID]
	if !ok {
		joined = map[models.RoomID]bool{}
		r.conns[connID] = joined
	}
	joined[roomID] = true
	return true

}

// RemoveConn removes a connection from every room it had joined
func (r *RoomRegistry) RemoveConn(connID string) {

	// Lock on the registry
	r.roomsMut.Lock()
	defer r.roomsMut.Unlock()

	// Remove the connection from each of its rooms
	for roomID := range r.conns[connID] {
		delete(r.rooms[roomID], connID)
		if len(r.rooms[roomID]) == 0 {
			delete(r.rooms, roomID)
		}
	}
	delete(r.conns, connID)

}

// IsMember reports whether a connection has joined a room
func (r *RoomRegistry) IsMember(connID string, roomID models.RoomID) bool {
	r.roomsMut.RLock()
	defer r.roomsMut.RUnlock()
	return r.rooms[roomID][connID]
}

// RoomLen counts the live members of a room
func (r *RoomRegistry) RoomLen(roomID models.RoomID) int {
	r.roomsMut.RLock()
	defer r.roomsMut.RUnlock()
	return len(r.rooms[roomID])
}
