package network

import (
	"sync"

	"zesc_server/logic"
)

type RoomManager struct {
	Rooms map[string]*Room
	Mutex sync.RWMutex
}

func NewRoomManager() *RoomManager {
	return &RoomManager{
		Rooms: make(map[string]*Room),
	}
}

// CreateRoom builds a room, applies setup before its loop starts and runs it.
func (rm *RoomManager) CreateRoom(id, name string, cfg *logic.GameConfig, setup ...func(*Room)) *Room {
	rm.Mutex.Lock()
	defer rm.Mutex.Unlock()

	room := NewRoom(id, name, cfg)
	for _, fn := range setup {
		fn(room)
	}
	rm.Rooms[id] = room
	go room.Run()
	return room
}

func (rm *RoomManager) GetRoom(id string) *Room {
	rm.Mutex.RLock()
	defer rm.Mutex.RUnlock()
	return rm.Rooms[id]
}

// RoomInfo is returned by the API for the server list.
type RoomInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListRooms returns a list of rooms (for simple joining)
func (rm *RoomManager) ListRooms() []RoomInfo {
	rm.Mutex.RLock()
	defer rm.Mutex.RUnlock()
	out := make([]RoomInfo, 0, len(rm.Rooms))
	for _, r := range rm.Rooms {
		out = append(out, RoomInfo{ID: r.ID, Name: r.Name})
	}
	return out
}

func (rm *RoomManager) CloseRoom(id string) {
	rm.Mutex.Lock()
	defer rm.Mutex.Unlock()
	if r, ok := rm.Rooms[id]; ok {
		r.Stop()
		delete(rm.Rooms, id)
	}
}
