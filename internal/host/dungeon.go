package host

import (
	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/streaming"
)

// RoomTheme is a bitmask of dungeon themes.
type RoomTheme int

const (
	ThemeNone        RoomTheme = 0
	ThemeCrypt       RoomTheme = 1
	ThemeSunkenCrypt RoomTheme = 2
	ThemeCave        RoomTheme = 4
	ThemeForestCrypt RoomTheme = 8
)

// RoomData is the host's record for one dungeon room.
type RoomData struct {
	Prefab  streaming.Reference
	Enabled bool
	Theme   RoomTheme
}

// Hash is the key the dungeon database files the room under.
func (r *RoomData) Hash() int32 {
	return int32(r.Prefab.ID.A)
}

// DungeonDB is the host's dungeon database.
type DungeonDB struct {
	RoomLists  []*asset.Object
	RoomByHash map[int32]*RoomData
}

// NewDungeonDB creates an empty database.
func NewDungeonDB() *DungeonDB {
	return &DungeonDB{RoomByHash: make(map[int32]*RoomData)}
}

// HasRoomList reports whether list is already registered.
func (db *DungeonDB) HasRoomList(list *asset.Object) bool {
	for _, l := range db.RoomLists {
		if l == list {
			return true
		}
	}
	return false
}

// DungeonGenerator assembles a dungeon from its available rooms.
type DungeonGenerator struct {
	Name           string
	AvailableRooms []*RoomData
}
