package logic

import (
	"github.com/google/uuid"
)

const (
	pickupRadius     = 14.0
	pickupRespawnSec = 15
	pickupWeaponAmmo = 10
)

// Pickup is an item lying on the map.
type Pickup struct {
	UID         string     `json:"uid" msgpack:"uid"`
	Type        PickupType `json:"type" msgpack:"type"`
	Weapon      Weapon     `json:"weapon" msgpack:"weapon"`
	Pos         Vector2    `json:"pos" msgpack:"pos"`
	RespawnTick int        `json:"-" msgpack:"-"`
}

func (pk *Pickup) Available(tick int) bool { return tick >= pk.RespawnTick }

// Door is a gate placed by a door marker; id is its index in the door range.
type Door struct {
	UID  string  `json:"uid" msgpack:"uid"`
	ID   int     `json:"id" msgpack:"id"`
	Pos  Vector2 `json:"pos" msgpack:"pos"`
	Open bool    `json:"open" msgpack:"open"`
}

func NewUID() string {
	return uuid.NewString()
}

func (gs *GameState) CreatePickup(kind PickupType, weapon Weapon, pos Vector2) {
	gs.Pickups = append(gs.Pickups, &Pickup{UID: NewUID(), Type: kind, Weapon: weapon, Pos: pos})
}

func (gs *GameState) CreateDoor(door int, pos Vector2) {
	gs.Doors = append(gs.Doors, &Door{UID: NewUID(), ID: door, Pos: pos})
}

// SetDoorsOpen opens or closes every door on the map.
func (gs *GameState) SetDoorsOpen(open bool) {
	for _, d := range gs.Doors {
		d.Open = open
	}
}

func (gs *GameState) collectPickups() {
	for _, pk := range gs.Pickups {
		if !pk.Available(gs.tick) {
			continue
		}
		for _, ch := range gs.FindCharactersNear(pk.Pos, pickupRadius) {
			if applyPickup(ch, pk) {
				pk.RespawnTick = gs.tick + pickupRespawnSec*gs.Config.Server.TickSpeed
				break
			}
		}
	}
}

func applyPickup(ch *Character, pk *Pickup) bool {
	switch pk.Type {
	case PickupHealth:
		return ch.IncreaseHealth(1)
	case PickupWeapon:
		ch.GiveWeapon(pk.Weapon, pickupWeaponAmmo)
		return true
	case PickupNinja:
		ch.GiveWeapon(WeaponNinja, UnlimitedAmmo)
		return true
	}
	return false
}
