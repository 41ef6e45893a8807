package logic

// Map entity codes as stored in the map's game layer.
const (
	EntitySpawn         = 1
	EntitySpawnRed      = 2
	EntitySpawnBlue     = 3
	EntityFlagStandRed  = 4
	EntityFlagStandBlue = 5
	EntityArmor         = 6
	EntityHealth        = 7
	EntityWeaponShotgun = 8
	EntityWeaponGrenade = 9
	EntityPowerupNinja  = 10
	EntityWeaponRifle   = 11

	EntityDoorFirst = 17
	EntityDoorLast  = 48
)

type MarkerKind int

const (
	MarkerSpawn MarkerKind = iota
	MarkerPickup
	MarkerDoor
)

type PickupType int

const (
	PickupHealth PickupType = iota
	PickupArmor
	PickupWeapon
	PickupNinja
)

// Marker describes what a map entity code turns into.
type Marker struct {
	Kind     MarkerKind
	Category SpawnCategory // MarkerSpawn
	Pickup   PickupType    // MarkerPickup
	Weapon   Weapon        // MarkerPickup
	Powerup  bool          // only with items.powerups
	Door     int           // MarkerDoor
}

var markerTable = map[int]Marker{
	EntitySpawn:         {Kind: MarkerSpawn, Category: SpawnNeutral},
	EntitySpawnRed:      {Kind: MarkerSpawn, Category: SpawnRed},
	EntitySpawnBlue:     {Kind: MarkerSpawn, Category: SpawnBlue},
	EntityHealth:        {Kind: MarkerPickup, Pickup: PickupHealth},
	EntityWeaponShotgun: {Kind: MarkerPickup, Pickup: PickupWeapon, Weapon: WeaponShotgun},
	EntityWeaponGrenade: {Kind: MarkerPickup, Pickup: PickupWeapon, Weapon: WeaponGrenade},
	EntityWeaponRifle:   {Kind: MarkerPickup, Pickup: PickupWeapon, Weapon: WeaponRifle},
	EntityPowerupNinja:  {Kind: MarkerPickup, Pickup: PickupNinja, Weapon: WeaponNinja, Powerup: true},
}

// ClassifyMarker resolves an entity code. Unknown codes return false.
func ClassifyMarker(code int) (Marker, bool) {
	if code >= EntityDoorFirst && code <= EntityDoorLast {
		return Marker{Kind: MarkerDoor, Door: code - EntityDoorFirst}, true
	}
	m, ok := markerTable[code]
	return m, ok
}

// OnEntity consumes one static map marker during map load.
func (c *Controller) OnEntity(code int, pos Vector2) bool {
	m, ok := ClassifyMarker(code)
	if !ok {
		return false
	}

	switch m.Kind {
	case MarkerSpawn:
		return c.AddSpawnPoint(m.Category, pos)
	case MarkerDoor:
		c.factory.CreateDoor(m.Door, pos)
		return true
	case MarkerPickup:
		if m.Powerup && !c.cfg.Items.Powerups {
			return false
		}
		if c.cfg.Items.Disabled {
			return false
		}
		c.factory.CreatePickup(m.Pickup, m.Weapon, pos)
		return true
	}
	return false
}
