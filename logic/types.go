package logic

// MaxClients is the number of player slots a room can address.
const MaxClients = 64

// Vector2 represents a 2D position in world units
type Vector2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Team identifies which side a player is on.
type Team int

const (
	// NoTeam marks the absence of a friendly team in spawn evaluation.
	NoTeam         Team = -2
	TeamSpectators Team = -1
	TeamRed        Team = 0 // infected
	TeamBlue       Team = 1 // humans
)

// Weapon is both an inventory slot and a death cause.
type Weapon int

const (
	WeaponGame    Weapon = -3 // forced by the game (team change, reset)
	WeaponSelf    Weapon = -2 // self kill
	WeaponWorld   Weapon = -1 // death tiles
	WeaponHammer  Weapon = 0
	WeaponGun     Weapon = 1
	WeaponShotgun Weapon = 2
	WeaponGrenade Weapon = 3
	WeaponRifle   Weapon = 4
	WeaponNinja   Weapon = 5
)

// UnlimitedAmmo is the ammo value for weapons that never run dry.
const UnlimitedAmmo = -1

const (
	MaxHealth              = 10
	DefaultProximityRadius = 28.0
)

// Game flags sent to clients.
const (
	GameFlagTeams = 1 << 0
	GameFlagFlags = 1 << 1
)

// Game state flags sent to clients.
const (
	GameStateFlagGameOver    = 1 << 0
	GameStateFlagSuddenDeath = 1 << 1
	GameStateFlagPaused      = 1 << 2
)

// Player is a connected client's record. The round controller mutates
// Score and RespawnTick; everything else is owned by the host.
type Player struct {
	ClientID       int     `json:"client_id" msgpack:"client_id"`
	SessionID      string  `json:"session_id" msgpack:"session_id"`
	Name           string  `json:"name" msgpack:"name"`
	Team           Team    `json:"team" msgpack:"team"`
	Score          int     `json:"score" msgpack:"score"`
	Infected       bool    `json:"infected" msgpack:"infected"`
	Colors         Colors  `json:"colors" msgpack:"colors"`
	ScoreStartTick int     `json:"-" msgpack:"-"`
	LastActionTick int     `json:"-" msgpack:"-"`
	RespawnTick    int     `json:"-" msgpack:"-"`
	Authed         bool    `json:"-" msgpack:"-"`
	TargetDir      Vector2 `json:"-" msgpack:"-"`

	Character *Character `json:"-" msgpack:"-"`
}

// Colors is the body/feet colour pair a client renders a player with.
type Colors struct {
	UseCustom bool `json:"use_custom" msgpack:"use_custom"`
	Body      int  `json:"body" msgpack:"body"`
	Feet      int  `json:"feet" msgpack:"feet"`
}

// Character is a player's living body in the world.
type Character struct {
	ClientID        int            `json:"client_id" msgpack:"client_id"`
	Team            Team           `json:"team" msgpack:"team"`
	Pos             Vector2        `json:"pos" msgpack:"pos"`
	Health          int            `json:"health" msgpack:"health"`
	ProximityRadius float64        `json:"-" msgpack:"-"`
	Alive           bool           `json:"-" msgpack:"-"`
	Weapons         map[Weapon]int `json:"-" msgpack:"-"`
}

func NewCharacter(clientID int, team Team, pos Vector2) *Character {
	return &Character{
		ClientID:        clientID,
		Team:            team,
		Pos:             pos,
		ProximityRadius: DefaultProximityRadius,
		Alive:           true,
		Weapons:         make(map[Weapon]int),
	}
}

// IncreaseHealth adds n health up to MaxHealth and reports whether anything changed.
func (c *Character) IncreaseHealth(n int) bool {
	if c.Health >= MaxHealth {
		return false
	}
	c.Health += n
	if c.Health > MaxHealth {
		c.Health = MaxHealth
	}
	return true
}

// GiveWeapon grants w with the given ammo. Unlimited ammo always wins.
func (c *Character) GiveWeapon(w Weapon, ammo int) {
	if c.Weapons == nil {
		c.Weapons = make(map[Weapon]int)
	}
	if cur, ok := c.Weapons[w]; ok && cur == UnlimitedAmmo {
		return
	}
	c.Weapons[w] = ammo
}
