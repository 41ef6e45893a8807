package logic

import "go.uber.org/zap"

// Logger is the package logger. main replaces it at startup.
var Logger = zap.NewNop()

// World is the entity simulation the controller reads from.
type World interface {
	// Tick is the host's global simulation clock.
	Tick() int
	// Characters returns every living player-controlled character.
	Characters() []*Character
	FindCharactersNear(pos Vector2, radius float64) []*Character
	CheckPointBlocked(pos Vector2) bool
	Paused() bool
	SetPaused(paused bool)
	// RequestReset asks the host to rebuild the world at the end of the tick.
	RequestReset()
}

// Roster is the player/connection registry.
type Roster interface {
	// Player returns the record in slot id, or nil when the slot is empty.
	Player(id int) *Player
	SetTeam(id int, team Team)
	Kick(id int, reason string)
	Respawn(id int)
	Infect(id int)
}

// InfectionPhase is passed to the infection sub-controller.
type InfectionPhase int

const (
	InfectionInitial InfectionPhase = iota
	InfectionArmed
	InfectionHumansWin
)

// Infection is the sub-controller that tracks who is infected.
type Infection interface {
	StartPhase(phase InfectionPhase)
	PlayerCount() int
	Started() bool
}

// EntityFactory creates and owns the map entities produced by OnEntity.
type EntityFactory interface {
	CreatePickup(kind PickupType, weapon Weapon, pos Vector2)
	CreateDoor(door int, pos Vector2)
}
