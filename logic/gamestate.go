package logic

import (
	"go.uber.org/zap"
)

// MoveSpeed is how far a character walks per second, in world units.
const MoveSpeed = 320.0

// GameState manages the world simulation. It is the World, Roster and
// EntityFactory the round controller runs against.
type GameState struct {
	Config  *GameConfig
	Map     *GameMap
	Players [MaxClients]*Player
	Pickups []*Pickup
	Doors   []*Door
	AOI     *AOIManager

	tick           int
	paused         bool
	resetRequested bool
	spawning       [MaxClients]bool

	// OnKick is called before a kicked player's slot is freed.
	OnKick func(p *Player, reason string)
}

func NewGameState(cfg *GameConfig) *GameState {
	return &GameState{
		Config: cfg,
		Map:    GenerateMap(cfg.Map.Name, cfg.Map.Width, cfg.Map.Height, cfg.Map.WallDensity),
		AOI:    NewAOIManager(DefaultViewRadius),
	}
}

// LoadMap swaps the map and drops every map entity. Characters die with the old map.
func (gs *GameState) LoadMap(m *GameMap) {
	gs.Map = m
	gs.Pickups = nil
	gs.Doors = nil
	for i, p := range gs.Players {
		if p == nil {
			continue
		}
		p.Character = nil
		gs.spawning[i] = p.Team != TeamSpectators
	}
}

func (gs *GameState) Tick() int { return gs.tick }

func (gs *GameState) AdvanceTick() { gs.tick++ }

func (gs *GameState) Characters() []*Character {
	out := make([]*Character, 0, MaxClients)
	for _, p := range gs.Players {
		if p != nil && p.Character != nil && p.Character.Alive {
			out = append(out, p.Character)
		}
	}
	return out
}

func (gs *GameState) FindCharactersNear(pos Vector2, radius float64) []*Character {
	var out []*Character
	for _, ch := range gs.Characters() {
		if Distance(ch.Pos, pos) < radius+ch.ProximityRadius {
			out = append(out, ch)
		}
	}
	return out
}

func (gs *GameState) CheckPointBlocked(pos Vector2) bool {
	return gs.Map.IsSolid(pos)
}

func (gs *GameState) Paused() bool { return gs.paused }

func (gs *GameState) SetPaused(paused bool) { gs.paused = paused }

func (gs *GameState) RequestReset() { gs.resetRequested = true }

// TakeResetRequest reports and clears a pending reset.
func (gs *GameState) TakeResetRequest() bool {
	r := gs.resetRequested
	gs.resetRequested = false
	return r
}

// ResetWorld clears every character and restocks the pickups.
func (gs *GameState) ResetWorld() {
	for _, p := range gs.Players {
		if p != nil {
			p.Character = nil
		}
	}
	for _, pk := range gs.Pickups {
		pk.RespawnTick = 0
	}
}

func (gs *GameState) Player(id int) *Player {
	if id < 0 || id >= MaxClients {
		return nil
	}
	return gs.Players[id]
}

// SetTeam moves a player, killing its character.
func (gs *GameState) SetTeam(id int, team Team) {
	p := gs.Player(id)
	if p == nil || p.Team == team {
		return
	}
	p.Character = nil
	p.Team = team
	if team != TeamRed {
		p.Infected = false
	}
	p.RespawnTick = gs.tick + gs.Config.Server.TickSpeed/2
	gs.spawning[id] = team != TeamSpectators
}

func (gs *GameState) Kick(id int, reason string) {
	p := gs.Player(id)
	if p == nil {
		return
	}
	Logger.Info("kick", zap.Int("client_id", id), zap.String("name", p.Name), zap.String("reason", reason))
	if gs.OnKick != nil {
		gs.OnKick(p, reason)
	}
	gs.RemovePlayer(id)
}

// Respawn queues the player for a spawn once its respawn tick has passed.
func (gs *GameState) Respawn(id int) {
	if p := gs.Player(id); p != nil && p.Team != TeamSpectators {
		gs.spawning[id] = true
	}
}

// Infect turns the player into the antagonist in place.
func (gs *GameState) Infect(id int) {
	p := gs.Player(id)
	if p == nil {
		return
	}
	p.Infected = true
	p.Team = TeamRed
	if p.Character != nil {
		p.Character.Team = TeamRed
	}
}

// Spawning reports whether id waits for a spawn at this tick.
func (gs *GameState) Spawning(id int) bool {
	p := gs.Player(id)
	return p != nil && gs.spawning[id] && p.Character == nil && gs.tick >= p.RespawnTick
}

// PlaceCharacter gives the player a new body at pos.
func (gs *GameState) PlaceCharacter(id int, pos Vector2) *Character {
	p := gs.Player(id)
	if p == nil {
		return nil
	}
	ch := NewCharacter(id, p.Team, pos)
	p.Character = ch
	gs.spawning[id] = false
	return ch
}

// AddPlayer takes the first free slot. New players start as spectators.
func (gs *GameState) AddPlayer(sessionID, name string) (*Player, bool) {
	limit := gs.Config.Server.MaxClients
	for i := 0; i < limit; i++ {
		if gs.Players[i] != nil {
			continue
		}
		p := &Player{
			ClientID:       i,
			SessionID:      sessionID,
			Name:           name,
			Team:           TeamSpectators,
			LastActionTick: gs.tick,
			ScoreStartTick: gs.tick,
		}
		gs.Players[i] = p
		gs.spawning[i] = false
		Logger.Info("player joined", zap.Int("client_id", i), zap.String("session_id", sessionID))
		return p, true
	}
	return nil, false
}

// RemovePlayer cleans up
func (gs *GameState) RemovePlayer(id int) {
	if gs.Player(id) == nil {
		return
	}
	gs.Players[id] = nil
	gs.spawning[id] = false
}

// HandleInput updates player target direction
func (gs *GameState) HandleInput(id int, dir Vector2) {
	p := gs.Player(id)
	if p == nil {
		return
	}
	p.TargetDir = dir
	p.LastActionTick = gs.tick
}

// KillCharacter removes a player's body and queues its respawn.
func (gs *GameState) KillCharacter(id int) *Character {
	p := gs.Player(id)
	if p == nil || p.Character == nil {
		return nil
	}
	ch := p.Character
	ch.Alive = false
	p.Character = nil
	p.RespawnTick = gs.tick + gs.Config.Server.TickSpeed/2
	gs.spawning[id] = true
	return ch
}

// UpdateTick moves every character along its input direction.
func (gs *GameState) UpdateTick(dt float64) {
	if gs.paused {
		return
	}
	for _, p := range gs.Players {
		if p == nil || p.Character == nil {
			continue
		}
		dir := p.TargetDir
		if dir.X == 0 && dir.Y == 0 {
			continue
		}
		delta := Vector2{X: dir.X * MoveSpeed * dt, Y: dir.Y * MoveSpeed * dt}
		p.Character.Pos = gs.ResolveMovement(p.Character.Pos, delta, p.Character.ProximityRadius)
	}
	gs.collectPickups()
}
