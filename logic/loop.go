package logic

import (
	"time"

	"go.uber.org/zap"
)

type InputType int

const (
	InputJoin InputType = iota
	InputLeave
	InputMove
	InputKill
	InputTeam
	InputChangeMap
)

type PlayerInput struct {
	ClientID int
	Type     InputType
	// Payload fields (can be generic or specific)
	SessionID string
	Name      string
	Dir       Vector2
	Team      Team
	Map       string
	Reply     chan<- JoinResult
}

type JoinResult struct {
	ClientID int
	OK       bool
}

// PlayerView is what a viewer knows about another player.
type PlayerView struct {
	ClientID int     `json:"client_id" msgpack:"client_id"`
	Name     string  `json:"name" msgpack:"name"`
	Team     Team    `json:"team" msgpack:"team"`
	Infected bool    `json:"infected" msgpack:"infected"`
	Score    int     `json:"score" msgpack:"score"`
	Pos      Vector2 `json:"pos" msgpack:"pos"`
	Health   int     `json:"health" msgpack:"health"`
}

// Snapshot is one viewer's frame.
type Snapshot struct {
	Tick    int           `json:"tick" msgpack:"tick"`
	Map     string        `json:"map" msgpack:"map"`
	Round   RoundSnapshot `json:"round" msgpack:"round"`
	Self    Player        `json:"self" msgpack:"self"`
	Players []PlayerView  `json:"players" msgpack:"players"`
	Pickups []Pickup      `json:"pickups" msgpack:"pickups"`
	Doors   []Door        `json:"doors" msgpack:"doors"`
}

type GameLoop struct {
	GameState    *GameState
	Controller   *Controller
	Infection    *InfectionTracker
	InputChan    chan PlayerInput
	SnapshotChan chan map[int]Snapshot
	StopChan     chan bool

	// OnRotate is called whenever the map or round counter changes.
	OnRotate func(RotationState)

	lastRotation RotationState
	log          *zap.Logger
}

func NewGameLoop(cfg *GameConfig) *GameLoop {
	gs := NewGameState(cfg)
	inf := NewInfectionTracker(gs)
	gl := &GameLoop{
		GameState:    gs,
		Infection:    inf,
		InputChan:    make(chan PlayerInput, 256),
		SnapshotChan: make(chan map[int]Snapshot, 1),
		StopChan:     make(chan bool),
		log:          Logger.With(zap.String("component", "loop")),
	}
	gl.Controller = NewController(cfg, Deps{World: gs, Roster: gs, Infection: inf, Factory: gs})
	gl.loadMarkers()
	gl.lastRotation = gl.Controller.Rotation()
	return gl
}

// Restore resumes from a checkpoint, regenerating the map if it differs.
func (gl *GameLoop) Restore(st RotationState) {
	gl.Controller.Restore(st)
	gl.syncMap()
	gl.lastRotation = gl.Controller.Rotation()
}

func (gl *GameLoop) loadMarkers() {
	for _, mk := range gl.GameState.Map.Markers {
		gl.Controller.OnEntity(mk.Code, mk.Pos)
	}
}

// syncMap loads the controller's current map if the world still shows another one.
func (gl *GameLoop) syncMap() {
	name := gl.Controller.CurrentMap()
	if name == gl.GameState.Map.Name {
		return
	}
	cfg := gl.Controller.Config()
	gl.GameState.LoadMap(GenerateMap(name, cfg.Map.Width, cfg.Map.Height, cfg.Map.WallDensity))
	gl.Controller.ClearSpawns()
	gl.loadMarkers()
	gl.log.Info("map loaded", zap.String("map", name), zap.Int("markers", len(gl.GameState.Map.Markers)))
}

func (gl *GameLoop) Run() {
	tickSpeed := gl.Controller.Config().Server.TickSpeed
	ticker := time.NewTicker(time.Second / time.Duration(tickSpeed))
	defer ticker.Stop()

	gl.log.Info("game loop started", zap.Int("tick_speed", tickSpeed))

	for {
		select {
		case input := <-gl.InputChan:
			gl.handleInput(input)

		case <-ticker.C:
			gl.Step()
			snapshots := gl.Snapshots()
			// Skip frame if network is busy
			select {
			case gl.SnapshotChan <- snapshots:
			default:
			}

		case <-gl.StopChan:
			gl.log.Info("game loop stopped")
			return
		}
	}
}

// Step runs one simulation tick.
func (gl *GameLoop) Step() {
	gs := gl.GameState
	c := gl.Controller
	gs.AdvanceTick()

	dt := 1.0 / float64(c.Config().Server.TickSpeed)
	gs.UpdateTick(dt)

	if !c.Phase().GameOver() {
		if humans := gl.Infection.SpreadByContact(); humans == 0 {
			c.EndRound()
		}
	}
	gl.respawnPlayers()

	c.Tick()
	// doors stay open until the antagonist is picked
	gs.SetDoorsOpen(!gl.Infection.Started())

	gl.syncMap()
	if gs.TakeResetRequest() {
		gs.ResetWorld()
		c.PostReset()
	}

	if rot := c.Rotation(); rot != gl.lastRotation {
		gl.lastRotation = rot
		if gl.OnRotate != nil {
			gl.OnRotate(rot)
		}
	}
}

func (gl *GameLoop) respawnPlayers() {
	gs := gl.GameState
	if gs.Paused() {
		return
	}
	for i, p := range gs.Players {
		if !gs.Spawning(i) {
			continue
		}
		var pos Vector2
		var ok bool
		if p.Infected {
			pos, ok = gl.Controller.InfectedSpawn()
		} else {
			pos, ok = gl.Controller.CanSpawn(p.Team)
		}
		if !ok {
			continue // retry next tick
		}
		gl.Controller.OnSpawn(gs.PlaceCharacter(i, pos))
	}
}

func (gl *GameLoop) handleInput(input PlayerInput) {
	gs := gl.GameState
	c := gl.Controller
	id := input.ClientID

	switch input.Type {
	case InputJoin:
		p, ok := gs.AddPlayer(input.SessionID, input.Name)
		if !ok {
			input.Reply <- JoinResult{ClientID: -1}
			return
		}
		if team := c.AutoTeam(p.ClientID); c.CanJoinTeam(team, p.ClientID) {
			gs.SetTeam(p.ClientID, team)
			if team == TeamRed {
				gs.Infect(p.ClientID)
			}
		}
		c.OnPlayerInfoChange(p)
		input.Reply <- JoinResult{ClientID: p.ClientID, OK: true}
	case InputLeave:
		gs.RemovePlayer(id)
	case InputMove:
		gs.HandleInput(id, input.Dir)
	case InputKill:
		p := gs.Player(id)
		if victim := gs.KillCharacter(id); victim != nil {
			c.OnDeath(victim, p, WeaponSelf)
		}
	case InputTeam:
		team := c.ClampTeam(input.Team)
		if p := gs.Player(id); p != nil && c.CanJoinTeam(team, id) {
			gs.SetTeam(id, team)
			p.LastActionTick = gs.Tick()
			c.OnPlayerInfoChange(p)
		}
	case InputChangeMap:
		c.ChangeMap(input.Map)
	}
}

// Snapshots builds one frame per connected player.
func (gl *GameLoop) Snapshots() map[int]Snapshot {
	gs := gl.GameState
	chars := gs.Characters()
	pickups := make([]Pickup, 0, len(gs.Pickups))
	for _, pk := range gs.Pickups {
		if pk.Available(gs.Tick()) {
			pickups = append(pickups, *pk)
		}
	}
	doors := make([]Door, 0, len(gs.Doors))
	for _, d := range gs.Doors {
		doors = append(doors, *d)
	}
	out := make(map[int]Snapshot)
	for i, p := range gs.Players {
		if p == nil {
			continue
		}
		visible := gs.AOI.VisibleCharacters(p.Character, gs.Map, chars)
		views := make([]PlayerView, 0, len(visible))
		for _, ch := range visible {
			other := gs.Players[ch.ClientID]
			views = append(views, PlayerView{
				ClientID: ch.ClientID,
				Name:     other.Name,
				Team:     other.Team,
				Infected: other.Infected,
				Score:    other.Score,
				Pos:      ch.Pos,
				Health:   ch.Health,
			})
		}
		out[i] = Snapshot{
			Tick:    gs.Tick(),
			Map:     gs.Map.Name,
			Round:   gl.Controller.Snap(i),
			Self:    *p,
			Players: views,
			Pickups: pickups,
			Doors:   doors,
		}
	}
	return out
}
