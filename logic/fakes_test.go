package logic

import "math/rand"

type fakeWorld struct {
	tick    int
	chars   []*Character
	blocked func(Vector2) bool
	paused  bool
	resets  int
}

func (w *fakeWorld) Tick() int                { return w.tick }
func (w *fakeWorld) Characters() []*Character { return w.chars }

func (w *fakeWorld) FindCharactersNear(pos Vector2, radius float64) []*Character {
	var out []*Character
	for _, ch := range w.chars {
		if Distance(ch.Pos, pos) < radius+ch.ProximityRadius {
			out = append(out, ch)
		}
	}
	return out
}

func (w *fakeWorld) CheckPointBlocked(pos Vector2) bool {
	return w.blocked != nil && w.blocked(pos)
}

func (w *fakeWorld) Paused() bool          { return w.paused }
func (w *fakeWorld) SetPaused(paused bool) { w.paused = paused }
func (w *fakeWorld) RequestReset()         { w.resets++ }

type fakeRoster struct {
	players  [MaxClients]*Player
	kicked   map[int]string
	respawns []int
}

func newFakeRoster() *fakeRoster {
	return &fakeRoster{kicked: make(map[int]string)}
}

// add puts a player on team in slot id.
func (r *fakeRoster) add(id int, team Team) *Player {
	p := &Player{ClientID: id, Team: team}
	r.players[id] = p
	return p
}

func (r *fakeRoster) Player(id int) *Player {
	if id < 0 || id >= MaxClients {
		return nil
	}
	return r.players[id]
}

func (r *fakeRoster) SetTeam(id int, team Team) {
	if p := r.Player(id); p != nil {
		p.Team = team
	}
}

func (r *fakeRoster) Kick(id int, reason string) {
	r.kicked[id] = reason
	r.players[id] = nil
}

func (r *fakeRoster) Respawn(id int) { r.respawns = append(r.respawns, id) }

func (r *fakeRoster) Infect(id int) {
	if p := r.Player(id); p != nil {
		p.Infected = true
		p.Team = TeamRed
	}
}

type fakeInfection struct {
	phases  []InfectionPhase
	count   int
	started bool
}

func (f *fakeInfection) StartPhase(phase InfectionPhase) { f.phases = append(f.phases, phase) }
func (f *fakeInfection) PlayerCount() int                { return f.count }
func (f *fakeInfection) Started() bool                   { return f.started }

func (f *fakeInfection) last() InfectionPhase {
	if len(f.phases) == 0 {
		return -1
	}
	return f.phases[len(f.phases)-1]
}

type createdPickup struct {
	kind   PickupType
	weapon Weapon
	pos    Vector2
}

type fakeFactory struct {
	pickups []createdPickup
	doors   []int
}

func (f *fakeFactory) CreatePickup(kind PickupType, weapon Weapon, pos Vector2) {
	f.pickups = append(f.pickups, createdPickup{kind, weapon, pos})
}

func (f *fakeFactory) CreateDoor(door int, pos Vector2) { f.doors = append(f.doors, door) }

type harness struct {
	c         *Controller
	world     *fakeWorld
	roster    *fakeRoster
	infection *fakeInfection
	factory   *fakeFactory
}

func newHarness(cfg *GameConfig) *harness {
	h := &harness{
		world:     &fakeWorld{},
		roster:    newFakeRoster(),
		infection: &fakeInfection{},
		factory:   &fakeFactory{},
	}
	h.c = NewController(cfg, Deps{
		World:     h.world,
		Roster:    h.roster,
		Infection: h.infection,
		Factory:   h.factory,
		Rand:      rand.New(rand.NewSource(1)),
	})
	return h
}

// testConfig is the default config with no warmup and a small tick rate.
func testConfig() *GameConfig {
	cfg := DefaultGameConfig()
	cfg.Server.TickSpeed = 10
	cfg.Round.WarmupSec = 0
	cfg.Inactivity.KickMinutes = 0
	return cfg
}

func character(id int, team Team, x, y float64) *Character {
	return NewCharacter(id, team, Vector2{X: x, Y: y})
}
