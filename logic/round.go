package logic

import (
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Deps are the collaborators a Controller drives.
type Deps struct {
	World     World
	Roster    Roster
	Infection Infection
	Factory   EntityFactory
	Rand      *rand.Rand
}

// Controller runs the round lifecycle of one room: warmup, infection,
// game over, map rotation, spawns and scoring. Not safe for concurrent use;
// the host calls it from its tick goroutine only.
type Controller struct {
	cfg       *GameConfig
	world     World
	roster    Roster
	infection Infection
	factory   EntityFactory
	rng       *rand.Rand
	log       *zap.Logger

	phase          Phase
	suddenDeath    bool
	roundStartTick int
	roundCount     int
	mapWish        string
	currentMap     string
	gameFlags      int
	teamScore      [2]int
	lastInfected   int
	lastInfected2  int
	forceBalanced  bool

	spawns [numSpawnCategories]*SpawnList
}

func NewController(cfg *GameConfig, deps Deps) *Controller {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Controller{
		cfg:           cfg,
		world:         deps.World,
		roster:        deps.Roster,
		infection:     deps.Infection,
		factory:       deps.Factory,
		rng:           rng,
		log:           Logger.With(zap.String("game_type", cfg.Round.GameType)),
		currentMap:    cfg.Map.Name,
		lastInfected:  -1,
		lastInfected2: -1,
	}
	if cfg.Round.Teamplay {
		c.gameFlags |= GameFlagTeams
	}
	for i := range c.spawns {
		c.spawns[i] = NewSpawnList(MaxClients)
	}
	c.phase = NewPhase(c.secondsToTicks(cfg.Round.WarmupSec))
	c.roundStartTick = c.world.Tick()
	return c
}

// SetConfig swaps the configuration between ticks. The current map is kept.
func (c *Controller) SetConfig(cfg *GameConfig) {
	c.cfg = cfg
	c.gameFlags = 0
	if cfg.Round.Teamplay {
		c.gameFlags |= GameFlagTeams
	}
}

func (c *Controller) Config() *GameConfig { return c.cfg }

func (c *Controller) tickSpeed() int { return c.cfg.Server.TickSpeed }

func (c *Controller) secondsToTicks(sec int) int { return sec * c.tickSpeed() }

func (c *Controller) IsTeamplay() bool { return c.gameFlags&GameFlagTeams != 0 }

func (c *Controller) Phase() Phase        { return c.phase }
func (c *Controller) SuddenDeath() bool   { return c.suddenDeath }
func (c *Controller) RoundCount() int     { return c.roundCount }
func (c *Controller) RoundStartTick() int { return c.roundStartTick }
func (c *Controller) CurrentMap() string  { return c.currentMap }
func (c *Controller) MapWish() string     { return c.mapWish }

// Tick advances the round by one simulation step.
func (c *Controller) Tick() {
	now := c.world.Tick()
	next, events := c.phase.Advance(now, c.tickSpeed())
	c.phase = next
	for _, ev := range events {
		switch ev {
		case EventInfectionWarmupDone:
			c.onInfectionWarmupDone()
		case EventWarmupDone:
			c.StartRound()
		case EventRestartDue:
			rotated := c.CycleMap()
			c.StartRound()
			// a new map starts counting from its first round
			if !rotated {
				c.roundCount++
			}
		}
	}

	c.checkSuddenDeath()
	c.checkTimeLimit(now)
	c.sweepInactive(now)
}

func (c *Controller) onInfectionWarmupDone() {
	if c.infection.PlayerCount() >= c.cfg.Infection.MinPlayers {
		if _, ok := c.RandomInfected(); ok {
			return
		}
		c.log.Warn("no eligible player to infect, restarting infection")
	}
	c.infection.StartPhase(InfectionInitial)
}

// DoWarmup arms the match warmup. Negative seconds mean none.
func (c *Controller) DoWarmup(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.phase = c.phase.WithWarmup(c.secondsToTicks(seconds))
}

// StartInfectionWarmup arms the delay before an antagonist is picked.
func (c *Controller) StartInfectionWarmup(seconds int) {
	c.phase = c.phase.WithInfectionWarmup(c.secondsToTicks(seconds))
}

func (c *Controller) resetGame() {
	c.world.RequestReset()
}

// StartRound resets the match and arms the infection for the new round.
func (c *Controller) StartRound() {
	c.resetGame()

	now := c.world.Tick()
	c.roundStartTick = now
	c.suddenDeath = false
	c.phase = c.phase.Started()

	c.infection.StartPhase(InfectionInitial)
	if c.infection.PlayerCount() >= c.cfg.Infection.MinPlayers {
		c.infection.StartPhase(InfectionArmed)
		c.StartInfectionWarmup(c.cfg.Infection.WarmupSec)
	} else {
		c.suddenDeath = true
	}

	c.world.SetPaused(false)
	c.teamScore = [2]int{}
	c.forceBalanced = false
	c.log.Info("start round",
		zap.String("map", c.currentMap),
		zap.Bool("teamplay", c.IsTeamplay()))
}

// EndRound pauses the world and starts the game-over wait. No-op during warmup.
func (c *Controller) EndRound() {
	next, ok := c.phase.Ended(c.world.Tick())
	if !ok {
		return
	}
	c.phase = next
	c.world.SetPaused(true)
	c.suddenDeath = false
}

// ChangeMap requests a forced map change and ends the round.
func (c *Controller) ChangeMap(name string) {
	c.mapWish = strings.TrimSpace(name)
	c.EndRound()
}

func isRotationSeparator(r rune) bool {
	return r == ';' || r == ',' || r == ' ' || r == '\t'
}

// ParseRotation splits a rotation string into map names.
func ParseRotation(rotation string) []string {
	return strings.FieldsFunc(rotation, isRotationSeparator)
}

// NextMap returns the rotation entry after current, wrapping to the first
// entry when current is last or missing.
func NextMap(rotation []string, current string) string {
	if len(rotation) == 0 {
		return ""
	}
	for i, name := range rotation {
		if name == current {
			return rotation[(i+1)%len(rotation)]
		}
	}
	return rotation[0]
}

// CycleMap applies a pending map wish or advances the rotation. It reports
// whether the map changed.
func (c *Controller) CycleMap() bool {
	if c.mapWish != "" {
		c.setMap(c.mapWish)
		c.mapWish = ""
		return true
	}

	rotation := ParseRotation(c.cfg.Map.Rotation)
	if len(rotation) == 0 {
		return false
	}
	if c.roundCount < c.cfg.Map.RoundsPerMap-1 {
		return false
	}
	c.setMap(NextMap(rotation, c.currentMap))
	return true
}

func (c *Controller) setMap(name string) {
	c.log.Info("rotating map", zap.String("map", name))
	c.currentMap = name
	c.roundCount = 0
}

// RandomInfected converts a random eligible player into the antagonist.
// The previous pick is never repeated; the one before that only when
// fewer than NoRepeatGapPlayers are eligible.
func (c *Controller) RandomInfected() (int, bool) {
	eligible := make([]int, 0, MaxClients)
	for i := 0; i < MaxClients; i++ {
		if p := c.roster.Player(i); p != nil && p.Team != TeamSpectators {
			eligible = append(eligible, i)
		}
	}
	excludeGap := len(eligible) >= c.cfg.Infection.NoRepeatGapPlayers

	candidates := eligible[:0]
	for _, id := range eligible {
		if id == c.lastInfected || (excludeGap && id == c.lastInfected2) {
			continue
		}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		return -1, false
	}

	id := candidates[c.rng.Intn(len(candidates))]
	c.roster.Infect(id)
	c.infection.StartPhase(InfectionArmed)
	c.lastInfected2 = c.lastInfected
	c.lastInfected = id
	return id, true
}

// LastInfected returns the previous and the two-rounds-prior antagonist (-1 if none).
func (c *Controller) LastInfected() (int, int) {
	return c.lastInfected, c.lastInfected2
}

// checkSuddenDeath restarts a round that began short of players once enough have joined.
func (c *Controller) checkSuddenDeath() {
	if !c.suddenDeath || c.phase.Primary != StateActive || c.phase.InfectionWarmupActive() {
		return
	}
	if c.infection.PlayerCount() < c.cfg.Infection.MinPlayers {
		return
	}
	c.log.Info("enough players joined, restarting round",
		zap.Int("players", c.infection.PlayerCount()))
	c.StartRound()
}

// checkTimeLimit awards the humans when they survive the time limit.
func (c *Controller) checkTimeLimit(now int) {
	if c.phase.Primary != StateActive || c.phase.InfectionWarmupActive() ||
		c.suddenDeath || c.cfg.Round.TimeLimitMin <= 0 {
		return
	}
	if now-c.roundStartTick < c.cfg.Round.TimeLimitMin*c.tickSpeed()*60 {
		return
	}
	c.teamScore[TeamBlue] += HumansWinBonus
	c.infection.StartPhase(InfectionHumansWin)
	c.EndRound()
}

// RotationState is what survives a process restart.
type RotationState struct {
	Map           string
	RoundCount    int
	LastInfected  int
	LastInfected2 int
}

func (c *Controller) Rotation() RotationState {
	return RotationState{
		Map:           c.currentMap,
		RoundCount:    c.roundCount,
		LastInfected:  c.lastInfected,
		LastInfected2: c.lastInfected2,
	}
}

// Restore resumes the rotation from a checkpoint. Spawn points must be reloaded by the caller.
func (c *Controller) Restore(st RotationState) {
	if st.Map != "" {
		c.currentMap = st.Map
	}
	if st.RoundCount >= 0 {
		c.roundCount = st.RoundCount
	}
	c.lastInfected = st.LastInfected
	c.lastInfected2 = st.LastInfected2
}
