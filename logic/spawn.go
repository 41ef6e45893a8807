package logic

import "go.uber.org/zap"

// SpawnCategory groups candidate respawn points.
type SpawnCategory int

const (
	SpawnNeutral SpawnCategory = iota
	SpawnRed
	SpawnBlue
	numSpawnCategories
)

func (c SpawnCategory) String() string {
	switch c {
	case SpawnNeutral:
		return "neutral"
	case SpawnRed:
		return "red"
	case SpawnBlue:
		return "blue"
	}
	return "unknown"
}

const (
	SpawnExclusionRadius = 64.0
	SpawnCrowdRadius     = 96.0
	SpawnFreeOffset      = 32.0
)

// freeSpawnOffsets are tried in order: center, left, up, right, down.
var freeSpawnOffsets = [5]Vector2{
	{X: 0, Y: 0},
	{X: -SpawnFreeOffset, Y: 0},
	{X: 0, Y: -SpawnFreeOffset},
	{X: SpawnFreeOffset, Y: 0},
	{X: 0, Y: SpawnFreeOffset},
}

// SpawnList is a fixed-capacity list of spawn coordinates.
type SpawnList struct {
	points   []Vector2
	capacity int
}

func NewSpawnList(capacity int) *SpawnList {
	return &SpawnList{points: make([]Vector2, 0, capacity), capacity: capacity}
}

// Add appends p unless the list is full.
func (l *SpawnList) Add(p Vector2) bool {
	if len(l.points) >= l.capacity {
		return false
	}
	l.points = append(l.points, p)
	return true
}

func (l *SpawnList) Len() int { return len(l.points) }

func (l *SpawnList) At(i int) Vector2 { return l.points[i] }

func (l *SpawnList) Reset() { l.points = l.points[:0] }

// SpawnEval accumulates the best candidate of one spawn request.
type SpawnEval struct {
	Got          bool
	Score        float64
	Pos          Vector2
	FriendlyTeam Team
}

func newSpawnEval() SpawnEval {
	return SpawnEval{FriendlyTeam: NoTeam}
}

// CategoryForTeam is the spawn category owned by team.
func CategoryForTeam(team Team) SpawnCategory {
	return SpawnCategory(1 + int(team)&1)
}

// AddSpawnPoint registers a spawn point, rejecting it with a warning when the category is full.
func (c *Controller) AddSpawnPoint(cat SpawnCategory, pos Vector2) bool {
	if cat < 0 || cat >= numSpawnCategories {
		return false
	}
	if !c.spawns[cat].Add(pos) {
		c.log.Warn("spawn point rejected, category full",
			zap.Stringer("category", cat),
			zap.Int("capacity", c.spawns[cat].capacity))
		return false
	}
	return true
}

// SpawnPoints returns the number of registered points in cat.
func (c *Controller) SpawnPoints(cat SpawnCategory) int {
	return c.spawns[cat].Len()
}

// ClearSpawns forgets every spawn point. Only done on map change.
func (c *Controller) ClearSpawns() {
	for _, l := range c.spawns {
		l.Reset()
	}
}

func (c *Controller) spawnOrder(team Team) []SpawnCategory {
	if c.IsTeamplay() {
		own := CategoryForTeam(team)
		enemy := SpawnCategory(1 + (int(team)+1)&1)
		return []SpawnCategory{own, SpawnNeutral, enemy}
	}
	return []SpawnCategory{SpawnNeutral, SpawnRed, SpawnBlue}
}

// evaluateCategory keeps the safest point of cat that nobody stands near.
func (c *Controller) evaluateCategory(eval *SpawnEval, cat SpawnCategory, chars []*Character) {
	list := c.spawns[cat]
	for i := 0; i < list.Len(); i++ {
		p := list.At(i)
		if len(c.world.FindCharactersNear(p, SpawnExclusionRadius)) > 0 {
			continue
		}
		s := ThreatScore(chars, p, eval.FriendlyTeam)
		if !eval.Got || eval.Score > s {
			eval.Got = true
			eval.Score = s
			eval.Pos = p
		}
	}
}

// findFreeSpawn picks the least crowded point that still has room around it.
func (c *Controller) findFreeSpawn(eval *SpawnEval, cat SpawnCategory) {
	list := c.spawns[cat]
	for i := 0; i < list.Len(); i++ {
		p := list.At(i)
		near := c.world.FindCharactersNear(p, SpawnExclusionRadius)
		s := OccupancyScore(near, p)
		if eval.Got && eval.Score <= s {
			continue
		}
		pos, ok := c.freeOffset(p, near)
		if !ok {
			continue
		}
		eval.Got = true
		eval.Score = s
		eval.Pos = pos
	}
}

func (c *Controller) freeOffset(base Vector2, near []*Character) (Vector2, bool) {
	for _, off := range freeSpawnOffsets {
		p := base.Add(off)
		if c.world.CheckPointBlocked(p) {
			continue
		}
		free := true
		for _, ch := range near {
			if Distance(ch.Pos, p) <= ch.ProximityRadius {
				free = false
				break
			}
		}
		if free {
			return p, true
		}
	}
	return Vector2{}, false
}

// CanSpawn finds a respawn position for a member of team.
func (c *Controller) CanSpawn(team Team) (Vector2, bool) {
	if team == TeamSpectators {
		return Vector2{}, false
	}
	eval := newSpawnEval()
	order := c.spawnOrder(team)
	teamplay := c.IsTeamplay()
	if teamplay {
		eval.FriendlyTeam = team
	}

	chars := c.world.Characters()
	for _, cat := range order {
		c.evaluateCategory(&eval, cat, chars)
		if teamplay && eval.Got {
			break
		}
	}
	if !eval.Got {
		for _, cat := range order {
			c.findFreeSpawn(&eval, cat)
			if teamplay && eval.Got {
				break
			}
		}
	}
	return eval.Pos, eval.Got
}

// InfectedSpawn returns the first red spawn point. It skips the exclusion
// check so antagonist placement stays deterministic.
func (c *Controller) InfectedSpawn() (Vector2, bool) {
	list := c.spawns[SpawnRed]
	if list.Len() == 0 {
		return Vector2{}, false
	}
	return list.At(0), true
}
