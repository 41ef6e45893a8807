package logic

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// Tile types
const (
	TileEmpty = 0
	TileWall  = 1
)

// TileSize is the width of one tile in world units.
const TileSize = 32.0

// MapMarker is a static entity placed in the map's game layer.
type MapMarker struct {
	Code int     `json:"code" msgpack:"code"`
	Pos  Vector2 `json:"pos" msgpack:"pos"`
}

type GameMap struct {
	Name    string      `json:"name" msgpack:"name"`
	Width   int         `json:"width" msgpack:"width"`
	Height  int         `json:"height" msgpack:"height"`
	Tiles   [][]int     `json:"tiles" msgpack:"tiles"` // 0: Walkable, 1: Wall
	Markers []MapMarker `json:"-" msgpack:"-"`
}

// markerLayout is how many markers of each code a generated map carries.
var markerLayout = []struct {
	code  int
	count int
}{
	{EntitySpawn, 4},
	{EntitySpawnRed, 3},
	{EntitySpawnBlue, 4},
	{EntityHealth, 3},
	{EntityWeaponShotgun, 1},
	{EntityWeaponGrenade, 1},
	{EntityWeaponRifle, 1},
	{EntityPowerupNinja, 1},
	{EntityDoorFirst, 1},
}

func mapSeed(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}

// GenerateMap builds the layout for name. The same name always yields the same map.
func GenerateMap(name string, width, height int, density float64) *GameMap {
	rng := rand.New(rand.NewSource(mapSeed(name)))
	tiles := make([][]int, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]int, width)
		for x := 0; x < width; x++ {
			// Borders are always walls
			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				tiles[y][x] = TileWall
			} else if rng.Float64() < density {
				tiles[y][x] = TileWall
			} else {
				tiles[y][x] = TileEmpty
			}
		}
	}
	m := &GameMap{
		Name:   name,
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}

	used := make(map[[2]int]bool)
	for _, l := range markerLayout {
		for i := 0; i < l.count; i++ {
			x, y, ok := m.randomEmptyTile(rng, used)
			if !ok {
				break
			}
			used[[2]int{x, y}] = true
			m.Markers = append(m.Markers, MapMarker{Code: l.code, Pos: TileCenter(x, y)})
		}
	}
	return m
}

func (m *GameMap) randomEmptyTile(rng *rand.Rand, used map[[2]int]bool) (int, int, bool) {
	for attempt := 0; attempt < m.Width*m.Height; attempt++ {
		x := rng.Intn(m.Width-2) + 1
		y := rng.Intn(m.Height-2) + 1
		if m.Tiles[y][x] == TileEmpty && !used[[2]int{x, y}] {
			return x, y, true
		}
	}
	return 0, 0, false
}

// TileCenter returns the world position of the middle of tile (x, y).
func TileCenter(x, y int) Vector2 {
	return Vector2{X: (float64(x) + 0.5) * TileSize, Y: (float64(y) + 0.5) * TileSize}
}

// IsSolid checks collision with grid; outside the map counts as solid.
func (m *GameMap) IsSolid(pos Vector2) bool {
	gridX := int(math.Floor(pos.X / TileSize))
	gridY := int(math.Floor(pos.Y / TileSize))

	if gridX < 0 || gridX >= m.Width || gridY < 0 || gridY >= m.Height {
		return true
	}
	return m.Tiles[gridY][gridX] != TileEmpty
}

// HasLineOfSight samples the segment a quarter tile at a time.
func (m *GameMap) HasLineOfSight(from, to Vector2) bool {
	d := Distance(from, to)
	steps := int(d/(TileSize/4)) + 1
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		p := Vector2{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t}
		if m.IsSolid(p) {
			return false
		}
	}
	return true
}
