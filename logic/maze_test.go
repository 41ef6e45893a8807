package logic

import (
	"reflect"
	"testing"
)

// openMap is a walled box with no inner walls.
func openMap(name string, w, h int, markers ...MapMarker) *GameMap {
	m := GenerateMap(name, w, h, 0)
	m.Markers = markers
	return m
}

func TestGenerateMapIsDeterministic(t *testing.T) {
	a := GenerateMap("zesc1", 40, 24, 0.2)
	b := GenerateMap("zesc1", 40, 24, 0.2)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same name should give the same map")
	}
	c := GenerateMap("zesc2", 40, 24, 0.2)
	if reflect.DeepEqual(a.Tiles, c.Tiles) {
		t.Fatalf("different names should give different layouts")
	}
}

func TestGenerateMapMarkers(t *testing.T) {
	m := GenerateMap("zesc1", 48, 32, 0.12)
	for x := 0; x < m.Width; x++ {
		if m.Tiles[0][x] != TileWall || m.Tiles[m.Height-1][x] != TileWall {
			t.Fatalf("border column %d is open", x)
		}
	}

	want := 0
	for _, l := range markerLayout {
		want += l.count
	}
	if len(m.Markers) != want {
		t.Fatalf("expected %d markers, got %d", want, len(m.Markers))
	}
	seen := make(map[Vector2]bool)
	for _, mk := range m.Markers {
		if m.IsSolid(mk.Pos) {
			t.Fatalf("marker %d at %+v is inside a wall", mk.Code, mk.Pos)
		}
		if seen[mk.Pos] {
			t.Fatalf("two markers share %+v", mk.Pos)
		}
		seen[mk.Pos] = true
	}
}

func TestIsSolidOutsideMap(t *testing.T) {
	m := openMap("box", 10, 10)
	if !m.IsSolid(Vector2{X: -1, Y: 50}) || !m.IsSolid(Vector2{X: 50, Y: 10*TileSize + 1}) {
		t.Fatalf("outside the map must be solid")
	}
	if m.IsSolid(TileCenter(3, 3)) {
		t.Fatalf("inner tile should be open")
	}
	if !m.HasLineOfSight(TileCenter(1, 1), TileCenter(8, 8)) {
		t.Fatalf("open box should have line of sight")
	}
	m.Tiles[4][4] = TileWall
	if m.HasLineOfSight(TileCenter(1, 1), TileCenter(8, 8)) {
		t.Fatalf("wall on the diagonal should block sight")
	}
}
