package logic

import "testing"

func TestClassifyMarker(t *testing.T) {
	m, ok := ClassifyMarker(EntitySpawnBlue)
	if !ok || m.Kind != MarkerSpawn || m.Category != SpawnBlue {
		t.Fatalf("unexpected marker %+v ok=%v", m, ok)
	}
	m, ok = ClassifyMarker(EntityDoorFirst + 4)
	if !ok || m.Kind != MarkerDoor || m.Door != 4 {
		t.Fatalf("unexpected door %+v ok=%v", m, ok)
	}
	for _, code := range []int{0, EntityFlagStandRed, EntityArmor, 12, EntityDoorLast + 1} {
		if _, ok := ClassifyMarker(code); ok {
			t.Fatalf("code %d should be ignored", code)
		}
	}
}

func TestOnEntityRegistersSpawnsAndEntities(t *testing.T) {
	h := newHarness(testConfig())
	pos := Vector2{X: 16, Y: 16}

	if !h.c.OnEntity(EntitySpawn, pos) || !h.c.OnEntity(EntitySpawnRed, pos) {
		t.Fatalf("spawn markers should register")
	}
	if h.c.SpawnPoints(SpawnNeutral) != 1 || h.c.SpawnPoints(SpawnRed) != 1 {
		t.Fatalf("unexpected spawn counts")
	}
	if !h.c.OnEntity(EntityDoorLast, pos) || len(h.factory.doors) != 1 || h.factory.doors[0] != EntityDoorLast-EntityDoorFirst {
		t.Fatalf("expected a door, got %v", h.factory.doors)
	}
	if !h.c.OnEntity(EntityWeaponRifle, pos) {
		t.Fatalf("rifle should be created")
	}
	if got := h.factory.pickups[0]; got.kind != PickupWeapon || got.weapon != WeaponRifle || got.pos != pos {
		t.Fatalf("unexpected pickup %+v", got)
	}
	if h.c.OnEntity(99, pos) {
		t.Fatalf("unknown codes are ignored")
	}
}

func TestOnEntityHonoursItemSettings(t *testing.T) {
	cfg := testConfig()
	cfg.Items.Powerups = false
	h := newHarness(cfg)
	if h.c.OnEntity(EntityPowerupNinja, Vector2{}) {
		t.Fatalf("ninja needs powerups")
	}
	if !h.c.OnEntity(EntityHealth, Vector2{}) {
		t.Fatalf("health is not a powerup")
	}

	cfg.Items.Disabled = true
	if h.c.OnEntity(EntityHealth, Vector2{}) {
		t.Fatalf("items are disabled")
	}
	if !h.c.OnEntity(EntitySpawn, Vector2{}) {
		t.Fatalf("spawns ignore item settings")
	}
	if len(h.factory.pickups) != 1 {
		t.Fatalf("expected one pickup, got %d", len(h.factory.pickups))
	}
}
