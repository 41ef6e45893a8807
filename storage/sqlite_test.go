package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "zesc.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRotationCheckpoint(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.LoadRotation("alpha"); err != nil || ok {
		t.Fatalf("expected no checkpoint, ok=%v err=%v", ok, err)
	}

	want := Rotation{Map: "zesc2", RoundCount: 1, LastInfected: 3, LastInfected2: -1}
	if err := s.SaveRotation("alpha", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	want.RoundCount = 2
	if err := s.SaveRotation("alpha", want); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := s.LoadRotation("alpha")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if _, ok, _ := s.LoadRotation("beta"); ok {
		t.Fatalf("checkpoints are per room")
	}
}

func TestRecordKick(t *testing.T) {
	s := openTestStore(t)
	id, err := s.RecordKick("alpha", "session-1", "tee", "Kicked for inactivity")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id == "" {
		t.Fatalf("expected an id")
	}
	if _, err := s.RecordKick("alpha", "session-2", "", "bye"); err != nil {
		t.Fatalf("record second: %v", err)
	}

	kicks, err := s.Kicks("alpha")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(kicks) != 2 || kicks[0].ID != id || kicks[0].SessionID != "session-1" || kicks[1].Reason != "bye" {
		t.Fatalf("unexpected kicks %+v", kicks)
	}
	if others, _ := s.Kicks("beta"); len(others) != 0 {
		t.Fatalf("kicks are per room")
	}
}
