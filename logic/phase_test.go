package logic

import "testing"

func advanceN(p Phase, now *int, n, tickSpeed int) (Phase, []PhaseEvent) {
	var all []PhaseEvent
	for i := 0; i < n; i++ {
		*now++
		var ev []PhaseEvent
		p, ev = p.Advance(*now, tickSpeed)
		all = append(all, ev...)
	}
	return p, all
}

func TestPhaseWarmupCountsDown(t *testing.T) {
	p := NewPhase(3)
	if !p.WarmupActive() || p.WarmupTimer() != 3 {
		t.Fatalf("expected 3 tick warmup, got %+v", p)
	}
	now := 0
	p, ev := advanceN(p, &now, 2, 10)
	if len(ev) != 0 || p.WarmupTimer() != 1 {
		t.Fatalf("expected 1 tick left and no events, got %+v %v", p, ev)
	}
	p, ev = advanceN(p, &now, 1, 10)
	if len(ev) != 1 || ev[0] != EventWarmupDone {
		t.Fatalf("expected warmup done, got %v", ev)
	}
	if p.Primary != StateActive {
		t.Fatalf("expected active, got %v", p.Primary)
	}
}

func TestPhaseWithoutWarmupIsActive(t *testing.T) {
	p := NewPhase(0)
	if p.Primary != StateActive || p.GameOverTick != -1 {
		t.Fatalf("unexpected phase %+v", p)
	}
}

func TestPhaseInfectionOverlayRunsFirst(t *testing.T) {
	p := NewPhase(1).WithInfectionWarmup(1)
	if p.WarmupTimer() != 1 {
		t.Fatalf("expected overlay timer, got %d", p.WarmupTimer())
	}
	p, ev := p.Advance(1, 10)
	if len(ev) != 2 || ev[0] != EventInfectionWarmupDone || ev[1] != EventWarmupDone {
		t.Fatalf("expected overlay then warmup events, got %v", ev)
	}
	if p.InfectionWarmupActive() {
		t.Fatalf("overlay should be cleared")
	}
}

func TestPhaseEndedRefusedDuringWarmups(t *testing.T) {
	if _, ok := NewPhase(10).Ended(5); ok {
		t.Fatalf("round must not end during warmup")
	}
	if _, ok := NewPhase(0).WithInfectionWarmup(10).Ended(5); ok {
		t.Fatalf("round must not end during infection warmup")
	}
	p, ok := NewPhase(0).Ended(5)
	if !ok || !p.GameOver() || p.GameOverTick != 5 {
		t.Fatalf("expected game over at 5, got %+v ok=%v", p, ok)
	}
}

func TestPhaseRestartAfterGameOverDelay(t *testing.T) {
	const tickSpeed = 10
	p, _ := NewPhase(0).Ended(100)
	now := 100
	p, ev := advanceN(p, &now, tickSpeed*GameOverDelaySec, tickSpeed)
	if len(ev) != 0 || !p.GameOver() {
		t.Fatalf("restart fired early: %v %+v", ev, p)
	}
	p, ev = advanceN(p, &now, 1, tickSpeed)
	if len(ev) != 1 || ev[0] != EventRestartDue {
		t.Fatalf("expected restart, got %v", ev)
	}
	if p.GameOver() || p.GameOverTick != -1 {
		t.Fatalf("expected the game-over tick cleared, got %+v", p)
	}
}

func TestPhaseWarmupReplacesGameOver(t *testing.T) {
	p, _ := NewPhase(0).Ended(7)
	p = p.WithWarmup(20)
	if p.GameOver() || p.Primary != StateWarmup || p.GameOverTick != -1 {
		t.Fatalf("expected warmup to replace game over, got %+v", p)
	}
	p = p.WithWarmup(0)
	if p.Primary != StateActive {
		t.Fatalf("expected cancelled warmup to be active, got %v", p.Primary)
	}
}
