package logic

// PrimaryState is the exclusive part of the round phase.
type PrimaryState int

const (
	StateActive PrimaryState = iota
	StateWarmup
	StateGameOverWait
)

func (s PrimaryState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateWarmup:
		return "warmup"
	case StateGameOverWait:
		return "game_over"
	}
	return "unknown"
}

// GameOverDelaySec is how long the scoreboard stays up before the next round.
const GameOverDelaySec = 5

// Phase is one primary state plus the infection warmup overlay.
// GameOverTick is -1 unless Primary is StateGameOverWait.
type Phase struct {
	Primary        PrimaryState
	WarmupTicks    int
	GameOverTick   int
	InfectionTicks int
}

// PhaseEvent is a timer expiry reported by Advance.
type PhaseEvent int

const (
	EventInfectionWarmupDone PhaseEvent = iota + 1
	EventWarmupDone
	EventRestartDue
)

func NewPhase(warmupTicks int) Phase {
	return Phase{GameOverTick: -1}.WithWarmup(warmupTicks)
}

func (p Phase) WarmupActive() bool          { return p.Primary == StateWarmup && p.WarmupTicks > 0 }
func (p Phase) InfectionWarmupActive() bool { return p.InfectionTicks > 0 }
func (p Phase) GameOver() bool              { return p.Primary == StateGameOverWait }

// WarmupTimer is the countdown shown to clients; the infection overlay wins.
func (p Phase) WarmupTimer() int {
	if p.InfectionTicks > 0 {
		return p.InfectionTicks
	}
	if p.Primary == StateWarmup {
		return p.WarmupTicks
	}
	return 0
}

// WithWarmup arms (ticks > 0) or cancels the match warmup.
func (p Phase) WithWarmup(ticks int) Phase {
	if ticks > 0 {
		p.Primary = StateWarmup
		p.WarmupTicks = ticks
		p.GameOverTick = -1
		return p
	}
	p.WarmupTicks = 0
	if p.Primary == StateWarmup {
		p.Primary = StateActive
	}
	return p
}

func (p Phase) WithInfectionWarmup(ticks int) Phase {
	if ticks < 0 {
		ticks = 0
	}
	p.InfectionTicks = ticks
	return p
}

// Started is the phase right after a round starts.
func (p Phase) Started() Phase {
	p.Primary = StateActive
	p.WarmupTicks = 0
	p.GameOverTick = -1
	return p
}

// Ended moves to the game-over wait. A round cannot end during either warmup.
func (p Phase) Ended(now int) (Phase, bool) {
	if p.WarmupActive() || p.InfectionWarmupActive() {
		return p, false
	}
	p.Primary = StateGameOverWait
	p.GameOverTick = now
	return p, true
}

// Advance runs one tick of timers: infection overlay first, then the primary state.
func (p Phase) Advance(now, tickSpeed int) (Phase, []PhaseEvent) {
	var events []PhaseEvent
	if p.InfectionTicks > 0 {
		p.InfectionTicks--
		if p.InfectionTicks == 0 {
			events = append(events, EventInfectionWarmupDone)
		}
	}

	switch p.Primary {
	case StateWarmup:
		p.WarmupTicks--
		if p.WarmupTicks <= 0 {
			p.WarmupTicks = 0
			p.Primary = StateActive
			events = append(events, EventWarmupDone)
		}
	case StateGameOverWait:
		if now > p.GameOverTick+tickSpeed*GameOverDelaySec {
			p = p.Started()
			events = append(events, EventRestartDue)
		}
	}
	return p, events
}
