package logic

// InfectionTracker is the infection sub-controller used by the room host.
type InfectionTracker struct {
	gs    *GameState
	phase InfectionPhase
}

func NewInfectionTracker(gs *GameState) *InfectionTracker {
	return &InfectionTracker{gs: gs}
}

// StartPhase switches phase. Going back to the initial phase cures everybody.
func (t *InfectionTracker) StartPhase(phase InfectionPhase) {
	t.phase = phase
	if phase != InfectionInitial {
		return
	}
	for i, p := range t.gs.Players {
		if p != nil && p.Infected {
			t.gs.SetTeam(i, TeamBlue)
		}
	}
}

func (t *InfectionTracker) Phase() InfectionPhase { return t.phase }

// PlayerCount is the number of connected non-spectators.
func (t *InfectionTracker) PlayerCount() int {
	n := 0
	for _, p := range t.gs.Players {
		if p != nil && p.Team != TeamSpectators {
			n++
		}
	}
	return n
}

func (t *InfectionTracker) Started() bool {
	return t.phase == InfectionArmed && t.infectedCount() > 0
}

func (t *InfectionTracker) infectedCount() int {
	n := 0
	for _, p := range t.gs.Players {
		if p != nil && p.Infected {
			n++
		}
	}
	return n
}

// SpreadByContact infects every human touching an infected character and
// returns how many human players are left.
func (t *InfectionTracker) SpreadByContact() int {
	if !t.Started() {
		return -1
	}
	chars := t.gs.Characters()
	for _, h := range chars {
		if h.Team != TeamBlue {
			continue
		}
		touched := false
		for _, z := range chars {
			if z.Team == TeamRed && Distance(z.Pos, h.Pos) <= z.ProximityRadius+h.ProximityRadius {
				touched = true
				break
			}
		}
		if touched {
			t.gs.Infect(h.ClientID)
		}
	}

	humans := 0
	for _, p := range t.gs.Players {
		if p != nil && p.Team == TeamBlue {
			humans++
		}
	}
	return humans
}
