package logic

import "testing"

func TestClampTeam(t *testing.T) {
	cases := []struct {
		team     Team
		teamplay bool
		want     Team
	}{
		{TeamSpectators, true, TeamSpectators},
		{-5, true, TeamSpectators},
		{TeamRed, true, TeamRed},
		{TeamBlue, true, TeamBlue},
		{7, true, TeamBlue},
		{TeamBlue, false, TeamRed},
	}
	for _, tc := range cases {
		if got := ClampTeam(tc.team, tc.teamplay); got != tc.want {
			t.Fatalf("ClampTeam(%d, %v): expected %d, got %d", tc.team, tc.teamplay, tc.want, got)
		}
	}
}

func TestAutoTeamJoinsInfectedOnceStarted(t *testing.T) {
	h := newHarness(testConfig())
	if got := h.c.AutoTeam(0); got != TeamBlue {
		t.Fatalf("expected humans before the infection, got %d", got)
	}
	h.infection.started = true
	if got := h.c.AutoTeam(0); got != TeamRed {
		t.Fatalf("expected infected once started, got %d", got)
	}
	h.c.StartInfectionWarmup(3)
	if got := h.c.AutoTeam(0); got != TeamBlue {
		t.Fatalf("expected humans during the infection warmup, got %d", got)
	}
}

func TestCanJoinTeamHonoursPlayerSlots(t *testing.T) {
	cfg := testConfig()
	cfg.Server.MaxClients = 3
	cfg.Server.SpectatorSlots = 1
	h := newHarness(cfg)
	h.roster.add(0, TeamRed)
	h.roster.add(1, TeamBlue)
	h.roster.add(2, TeamSpectators)

	if h.c.CanJoinTeam(TeamBlue, 2) {
		t.Fatalf("playing slots are full")
	}
	if !h.c.CanJoinTeam(TeamSpectators, 2) {
		t.Fatalf("spectating is always allowed")
	}
	if !h.c.CanJoinTeam(TeamRed, 1) {
		t.Fatalf("a playing client may always switch")
	}
	h.roster.SetTeam(0, TeamSpectators)
	if !h.c.CanJoinTeam(TeamBlue, 2) {
		t.Fatalf("a slot was freed")
	}
}

func TestIsFriendlyFire(t *testing.T) {
	h := newHarness(testConfig())
	h.roster.add(0, TeamBlue)
	h.roster.add(1, TeamBlue)
	h.roster.add(2, TeamRed)
	if !h.c.IsFriendlyFire(0, 1) {
		t.Fatalf("teammates should be friendly")
	}
	if h.c.IsFriendlyFire(0, 2) || h.c.IsFriendlyFire(0, 0) || h.c.IsFriendlyFire(0, 9) {
		t.Fatalf("unexpected friendly fire")
	}
}

func TestForceBalanceIsReadOnce(t *testing.T) {
	h := newHarness(testConfig())
	if h.c.ConsumeForceBalance() {
		t.Fatalf("nothing pending yet")
	}
	h.c.SetForceBalance()
	if !h.c.ConsumeForceBalance() {
		t.Fatalf("expected pending balance")
	}
	if h.c.ConsumeForceBalance() {
		t.Fatalf("flag should clear after being read")
	}
	if !h.c.CanBeMovedOnBalance(3) {
		t.Fatalf("every player can be moved")
	}
}

func TestTeamNameAndColors(t *testing.T) {
	h := newHarness(testConfig())
	if got := h.c.TeamName(TeamBlue); got != "blue team" {
		t.Fatalf("got %q", got)
	}
	if got := h.c.TeamName(TeamSpectators); got != "spectators" {
		t.Fatalf("got %q", got)
	}

	p := h.roster.add(0, TeamRed)
	h.c.OnPlayerInfoChange(p)
	if !p.Colors.UseCustom || p.Colors.Body != teamColors[TeamRed] || p.Colors.Feet != teamColors[TeamRed] {
		t.Fatalf("unexpected colours %+v", p.Colors)
	}
	p.Team = TeamSpectators
	h.c.OnPlayerInfoChange(p)
	if p.Colors.Body != spectatorColor {
		t.Fatalf("expected spectator colour, got %d", p.Colors.Body)
	}

	cfg := testConfig()
	cfg.Round.Teamplay = false
	ffa := newHarness(cfg)
	if got := ffa.c.TeamName(TeamRed); got != "game" {
		t.Fatalf("got %q", got)
	}
}
