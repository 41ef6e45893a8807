package logic

// Tee colours used when team play forces custom colours.
var teamColors = [2]int{65387, 10223467}

const spectatorColor = 12895054

// ClampTeam maps any requested team id onto a valid one.
func ClampTeam(team Team, teamplay bool) Team {
	if team < 0 {
		return TeamSpectators
	}
	if !teamplay {
		return TeamRed
	}
	return team & 1
}

func (c *Controller) ClampTeam(team Team) Team {
	return ClampTeam(team, c.IsTeamplay())
}

// AutoTeam picks the team for a player joining mid-game: once the infection
// is running everybody new is infected.
func (c *Controller) AutoTeam(notThisID int) Team {
	if c.infection.Started() && !c.phase.InfectionWarmupActive() {
		return TeamRed
	}
	return TeamBlue
}

// CanJoinTeam reports whether notThisID may switch to team.
func (c *Controller) CanJoinTeam(team Team, notThisID int) bool {
	if team == TeamSpectators {
		return true
	}
	if p := c.roster.Player(notThisID); p != nil && p.Team != TeamSpectators {
		return true
	}

	playing := 0
	for i := 0; i < MaxClients; i++ {
		if i == notThisID {
			continue
		}
		if p := c.roster.Player(i); p != nil && (p.Team == TeamRed || p.Team == TeamBlue) {
			playing++
		}
	}
	return playing < c.cfg.Server.MaxClients-c.cfg.Server.SpectatorSlots
}

// IsFriendlyFire reports whether damage between two clients is between teammates.
func (c *Controller) IsFriendlyFire(id1, id2 int) bool {
	if id1 == id2 || !c.IsTeamplay() {
		return false
	}
	p1, p2 := c.roster.Player(id1), c.roster.Player(id2)
	if p1 == nil || p2 == nil {
		return false
	}
	return p1.Team == p2.Team
}

// SetForceBalance is called by the balancer when teams need evening out.
func (c *Controller) SetForceBalance() {
	c.forceBalanced = true
}

// ConsumeForceBalance returns the pending flag and clears it.
func (c *Controller) ConsumeForceBalance() bool {
	if !c.forceBalanced {
		return false
	}
	c.forceBalanced = false
	return true
}

func (c *Controller) CanBeMovedOnBalance(id int) bool {
	return true
}

func (c *Controller) TeamName(team Team) string {
	if c.IsTeamplay() {
		switch team {
		case TeamRed:
			return "red team"
		case TeamBlue:
			return "blue team"
		}
	} else if team == 0 {
		return "game"
	}
	return "spectators"
}

// OnPlayerInfoChange forces team colours in team play.
func (c *Controller) OnPlayerInfoChange(p *Player) {
	if !c.IsTeamplay() {
		return
	}
	p.Colors.UseCustom = true
	color := spectatorColor
	if p.Team == TeamRed || p.Team == TeamBlue {
		color = teamColors[p.Team]
	}
	p.Colors.Body = color
	p.Colors.Feet = color
}
