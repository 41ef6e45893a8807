package logic

import "go.uber.org/zap"

// Inactivity actions.
const (
	InactiveSpectate       = 0
	InactiveSpectateOrKick = 1
	InactiveKick           = 2
)

const InactivityKickReason = "Kicked for inactivity"

func (c *Controller) sweepInactive(now int) {
	minutes := c.cfg.Inactivity.KickMinutes
	if minutes <= 0 {
		return
	}
	limit := minutes * c.tickSpeed() * 60

	for i := 0; i < MaxClients; i++ {
		p := c.roster.Player(i)
		if p == nil || p.Team == TeamSpectators || p.Authed {
			continue
		}
		if now <= p.LastActionTick+limit {
			continue
		}

		switch c.cfg.Inactivity.Mode {
		case InactiveSpectate:
			c.spectateInactive(i)
		case InactiveSpectateOrKick:
			if c.countSpectators() >= c.cfg.Server.SpectatorSlots {
				c.kickInactive(i)
			} else {
				c.spectateInactive(i)
			}
		case InactiveKick:
			c.kickInactive(i)
		}
	}
}

func (c *Controller) countSpectators() int {
	n := 0
	for i := 0; i < MaxClients; i++ {
		if p := c.roster.Player(i); p != nil && p.Team == TeamSpectators {
			n++
		}
	}
	return n
}

func (c *Controller) spectateInactive(id int) {
	c.log.Info("inactive player", zap.Int("client_id", id), zap.String("action", "spectate"))
	c.roster.SetTeam(id, TeamSpectators)
}

func (c *Controller) kickInactive(id int) {
	c.log.Info("inactive player", zap.Int("client_id", id), zap.String("action", "kick"))
	c.roster.Kick(id, InactivityKickReason)
}
