package logic

const (
	// HumansWinBonus is added to the human team when it survives the time limit.
	HumansWinBonus = 100
	// selfKillRespawnSec is the extra respawn delay after a self kill.
	selfKillRespawnSec = 3
	spawnHealth        = 10
	spawnGunAmmo       = 10
)

// TeamScore returns the red and blue team scores.
func (c *Controller) TeamScore() (red, blue int) {
	return c.teamScore[TeamRed], c.teamScore[TeamBlue]
}

// OnDeath scores a character death. killer may be nil.
func (c *Controller) OnDeath(victim *Character, killer *Player, weapon Weapon) {
	if killer == nil || weapon == WeaponGame {
		return
	}
	victimPlayer := c.roster.Player(victim.ClientID)
	if victimPlayer == nil {
		return
	}

	switch {
	case killer == victimPlayer:
		victimPlayer.Score--
	case c.IsTeamplay() && victimPlayer.Team == killer.Team:
		killer.Score--
	default:
		killer.Score++
	}

	if weapon == WeaponSelf {
		victimPlayer.RespawnTick = c.world.Tick() + c.secondsToTicks(selfKillRespawnSec)
	}
}

// OnSpawn equips a freshly spawned character.
func (c *Controller) OnSpawn(chr *Character) {
	chr.IncreaseHealth(spawnHealth)
	chr.GiveWeapon(WeaponHammer, UnlimitedAmmo)
	chr.GiveWeapon(WeaponGun, spawnGunAmmo)
}

// PostReset runs after the host rebuilt the world: everybody respawns with a clean score.
func (c *Controller) PostReset() {
	now := c.world.Tick()
	for i := 0; i < MaxClients; i++ {
		p := c.roster.Player(i)
		if p == nil {
			continue
		}
		c.roster.Respawn(i)
		p.Score = 0
		p.ScoreStartTick = now
		p.RespawnTick = now + c.tickSpeed()/2
	}
}
