package logic

// RoundSnapshot is the round state sent to every viewer each tick.
type RoundSnapshot struct {
	GameFlags      int `json:"game_flags" msgpack:"game_flags"`
	GameStateFlags int `json:"game_state_flags" msgpack:"game_state_flags"`
	RoundStartTick int `json:"round_start_tick" msgpack:"round_start_tick"`
	WarmupTimer    int `json:"warmup_timer" msgpack:"warmup_timer"`
	ScoreLimit     int `json:"score_limit" msgpack:"score_limit"`
	TimeLimit      int `json:"time_limit" msgpack:"time_limit"`
	RoundNum       int `json:"round_num" msgpack:"round_num"`
	RoundCurrent   int `json:"round_current" msgpack:"round_current"`
	TeamScoreRed   int `json:"team_score_red" msgpack:"team_score_red"`
	TeamScoreBlue  int `json:"team_score_blue" msgpack:"team_score_blue"`
}

// Snap builds the round state for viewerID. Every viewer currently sees the same fields.
func (c *Controller) Snap(viewerID int) RoundSnapshot {
	snap := RoundSnapshot{
		GameFlags:      c.gameFlags,
		RoundStartTick: c.roundStartTick,
		WarmupTimer:    c.phase.WarmupTimer(),
		ScoreLimit:     c.cfg.Round.ScoreLimit,
		TimeLimit:      c.cfg.Round.TimeLimitMin,
		RoundCurrent:   c.roundCount + 1,
		TeamScoreRed:   c.teamScore[TeamRed],
		TeamScoreBlue:  c.teamScore[TeamBlue],
	}
	if c.phase.GameOver() {
		snap.GameStateFlags |= GameStateFlagGameOver
	}
	if c.suddenDeath {
		snap.GameStateFlags |= GameStateFlagSuddenDeath
	}
	if c.world.Paused() {
		snap.GameStateFlags |= GameStateFlagPaused
	}
	if len(ParseRotation(c.cfg.Map.Rotation)) > 0 && c.cfg.Map.RoundsPerMap > 0 {
		snap.RoundNum = c.cfg.Map.RoundsPerMap
	}
	return snap
}
