package logic

import (
	"math"
	"strings"
)

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampFloat(v, minV, maxV float64) float64 {
	if math.IsNaN(v) {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// ClampGameConfig enforces hard safety bounds for room configs.
// It mutates cfg in-place so callers can accept user-provided values while guaranteeing sane limits.
func ClampGameConfig(cfg *GameConfig) {
	if cfg == nil {
		return
	}

	// --- server ---
	cfg.Server.TickSpeed = clampInt(cfg.Server.TickSpeed, 5, 100)
	cfg.Server.MaxClients = clampInt(cfg.Server.MaxClients, 1, MaxClients)
	cfg.Server.SpectatorSlots = clampInt(cfg.Server.SpectatorSlots, 0, cfg.Server.MaxClients)

	// --- map ---
	cfg.Map.Name = strings.TrimSpace(cfg.Map.Name)
	cfg.Map.RoundsPerMap = clampInt(cfg.Map.RoundsPerMap, 0, 1000)
	cfg.Map.Width = clampInt(cfg.Map.Width, 16, 256)
	cfg.Map.Height = clampInt(cfg.Map.Height, 16, 256)
	cfg.Map.WallDensity = clampFloat(cfg.Map.WallDensity, 0.0, 0.6)

	// --- round ---
	if cfg.Round.GameType == "" {
		cfg.Round.GameType = "zESC"
	}
	cfg.Round.WarmupSec = clampInt(cfg.Round.WarmupSec, 0, 3600)
	cfg.Round.ScoreLimit = clampInt(cfg.Round.ScoreLimit, 0, 10000)
	cfg.Round.TimeLimitMin = clampInt(cfg.Round.TimeLimitMin, 0, 600)

	// --- infection ---
	cfg.Infection.MinPlayers = clampInt(cfg.Infection.MinPlayers, 2, MaxClients)
	// the two-rounds-prior exclusion is waived below three eligible players
	cfg.Infection.NoRepeatGapPlayers = clampInt(cfg.Infection.NoRepeatGapPlayers, 3, MaxClients)
	cfg.Infection.WarmupSec = clampInt(cfg.Infection.WarmupSec, 0, 600)

	// --- inactivity ---
	cfg.Inactivity.KickMinutes = clampInt(cfg.Inactivity.KickMinutes, 0, 1000)
	cfg.Inactivity.Mode = clampInt(cfg.Inactivity.Mode, InactiveSpectate, InactiveKick)
}
