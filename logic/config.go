package logic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config structs (mirrors game_config.json)
type GameConfig struct {
	Server     ServerConfig     `json:"server"`
	Map        MapConfig        `json:"map"`
	Round      RoundConfig      `json:"round"`
	Infection  InfectionConfig  `json:"infection"`
	Inactivity InactivityConfig `json:"inactivity"`
	Items      ItemsConfig      `json:"items"`
}

type ServerConfig struct {
	TickSpeed      int `json:"tick_speed"` // simulation ticks per second
	MaxClients     int `json:"max_clients"`
	SpectatorSlots int `json:"spectator_slots"`
}

type MapConfig struct {
	Name         string  `json:"name"`
	Rotation     string  `json:"rotation"`
	RoundsPerMap int     `json:"rounds_per_map"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	WallDensity  float64 `json:"wall_density"`
}

type RoundConfig struct {
	GameType     string `json:"game_type"`
	Teamplay     bool   `json:"teamplay"`
	WarmupSec    int    `json:"warmup_sec"`
	ScoreLimit   int    `json:"score_limit"`
	TimeLimitMin int    `json:"time_limit_min"`
}

type InfectionConfig struct {
	// MinPlayers eligible players are needed before anyone gets infected.
	MinPlayers int `json:"min_players"`
	// NoRepeatGapPlayers eligible players are needed before the infected from
	// two rounds ago is excluded as well.
	NoRepeatGapPlayers int `json:"no_repeat_gap_players"`
	WarmupSec          int `json:"warmup_sec"`
}

type InactivityConfig struct {
	KickMinutes int `json:"kick_minutes"` // 0 disables the sweep
	Mode        int `json:"mode"`         // see InactiveSpectate..InactiveKick
}

type ItemsConfig struct {
	Powerups bool `json:"powerups"`
	Disabled bool `json:"disabled"`
}

// DefaultGameConfig returns the configuration used when no file is given.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Server: ServerConfig{TickSpeed: 50, MaxClients: 16},
		Map: MapConfig{
			Name:         "zesc1",
			Rotation:     "zesc1 zesc2 zesc3",
			RoundsPerMap: 1,
			Width:        48,
			Height:       32,
			WallDensity:  0.12,
		},
		Round: RoundConfig{
			GameType:   "zESC",
			Teamplay:   true,
			WarmupSec:  10,
			ScoreLimit: 20,
		},
		Infection:  InfectionConfig{MinPlayers: 2, NoRepeatGapPlayers: 3, WarmupSec: 15},
		Inactivity: InactivityConfig{KickMinutes: 3, Mode: InactiveSpectateOrKick},
		Items:      ItemsConfig{Powerups: true},
	}
}

// LoadGameConfig reads a JSON config on top of the defaults and clamps it.
func LoadGameConfig(path string) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	ClampGameConfig(cfg)
	return cfg, nil
}

// Env holds process settings that come from the environment rather than the game config.
type Env struct {
	ConfigPath string
	Addr       string
	DBPath     string
	Map        string
	Debug      bool
}

// LoadEnv reads an optional .env file and then the process environment.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	env := Env{
		ConfigPath: getenv("ZESC_CONFIG", "game_config.json"),
		Addr:       getenv("ZESC_ADDR", ":8080"),
		DBPath:     getenv("ZESC_DB", "zesc.db"),
		Map:        os.Getenv("ZESC_MAP"),
	}
	if v := os.Getenv("ZESC_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Env{}, fmt.Errorf("ZESC_DEBUG: %w", err)
		}
		env.Debug = debug
	}
	return env, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
