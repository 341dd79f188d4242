// Package config loads the game configuration from TOML with environment overrides
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/stellar-assault/audio"
	"github.com/lixenwraith/stellar-assault/leaderboard"
	"github.com/lixenwraith/stellar-assault/parameter"
)

// DefaultPath is the config file used when -config is not given
const DefaultPath = "config.toml"

// Config is the on-disk configuration
type Config struct {
	Game        GameConfig          `toml:"game"`
	Audio       AudioConfig         `toml:"audio"`
	Leaderboard LeaderboardConfig   `toml:"leaderboard"`
	Log         LogConfig           `toml:"log"`
	Keys        map[string][]string `toml:"keys,omitempty"`
}

type GameConfig struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	TouchMode bool    `toml:"touch_mode"`
	TickRate  int     `toml:"tick_rate"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

type LeaderboardConfig struct {
	URL           string   `toml:"url"`
	CachePath     string   `toml:"cache_path"`
	SubmitTimeout Duration `toml:"submit_timeout"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Duration is a time.Duration written as a string ("5s") in TOML
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Game: GameConfig{
			Width:    parameter.GameWidth,
			Height:   parameter.GameHeight,
			TickRate: parameter.TickRate,
		},
		Audio: AudioConfig{
			Enabled:      ac.Enabled,
			MasterVolume: ac.MasterVolume,
			SampleRate:   ac.SampleRate,
		},
		Leaderboard: LeaderboardConfig{
			CachePath:     filepath.Join("data", "scores.msgpack"),
			SubmitTimeout: Duration{parameter.SubmitTimeout},
		},
	}
}

// Load reads path over the defaults; a missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
			}
		}
	}
	applyEnv(cfg, os.Getenv)
	cfg.normalize()
	return cfg, nil
}

// Save writes the config as TOML, creating parent directories
func Save(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if url := getenv("STELLAR_LEADERBOARD_URL"); url != "" {
		cfg.Leaderboard.URL = url
	}
	if debug := getenv("STELLAR_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Log.Debug = val
		}
	}
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	def := Default()
	if c.Game.Width <= 0 {
		c.Game.Width = def.Game.Width
	}
	if c.Game.Height <= 0 {
		c.Game.Height = def.Game.Height
	}
	if c.Game.TickRate <= 0 || c.Game.TickRate > 1000 {
		c.Game.TickRate = def.Game.TickRate
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = def.Audio.MasterVolume
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
	if c.Leaderboard.SubmitTimeout.Duration <= 0 {
		c.Leaderboard.SubmitTimeout = def.Leaderboard.SubmitTimeout
	}
}

// TickInterval is the scheduler period for the configured tick rate
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Game.TickRate)
}

// AudioSettings builds the audio service config, then applies the audio env overrides
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	return audio.ApplyEnv(ac)
}

// LeaderboardSettings builds the websocket client config
func (c *Config) LeaderboardSettings() *leaderboard.Config {
	lc := leaderboard.DefaultConfig()
	lc.URL = c.Leaderboard.URL
	lc.CachePath = c.Leaderboard.CachePath
	return lc
}
