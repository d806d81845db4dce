// Package config provides YAML-based configuration loading for the pong
// presenters. It covers presentation only: the game rules are fixed.
package config

import "time"

// Config contains all presenter configuration.
type Config struct {
	Play   PlayConfig   `yaml:"play"`
	Keys   KeyConfig    `yaml:"keys"`
	Sound  SoundConfig  `yaml:"sound"`
	Theme  ThemeConfig  `yaml:"theme"`
	Log    LogConfig    `yaml:"log"`
	SSH    SSHConfig    `yaml:"ssh"`
	Window WindowConfig `yaml:"window"`
}

// PlayConfig defines the simulation loop of the terminal presenter.
type PlayConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
	// HoldMs is how long a key counts as held after its last press or
	// auto-repeat. Terminals report no key releases.
	HoldMs int `yaml:"hold_ms"`
}

// HoldWindow returns HoldMs as a duration.
func (p PlayConfig) HoldWindow() time.Duration {
	return time.Duration(p.HoldMs) * time.Millisecond
}

// KeyConfig lists the keys bound to each action, in Bubble Tea key names.
type KeyConfig struct {
	LeftUp    []string `yaml:"left_up"`
	LeftDown  []string `yaml:"left_down"`
	RightUp   []string `yaml:"right_up"`
	RightDown []string `yaml:"right_down"`
	Confirm   []string `yaml:"confirm"`
	Quit      []string `yaml:"quit"`
}

// SoundConfig controls sound cue playback.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0, window presenter only
}

// ThemeConfig maps color roles to terminal colors.
// Keys are role names ("paddle", "puck", ...), values are ANSI codes or
// hex colors as accepted by lipgloss.
type ThemeConfig struct {
	Colors map[string]string `yaml:"colors"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards logs in the terminal presenter
}

// SSHConfig configures `pong serve`.
type SSHConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	HostKey        string `yaml:"host_key"` // Empty uses ~/.pong/host_key
	IdleTimeoutSec int    `yaml:"idle_timeout_sec"`
}

// IdleTimeout returns IdleTimeoutSec as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSec) * time.Second
}

// WindowConfig configures the desktop window presenter.
type WindowConfig struct {
	Scale float64 `yaml:"scale"` // Window size relative to the 800x600 board
	Title string  `yaml:"title"`
}
