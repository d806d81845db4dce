package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/pong.yaml and is used if the embedded file is unusable.
func Default() Config {
	return Config{
		Play: PlayConfig{
			TickRate: 60,
			HoldMs:   150,
		},
		Keys: KeyConfig{
			LeftUp:    []string{"w"},
			LeftDown:  []string{"s"},
			RightUp:   []string{"up"},
			RightDown: []string{"down"},
			Confirm:   []string{"enter", " "},
			Quit:      []string{"q", "ctrl+c", "esc"},
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.4,
		},
		Theme: ThemeConfig{
			Colors: map[string]string{
				"paddle":    "15",
				"puck":      "11",
				"net":       "245",
				"score":     "14",
				"title":     "13",
				"text":      "7",
				"highlight": "10",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Host:           "0.0.0.0",
			Port:           23234,
			IdleTimeoutSec: 1800,
		},
		Window: WindowConfig{
			Scale: 1.0,
			Title: "Ping Pong",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
