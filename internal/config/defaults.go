package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:   60,
			CellWidth:  10,
			CellHeight: 25,
		},
		Colors: ColorConfig{
			LeftPaddle:  "red",
			RightPaddle: "blue",
			Ball:        "white",
			Score:       "white",
			Background:  "gray",
		},
		Log: LogConfig{
			File:       "~/.pong/pong.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
