// Package config provides YAML-based configuration loading for the pong host.
// Only display, logging and server settings are configurable; game rules are
// fixed in the pong package.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config contains all host configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Colors  ColorConfig   `yaml:"colors"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// DisplayConfig defines scheduling and the world-to-terminal scale.
type DisplayConfig struct {
	TickRate   int     `yaml:"tick_rate"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// ColorConfig names the colors of the game entities.
type ColorConfig struct {
	LeftPaddle  string `yaml:"left_paddle"`
	RightPaddle string `yaml:"right_paddle"`
	Ball        string `yaml:"ball"`
	Score       string `yaml:"score"`
	Background  string `yaml:"background"`
}

// LogConfig defines the log file and its rotation.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Validate checks that the config can drive the game.
func (c Config) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("%w: display.tick_rate must be positive, got %d", ErrInvalid, c.Display.TickRate)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("%w: display cell size must be positive, got %vx%v",
			ErrInvalid, c.Display.CellWidth, c.Display.CellHeight)
	}

	colors := map[string]string{
		"colors.left_paddle":  c.Colors.LeftPaddle,
		"colors.right_paddle": c.Colors.RightPaddle,
		"colors.ball":         c.Colors.Ball,
		"colors.score":        c.Colors.Score,
		"colors.background":   c.Colors.Background,
	}
	for field, name := range colors {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, field, name)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout_minutes must not be negative", ErrInvalid)
	}
	return nil
}

// Runtime returns the runtime config for a cols x rows terminal.
func (c Config) Runtime(cols, rows int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  cols,
		ScreenH:  rows,
		TickRate: c.Display.TickRate,
		CellW:    c.Display.CellWidth,
		CellH:    c.Display.CellHeight,
	}
}

// PongColors converts the color names. Unknown names fall back to the
// default color; Validate reports them.
func (c Config) PongColors() pong.Colors {
	parse := func(name string) core.Color {
		col, _ := core.ParseColor(name)
		return col
	}
	return pong.Colors{
		Left:       parse(c.Colors.LeftPaddle),
		Right:      parse(c.Colors.RightPaddle),
		Ball:       parse(c.Colors.Ball),
		Score:      parse(c.Colors.Score),
		Background: parse(c.Colors.Background),
	}
}
