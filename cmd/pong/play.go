package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pong locally",
	Long: `Start a two-player game in this terminal.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  P          - Pause
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Logs are written to the file named in the config (default ~/.pong/pong.log).

Examples:
  pong play
  pong play --fps 30
  pong play --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size, the game resizes itself on the first WindowSizeMsg
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, err := logging.New(cfg.Log, "pong", false)
	if err != nil {
		return err
	}
	defer logger.Close()

	game := pong.NewWithColors(cfg.PongColors())
	if err := tui.Run(game, cfg.Runtime(width, height), logger.Logger); err != nil {
		logger.Error("game failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
