package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/duckpond/audio"
	"github.com/lixenwraith/duckpond/config"
	"github.com/lixenwraith/duckpond/game"
)

var (
	noSoundFlag bool
	colorFlag   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Visit the pond",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if debugFlag {
			cfg.Debug = true
		}
		if noSoundFlag {
			cfg.Sound = false
		}
		if cmd.Flags().Changed("color") {
			cfg.Color = colorFlag
		}

		if logFile := setupLogging(cfg.Debug); logFile != nil {
			defer logFile.Close()
		}

		sound := audio.NewManager(audio.LoadConfig())
		if cfg.Sound {
			if err := sound.Initialize(); err != nil {
				// The pond runs fine silent.
				slog.Warn("audio unavailable", "error", err)
			}
			defer sound.Cleanup()
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		defer screen.Fini()

		slog.Info("pond opening", "width", cfg.Width, "height", cfg.Height)
		return game.New(screen, cfg, sound).Run()
	},
}

func init() {
	playCmd.Flags().BoolVar(&noSoundFlag, "no-sound", false, "Disable sound effects")
	playCmd.Flags().BoolVar(&colorFlag, "color", true, "Use the RGB palette (--color=false for monochrome)")
}
