package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/duckpond/animation"
	"github.com/lixenwraith/duckpond/audio"
	"github.com/lixenwraith/duckpond/config"
	"github.com/lixenwraith/duckpond/game"
	"github.com/lixenwraith/duckpond/sprite"
)

var (
	spritePackFlag string
	watchFlag      bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <event>",
	Short: "Loop one event animation, for art and timing work",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID := args[0]
		known := false
		for _, id := range animation.AnimatedEvents() {
			if id == eventID {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("no animation for %q, try one of %v", eventID, animation.AnimatedEvents())
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logFile := setupLogging(debugFlag); logFile != nil {
			defer logFile.Close()
		}

		if spritePackFlag != "" {
			if err := sprite.LoadPack(spritePackFlag); err != nil {
				return err
			}
		}

		var watcher *fsnotify.Watcher
		if watchFlag {
			if spritePackFlag == "" {
				return fmt.Errorf("--watch needs --sprites")
			}
			watcher, err = fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()
			if err := watcher.Add(spritePackFlag); err != nil {
				return fmt.Errorf("watch %s: %w", spritePackFlag, err)
			}
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		defer screen.Fini()

		// Sound stays un-initialized in preview: cues become no-ops.
		g := game.New(screen, cfg, audio.NewManager(audio.DefaultConfig()))
		return previewLoop(g, screen, eventID, watcher, cfg)
	},
}

// previewLoop re-triggers the event whenever its animation ends, and
// re-merges the sprite pack when the watcher reports a change.
func previewLoop(g *game.Game, screen tcell.Screen, eventID string, watcher *fsnotify.Watcher, cfg *config.Config) error {
	ticker := time.NewTicker(time.Duration(cfg.FrameMillis) * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var watchEvents chan fsnotify.Event
	if watcher != nil {
		watchEvents = make(chan fsnotify.Event, 4)
		go func() {
			for ev := range watcher.Events {
				watchEvents <- ev
			}
		}()
	}

	for {
		select {
		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				return nil
			}
		case ev := <-watchEvents:
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				if err := sprite.LoadPack(spritePackFlag); err != nil {
					slog.Warn("sprite pack reload failed", "error", err)
				} else {
					slog.Info("sprite pack reloaded", "path", spritePackFlag)
				}
			}
		case <-ticker.C:
			if !g.Paused() && !g.Animating() {
				g.TriggerEvent(eventID)
			}
			g.Tick()
		}
	}
}

func init() {
	previewCmd.Flags().StringVar(&spritePackFlag, "sprites", "", "Overlay an external YAML sprite pack")
	previewCmd.Flags().BoolVar(&watchFlag, "watch", false, "Reload the sprite pack when it changes")
}
