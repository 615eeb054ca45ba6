package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/duckpond/animation"
	"github.com/lixenwraith/duckpond/events"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the pond events and which have animations",
	Run: func(cmd *cobra.Command, args []string) {
		animated := make(map[string]bool)
		for _, id := range animation.AnimatedEvents() {
			animated[id] = true
		}

		for _, def := range events.Table {
			marker := "text only"
			if animated[def.ID] {
				marker = "animated"
			}
			fmt.Printf("%-15s %-9s %s\n", def.ID, marker, def.Message)
		}
	},
}
