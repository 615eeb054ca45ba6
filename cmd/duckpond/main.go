// Command duckpond runs Cheese the duck's pond in your terminal.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const Version = "v0.2.0"

var (
	configPath string
	debugFlag  bool
)

func main() {
	// Panic recovery: restore the terminal before printing anything,
	// or the trace drowns in raw-mode garbage.
	defer func() {
		if r := recover(); r != nil {
			emergencyReset()
			fmt.Fprintf(os.Stderr, "\nduckpond crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	rootCmd := &cobra.Command{
		Use:   "duckpond",
		Short: "Cheese the Duck - a pond pet for your terminal",
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Println(Version)
				return
			}
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to duckpond config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug logs to logs/duckpond.log")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(eventsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// emergencyReset blindly restores sane terminal state. Used only from
// the panic path, where the screen object may be unusable.
func emergencyReset() {
	// Reset attributes, re-enable the cursor, leave the alt screen.
	fmt.Fprint(os.Stdout, "\x1b[0m\x1b[?25h\x1b[?1049l")
}
