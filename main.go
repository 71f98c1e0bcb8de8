package main

import (
	"fmt"
	"io"
	"os"

	"snake-arcade/game"
	"snake-arcade/game/clock"
	"snake-arcade/game/types"
	"snake-arcade/ui"
	"snake-arcade/ui/term"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "snake is a single-window arcade snake game",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		runWindow(types.DefaultConfig())
	},
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "term plays snake inside the terminal",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		// the terminal belongs to termbox while playing
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
		return term.Run(types.DefaultConfig())
	},
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	rootCmd.AddCommand(termCmd)
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runWindow(cfg types.Config) {
	width, height := cfg.WindowSize()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	clk := clock.NewFrameClock(nil)
	g := game.NewEngine(cfg, clk)
	g.StartNewGame()

	renderer := ui.NewRenderer()
	surface := ui.NewRaylibSurface()

	for !rl.WindowShouldClose() {
		ui.PollKeys(g)

		if clk.Due() {
			g.Tick()
		}

		// redrawn every frame
		rl.BeginDrawing()
		renderer.Draw(surface, g.Snapshot())
		rl.EndDrawing()
	}

	log.WithField("games", len(g.GamesPlayed())).Info("window closed")
}
