// shadowdelve generates a dungeon and lets you walk it in the terminal with
// a limited field of view.
//
// Settings come from SHADOWDELVE_* environment variables; flags override them.
//
//	go run . -seed 42
//	go run . -dump -seed 42 -reveal
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"shadowdelve/internal/config"
	"shadowdelve/internal/dump"
	"shadowdelve/internal/game"
	"shadowdelve/internal/logger"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("shadowdelve", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "map width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "map height")
	fs.IntVar(&cfg.MaxRooms, "rooms", cfg.MaxRooms, "room placement attempts")
	fs.IntVar(&cfg.FOVRadius, "radius", cfg.FOVRadius, "sight radius")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generator seed (0 picks one from the clock)")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "tile theme: classic or emoji")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	logFile := fs.String("log-file", "", "write logs to this file (discarded in the terminal UI otherwise)")
	dumpMap := fs.Bool("dump", false, "print the map as text and exit")
	reveal := fs.Bool("reveal", false, "with -dump, show unexplored tiles too")
	colour := fs.Bool("color", false, "with -dump, colour the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	var logOut io.Writer = os.Stderr
	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	case !*dumpMap:
		logOut = io.Discard
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, logOut)

	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	if *dumpMap {
		fmt.Fprintf(stdout, "seed %d\n", g.Seed())
		return dump.Write(stdout, g.Grid(), g.Sight(), g.World(), dump.Options{Color: *colour, Reveal: *reveal})
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	g.Run(screen)
	return nil
}
