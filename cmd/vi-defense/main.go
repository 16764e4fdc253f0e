package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-defense/config"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/manifest"
	"github.com/lixenwraith/vi-defense/parameter"
)

var (
	levelFlag    = flag.String("level", "", "Level file, defaults to "+config.DefaultPath+" then the embedded level")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/vi-defense.log")
	headlessFlag = flag.Bool("headless", false, "Simulate without the terminal viewer")
	ticksFlag    = flag.Int("ticks", 60*parameter.TicksPerSecond, "Ticks to simulate in headless mode")
	seedFlag     = flag.Uint64("seed", 0, "Override the level seed")
	systemsFlag  = flag.String("systems", "", "Comma-separated systems to run, defaults to all")
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic recovery restores the terminal through the registered cleanup
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	runID := uuid.New()
	log.SetPrefix(fmt.Sprintf("[%s] ", runID.String()[:8]))

	w, err := newWorld(*levelFlag, *seedFlag, splitList(*systemsFlag)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runHeadless(ctx, w, *ticksFlag, runID, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Headless run failed: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runViewer(ctx, w); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	return 0
}

// newWorld loads a level and installs the named systems, all active systems when none are given
func newWorld(path string, seed uint64, systems ...string) (*engine.World, error) {
	cfg, err := config.LoadAuto(path)
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	level, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	log.Printf("[MAIN] level %q seed %d, path length %d", level.Name, level.Seed, level.PathLength())

	w := engine.NewWorld(level)
	if err := manifest.Install(w, systems...); err != nil {
		return nil, err
	}
	return w, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
