package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Gunplay/internal/config"
	"github.com/Garsondee/Gunplay/internal/game"
	"github.com/Garsondee/Gunplay/internal/logging"
)

func main() {
	var (
		cfgPath string
		seed    int64
		logPath string
	)
	flag.StringVar(&cfgPath, "config", "", "config file (json, toml or yaml)")
	flag.Int64Var(&seed, "seed", 1, "spread RNG seed")
	flag.StringVar(&logPath, "log", "", "write logs to this file (the terminal is taken by the range)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := zerolog.Nop()
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = logging.New(logging.Options{Level: cfg.LogLevel, Out: f})
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	r := newRange(screen, newLane(cfg, seed, log))
	r.run(cfg.Sandbox.TPS)
}

// newLane builds the terminal range: three dummies down a 30 m lane.
func newLane(cfg config.Config, seed int64, log zerolog.Logger) *game.Scenario {
	return game.NewScenario(
		game.WithWeaponConfig(cfg.GameWeapon()),
		game.WithScenarioSeed(seed),
		game.WithRecoverRate(cfg.Weapon.RecoverRate),
		game.WithScenarioLogger(logging.Component(log, "weapon")),
		game.WithScenarioNoiseLogger(logging.Sampled(logging.Component(log, "weapon"), 3, time.Second, 30)),
		game.WithTimestep(1/float64(max(cfg.Sandbox.TPS, 1))),
		game.WithDummy("8m", mgl64.Vec3{-1, 1.5, 8}, 100),
		game.WithDummy("12m", mgl64.Vec3{1, 1.5, 12}, 100),
		game.WithDummy("20m", mgl64.Vec3{0, 1.5, 20}, 100),
	)
}

// run polls input on its own goroutine and steps the range on a ticker.
func (r *rangeView) run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(tps, 1)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !r.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			r.tick()
			r.draw()
		}
	}
}
