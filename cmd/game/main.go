package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Gunplay/internal/audio"
	"github.com/Garsondee/Gunplay/internal/config"
	"github.com/Garsondee/Gunplay/internal/logging"
	"github.com/Garsondee/Gunplay/internal/sandbox"
)

func main() {
	var (
		cfgPath string
		seed    int64
		mute    bool
	)
	flag.StringVar(&cfgPath, "config", "", "config file (json, toml or yaml)")
	flag.Int64Var(&seed, "seed", 1, "spread RNG seed")
	flag.BoolVar(&mute, "mute", false, "disable audio regardless of config")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(logging.Options{Level: cfg.LogLevel, Console: true})

	if err := run(cfg, seed, mute, log); err != nil {
		log.Error().Err(err).Msg("game exited")
		os.Exit(1)
	}
}

// run owns the audio device for the lifetime of the window, so it is closed
// on every return path.
func run(cfg config.Config, seed int64, mute bool, log zerolog.Logger) error {
	opts := []sandbox.Option{sandbox.WithSeed(seed)}
	if cfg.Sandbox.AudioEnabled && !mute {
		rate := beep.SampleRate(cfg.Sandbox.SampleRate)
		out := audio.NewOutput(rate)
		if err := out.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, running silent")
		}
		defer out.Close()
		bank := audio.NewSoundBank(rate, out, logging.Component(log, "audio"))
		opts = append(opts, sandbox.WithSound(bank))
	}

	g := sandbox.New(cfg, log, opts...)
	w, h := g.Size()
	ebiten.SetWindowTitle("Gunplay Range")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(cfg.Sandbox.TPS)
	log.Info().Str("weapon", cfg.Weapon.Name).Int("tps", cfg.Sandbox.TPS).Msg("starting range")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
