// Package audio synthesizes the weapon's sound cues with beep and plays
// them through a shared mixer.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Gunplay/internal/game"
)

// DefaultSampleRate is used when a zero rate is requested.
const DefaultSampleRate = beep.SampleRate(44100)

// Generator builds a fresh streamer for one play of a cue.
type Generator func(rate beep.SampleRate) beep.Streamer

// Sink receives streamers to play. *Output and *beep.Mixer both qualify.
type Sink interface {
	Add(s ...beep.Streamer)
}

// SoundBank maps cue names to generators. It implements game.SoundPlayer.
type SoundBank struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	sink   Sink
	gens   map[game.Sound]Generator
	played map[game.Sound]int
	log    zerolog.Logger
}

// NewSoundBank creates a bank with the stock weapon cues registered.
// A nil sink makes every PlaySound a no-op.
func NewSoundBank(rate beep.SampleRate, sink Sink, log zerolog.Logger) *SoundBank {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	b := &SoundBank{
		rate:   rate,
		sink:   sink,
		gens:   make(map[game.Sound]Generator),
		played: make(map[game.Sound]int),
		log:    log,
	}
	w := game.DefaultWeaponConfig()
	b.Register(w.FireSound, shotgunBlast)
	b.Register(w.ReloadSound, reloadCycle)
	b.Register(w.EmptySound, dryClick)
	return b
}

// Register binds name to gen, replacing any earlier binding.
func (b *SoundBank) Register(name game.Sound, gen Generator) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gens[name] = gen
}

// Has reports whether name is registered.
func (b *SoundBank) Has(name game.Sound) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.gens[name]
	return ok
}

// PlaySound implements game.SoundPlayer. Unknown names are logged and
// otherwise ignored.
func (b *SoundBank) PlaySound(name game.Sound) {
	b.mu.Lock()
	gen, ok := b.gens[name]
	if ok {
		b.played[name]++
	}
	b.mu.Unlock()

	if !ok {
		b.log.Debug().Str("sound", string(name)).Msg("unknown sound cue")
		return
	}
	if b.sink == nil {
		return
	}
	b.sink.Add(gen(b.rate))
}

// Played returns how many times name has been triggered.
func (b *SoundBank) Played(name game.Sound) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.played[name]
}

// Output is the speaker-backed Sink.
type Output struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewOutput creates an output that is silent until Initialize succeeds.
func NewOutput(rate beep.SampleRate) *Output {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Output{rate: rate, mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. Calling it twice is a no-op.
func (o *Output) Initialize() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.initialized {
		return nil
	}
	if err := speaker.Init(o.rate, o.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(o.mixer)
	o.initialized = true
	return nil
}

// Add implements Sink. Before Initialize the streamers are dropped.
func (o *Output) Add(s ...beep.Streamer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		return
	}
	speaker.Lock()
	o.mixer.Add(s...)
	speaker.Unlock()
}

// Close silences everything still playing.
func (o *Output) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		return
	}
	speaker.Clear()
	o.initialized = false
}
