package audio

import (
	"bytes"
	"testing"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/Gunplay/internal/game"
)

type recordingSink struct {
	added []beep.Streamer
}

func (r *recordingSink) Add(s ...beep.Streamer) { r.added = append(r.added, s...) }

func TestSoundBank_PlaysStockCues(t *testing.T) {
	sink := &recordingSink{}
	b := NewSoundBank(8000, sink, zerolog.Nop())
	w := game.DefaultWeaponConfig()

	for _, s := range []game.Sound{w.FireSound, w.ReloadSound, w.EmptySound} {
		assert.True(t, b.Has(s), "%s should be registered", s)
		b.PlaySound(s)
	}
	b.PlaySound(w.FireSound)

	assert.Len(t, sink.added, 4)
	assert.Equal(t, 2, b.Played(w.FireSound))
}

func TestSoundBank_UnknownCueIsLoggedAndSkipped(t *testing.T) {
	var buf bytes.Buffer
	sink := &recordingSink{}
	b := NewSoundBank(8000, sink, zerolog.New(&buf))

	b.PlaySound("kazoo")

	assert.Empty(t, sink.added)
	assert.Contains(t, buf.String(), "unknown sound cue")
}

func TestSoundBank_RegisterOverrides(t *testing.T) {
	sink := &recordingSink{}
	b := NewSoundBank(0, sink, zerolog.Nop())
	calls := 0
	b.Register("shotgun_fire", func(rate beep.SampleRate) beep.Streamer {
		calls++
		assert.Equal(t, DefaultSampleRate, rate)
		return beep.Silence(1)
	})
	b.PlaySound("shotgun_fire")
	assert.Equal(t, 1, calls)
}

func TestSoundBank_NilSinkIsSilent(t *testing.T) {
	b := NewSoundBank(8000, nil, zerolog.Nop())
	b.PlaySound("shotgun_fire")
	assert.Equal(t, 1, b.Played("shotgun_fire"))
}

func TestSoundBank_DrivesWeaponCues(t *testing.T) {
	sink := &recordingSink{}
	b := NewSoundBank(8000, sink, zerolog.Nop())
	cfg := game.DefaultWeaponConfig()
	cfg.ReserveAmmo = 0
	muzzles := game.StaticMuzzles{game.IdentityTransform(), game.IdentityTransform()}
	fc := game.NewFireControl(cfg, muzzles, nil, game.WithSound(b))

	fc.Tick(0, game.Input{Fire: true}, 0)
	fc.Tick(0, game.Input{Fire: true}, 1)
	fc.Tick(0, game.Input{Fire: true}, 2)

	assert.Equal(t, 2, b.Played(cfg.FireSound))
	assert.Equal(t, 1, b.Played(cfg.EmptySound))
	assert.Zero(t, b.Played(cfg.ReloadSound))
}

func TestOutput_AddBeforeInitializeIsDropped(t *testing.T) {
	o := NewOutput(8000)
	o.Add(beep.Silence(10))
	o.Close()
}

func TestOutput_CloseWithoutDeviceIsSafe(t *testing.T) {
	o := NewOutput(8000)
	o.Close()
	o.Close()
	o.Add(beep.Silence(10))
	assert.False(t, o.initialized)
}
