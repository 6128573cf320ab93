package game

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_TwoBarrelsDropCloseDummy(t *testing.T) {
	s := NewScenario(
		WithDummy("close", mgl64.Vec3{0, 1.5, 5}, 100),
		WithFireEvery(0, 0.55, 2),
	)
	s.Dummies[0].Mass = 1000 // barely moves, so the second volley sees the same target
	s.RunFor(0.6)

	r := s.Result()
	assert.Equal(t, 2, r.Stats.Shots)
	assert.Equal(t, 16, r.Stats.PelletHits, "every pellet should land at 5m")
	assert.Equal(t, 1, r.DummiesDown)
	assert.Equal(t, 1.0, r.HitRate)
	assert.Greater(t, s.Dummies[0].WorldPosition().Z(), 5.0, "impacts should shove the dummy away")
	if t.Failed() {
		t.Log(s.Log.Format())
	}
}

func TestScenario_SameSeedSameOutcome(t *testing.T) {
	run := func(seed int64) ScenarioResult {
		s := NewScenario(
			WithScenarioSeed(seed),
			WithDummy("far", mgl64.Vec3{0.6, 1.5, 30}, 500),
			WithFireEvery(0, 0.25, 24),
		)
		s.RunFor(8)
		return s.Result()
	}
	assert.Equal(t, run(7), run(7))
}

func TestScenario_HoldingFireCyclesMagazine(t *testing.T) {
	s := NewScenario(WithFireEvery(0, 1.0/60, 300))
	s.RunFor(5)

	r := s.Result()
	// 2 shots per magazine, 2.0s per cycle (0.5 interval then 1.5 reload).
	assert.GreaterOrEqual(t, r.Stats.Shots, 5)
	assert.Equal(t, 24-2*r.Stats.Reloads, r.Reserve)
	assert.Zero(t, r.Stats.EmptyClicks)
	assert.Positive(t, r.Stats.Rejected)

	shots := s.Log.Filter(CatFire, "shot")
	for i := 1; i < len(shots); i++ {
		assert.GreaterOrEqual(t, shots[i].Time-shots[i-1].Time, 0.5-1e-9)
	}
}

func TestScenario_RecoilRecoversBetweenShots(t *testing.T) {
	s := NewScenario(WithFireEvery(0, 1, 1), WithRecoverRate(20))
	s.RunFor(0)
	assert.Greater(t, s.Recoil.Offset(), 0.0)

	at := s.RunUntil(func(s *Scenario) bool { return s.Recoil.Offset() == 0 }, 2)
	require.GreaterOrEqual(t, at, 0.0, "recoil never recovered")
	assert.InDelta(t, 0, NormalizeAngle(s.Camera.Pitch()), 1e-9)
}

func TestScenario_ReloadPress(t *testing.T) {
	s := NewScenario(
		WithFireEvery(0, 1, 1),
		WithPress(0.1, Input{Reload: true}),
	)
	s.RunFor(1.7)

	r := s.Result()
	assert.Equal(t, 2, r.ShellsLoaded)
	assert.Equal(t, 23, r.Reserve)
	assert.Equal(t, 1, r.Stats.Reloads)
}

func TestScenario_AdvanceMergesLiveInput(t *testing.T) {
	s := NewScenario(WithDummy("close", mgl64.Vec3{0, 1.5, 5}, 1000))
	s.Advance(Input{Fire: true})
	s.Advance(Input{})
	require.Equal(t, 1, s.Weapon.Stats().Shots)
	require.Equal(t, 2, s.Tick)

	s.Advance(Input{Reload: true})
	require.True(t, s.Weapon.Reloading())
}

func TestScenario_NoiseLoggerReachesWeapon(t *testing.T) {
	var buf bytes.Buffer
	s := NewScenario(
		WithScenarioNoiseLogger(zerolog.New(&buf)),
		WithFireEvery(0, 0.1, 3),
	)
	s.RunFor(0.3)
	require.Equal(t, 1, s.Weapon.Stats().Shots)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("trigger rate limited")))
}
