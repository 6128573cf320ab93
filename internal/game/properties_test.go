package game

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"
)

type tickStep struct {
	dt     float64
	fire   bool
	reload bool
}

func genTickStep() *rapid.Generator[tickStep] {
	return rapid.Custom(func(t *rapid.T) tickStep {
		return tickStep{
			dt:     rapid.Float64Range(0, 0.4).Draw(t, "dt"),
			fire:   rapid.Bool().Draw(t, "fire"),
			reload: rapid.Bool().Draw(t, "reload"),
		}
	})
}

func genWeaponConfig(t *rapid.T) WeaponConfig {
	cfg := DefaultWeaponConfig()
	cfg.MagazineCapacity = rapid.IntRange(0, 6).Draw(t, "capacity")
	cfg.ReserveAmmo = rapid.IntRange(0, 10).Draw(t, "reserve")
	cfg.InfiniteReserve = rapid.Bool().Draw(t, "infinite")
	cfg.FireInterval = rapid.Float64Range(0, 1).Draw(t, "interval")
	cfg.ReloadTime = rapid.Float64Range(0, 2).Draw(t, "reloadTime")
	cfg.PelletsPerShot = rapid.IntRange(0, 4).Draw(t, "pellets")
	return cfg
}

// runSteps drives a weapon through a random input sequence and checks the
// magazine bounds after every tick.
func runSteps(t *rapid.T, cfg WeaponConfig) (*FireControl, *EventLog) {
	fc, el := newTestWeapon(cfg)
	steps := rapid.SliceOfN(genTickStep(), 1, 80).Draw(t, "steps")
	now := 0.0
	for i, s := range steps {
		now += s.dt
		fc.Tick(s.dt, Input{Fire: s.fire, Reload: s.reload}, now)
		if fc.CurrentAmmo() < 0 || fc.CurrentAmmo() > cfg.MagazineCapacity {
			t.Fatalf("step %d: shells=%d outside [0,%d]", i, fc.CurrentAmmo(), cfg.MagazineCapacity)
		}
		if !cfg.InfiniteReserve && fc.ReserveAmmo() < 0 {
			t.Fatalf("step %d: reserve went negative: %d", i, fc.ReserveAmmo())
		}
	}
	return fc, el
}

func TestProperty_ShellsStayWithinMagazine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runSteps(t, genWeaponConfig(t))
	})
}

func TestProperty_ShotsNeverCloserThanFireInterval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := genWeaponConfig(t)
		_, el := runSteps(t, cfg)
		shots := el.Filter(CatFire, "shot")
		for i := 1; i < len(shots); i++ {
			if gap := shots[i].Time - shots[i-1].Time; gap < cfg.FireInterval {
				t.Fatalf("shots %d and %d only %.4f apart (interval %.4f)", i-1, i, gap, cfg.FireInterval)
			}
		}
	})
}

func TestProperty_BarrelsAlternateAcrossShots(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		_, el := runSteps(t, genWeaponConfig(t))
		for i, s := range el.Filter(CatFire, "shot") {
			if int(s.NumVal) != i%2 {
				t.Fatalf("shot %d fired barrel %d", i, int(s.NumVal))
			}
		}
	})
}

func TestProperty_NoShotDuringReload(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		_, el := runSteps(t, genWeaponConfig(t))
		reloading := false
		var doneAt float64
		for _, e := range el.Entries() {
			switch {
			case e.Category == CatReload && e.Key == "start":
				reloading, doneAt = true, e.NumVal
			case e.Category == CatReload && e.Key == "done":
				if e.Time < doneAt {
					t.Fatalf("reload finished at %.4f before its due time %.4f", e.Time, doneAt)
				}
				reloading = false
			case e.Category == CatFire && e.Key == "shot" && reloading:
				t.Fatalf("shot at %.4f while reloading", e.Time)
			}
		}
	})
}

func TestProperty_ZeroConeReturnsForward(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fwd := mgl64.Vec3{
			rapid.Float64Range(-10, 10).Draw(t, "x"),
			rapid.Float64Range(-10, 10).Draw(t, "y"),
			rapid.Float64Range(-10, 10).Draw(t, "z"),
		}
		cone := rapid.Float64Range(-30, 0).Draw(t, "cone")
		s := NewSpreadSamplerFrom(rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed"))))
		if got := s.Sample(fwd, cone); got != fwd {
			t.Fatalf("Sample(%v, %v) = %v, want forward unchanged", fwd, cone, got)
		}
	})
}

func TestProperty_RecoilFullyRecovers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kick := rapid.Float64Range(0.001, 45).Draw(t, "kick")
		rate := rapid.Float64Range(0.5, 100).Draw(t, "rate")
		dt := kick/rate*1.01 + rapid.Float64Range(0, 1).Draw(t, "extra")
		start := rapid.Float64Range(-720, 720).Draw(t, "pitch")

		cam := &Camera{}
		cam.SetPitch(start)
		rc := NewRecoilController(cam, rate)
		rc.ApplyKick(kick)
		rc.Tick(dt)

		if rc.Offset() != 0 {
			t.Fatalf("offset %.6f left after full recovery", rc.Offset())
		}
		if diff := NormalizeAngle(cam.Pitch() - start); diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("pitch drifted by %.9f after kick and recovery", diff)
		}
	})
}
