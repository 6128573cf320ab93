package game

import (
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Scenario is a headless firing range used by tests and the headless report.
// It mirrors the sandbox's per-frame update without any rendering and is
// fully deterministic for a given seed and script.
type Scenario struct {
	Weapon  *FireControl
	Recoil  *RecoilController
	Camera  *Camera
	World   *BoxWorld
	Dummies []*Dummy
	Effects *EffectPool
	Log     *EventLog

	Tick int
	Dt   float64

	cfg         WeaponConfig
	seed        int64
	recoverRate float64
	muzzles     StaticMuzzles
	presses     []ScriptedPress
	nextPress   int
	logger      zerolog.Logger
	noise       zerolog.Logger
}

// ScriptedPress is an input edge delivered at a scripted time.
type ScriptedPress struct {
	At    float64
	Input Input
}

// ScenarioOption is a builder function applied during NewScenario.
type ScenarioOption func(*Scenario)

// WithWeaponConfig sets the weapon tuning.
func WithWeaponConfig(cfg WeaponConfig) ScenarioOption {
	return func(s *Scenario) { s.cfg = cfg }
}

// WithScenarioSeed sets the RNG seed for pellet spread.
func WithScenarioSeed(seed int64) ScenarioOption {
	return func(s *Scenario) { s.seed = seed }
}

// WithTimestep sets the fixed frame time.
func WithTimestep(dt float64) ScenarioOption {
	return func(s *Scenario) { s.Dt = dt }
}

// WithRecoverRate sets the recoil recovery rate in degrees per time unit.
func WithRecoverRate(rate float64) ScenarioOption {
	return func(s *Scenario) { s.recoverRate = rate }
}

// WithScenarioLogger sets the diagnostic logger passed to the weapon.
func WithScenarioLogger(l zerolog.Logger) ScenarioOption {
	return func(s *Scenario) { s.logger = l }
}

// WithScenarioNoiseLogger sets the logger for per-frame trigger rejections.
func WithScenarioNoiseLogger(l zerolog.Logger) ScenarioOption {
	return func(s *Scenario) { s.noise = l }
}

// WithDummy places a man-sized practice dummy centred at pos.
func WithDummy(name string, pos mgl64.Vec3, health float64) ScenarioOption {
	return func(s *Scenario) {
		s.Dummies = append(s.Dummies, NewDummy(name, pos, mgl64.Vec3{0.4, 0.9, 0.4}, health))
	}
}

// WithPress schedules an input edge at time at.
func WithPress(at float64, in Input) ScenarioOption {
	return func(s *Scenario) {
		s.presses = append(s.presses, ScriptedPress{At: at, Input: in})
	}
}

// WithFireEvery schedules count fire presses starting at start, period apart.
func WithFireEvery(start, period float64, count int) ScenarioOption {
	return func(s *Scenario) {
		for i := 0; i < count; i++ {
			s.presses = append(s.presses, ScriptedPress{At: start + float64(i)*period, Input: Input{Fire: true}})
		}
	}
}

// NewScenario builds a range with the shooter at the origin facing +Z.
func NewScenario(opts ...ScenarioOption) *Scenario {
	s := &Scenario{
		Dt:          1.0 / 60.0,
		cfg:         DefaultWeaponConfig(),
		seed:        1,
		recoverRate: 20,
		logger:      zerolog.Nop(),
		noise:       zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	sort.SliceStable(s.presses, func(i, j int) bool { return s.presses[i].At < s.presses[j].At })

	s.muzzles = StaticMuzzles{
		{Position: mgl64.Vec3{-0.05, 1.5, 0.6}, Rotation: mgl64.QuatIdent()},
		{Position: mgl64.Vec3{0.05, 1.5, 0.6}, Rotation: mgl64.QuatIdent()},
	}
	s.World = NewBoxWorld()
	for _, d := range s.Dummies {
		s.World.Add(d.Box)
	}
	s.Effects = NewEffectPool(defaultEffectLifetime)
	s.Log = NewEventLog()
	s.Camera = &Camera{}
	s.Recoil = NewRecoilController(s.Camera, s.recoverRate)
	s.Weapon = NewFireControl(s.cfg, s.muzzles, s.World,
		WithSampler(NewSpreadSamplerFrom(rand.New(rand.NewSource(s.seed)))), // #nosec G404 -- test harness
		WithRecoil(s.Recoil),
		WithEffects(s.Effects),
		WithTracers(s.Effects),
		WithFlash(s.Effects),
		WithEventLog(s.Log),
		WithLogger(s.logger),
		WithNoiseLogger(s.noise),
	)
	return s
}

// Now returns the scenario clock.
func (s *Scenario) Now() float64 {
	return float64(s.Tick) * s.Dt
}

// RunFor advances the scenario until the clock passes duration.
func (s *Scenario) RunFor(duration float64) {
	for s.Now() <= duration+1e-9 {
		s.step()
	}
}

// RunUntil advances up to maxTime, stopping early once predicate holds.
// It returns the time the predicate was satisfied, or -1.
func (s *Scenario) RunUntil(predicate func(*Scenario) bool, maxTime float64) float64 {
	for s.Now() <= maxTime+1e-9 {
		s.step()
		if predicate(s) {
			return s.Now() - s.Dt
		}
	}
	return -1
}

// Advance runs one frame with live input merged into any scripted presses.
func (s *Scenario) Advance(live Input) {
	s.stepWith(live)
}

func (s *Scenario) step() {
	s.stepWith(Input{})
}

// stepWith runs one frame at the current clock, then advances it.
func (s *Scenario) stepWith(live Input) {
	now := s.Now()
	in := s.pressesDue(now)
	in.Fire = in.Fire || live.Fire
	in.Reload = in.Reload || live.Reload
	in.Pickup = in.Pickup || live.Pickup

	s.Effects.Update(now)
	s.Weapon.Tick(s.Dt, in, now)
	s.Recoil.Tick(s.Dt)
	for _, d := range s.Dummies {
		d.Step(s.Dt)
	}
	s.Tick++
}

// pressesDue merges every scripted press whose time has come.
func (s *Scenario) pressesDue(now float64) Input {
	var in Input
	for s.nextPress < len(s.presses) && s.presses[s.nextPress].At <= now+1e-9 {
		p := s.presses[s.nextPress].Input
		in.Fire = in.Fire || p.Fire
		in.Reload = in.Reload || p.Reload
		in.Pickup = in.Pickup || p.Pickup
		s.nextPress++
	}
	return in
}

// ScenarioResult summarises a finished run.
type ScenarioResult struct {
	Seed         int64
	Duration     float64
	Stats        WeaponStats
	ShellsLoaded int
	Reserve      int
	DummiesDown  int
	HitRate      float64 // pellet hits / pellets
	FinalRecoil  float64
}

// Result summarises the run so far.
func (s *Scenario) Result() ScenarioResult {
	st := s.Weapon.Stats()
	r := ScenarioResult{
		Seed:         s.seed,
		Duration:     s.Now(),
		Stats:        st,
		ShellsLoaded: s.Weapon.CurrentAmmo(),
		Reserve:      s.Weapon.ReserveAmmo(),
		FinalRecoil:  s.Recoil.Offset(),
	}
	for _, d := range s.Dummies {
		if d.Down() {
			r.DummiesDown++
		}
	}
	if st.Pellets > 0 {
		r.HitRate = float64(st.PelletHits) / float64(st.Pellets)
	}
	return r
}
