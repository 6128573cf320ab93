package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// InfiniteReserve is what ReserveAmmo reports for a bottomless reserve.
const InfiniteReserve = -1

// Barrel count is fixed: the weapon alternates between exactly two muzzles.
const barrelCount = 2

// WeaponConfig is the tuning of one dual-barrel weapon. It is an unchecked
// precondition: FireControl does not validate it.
type WeaponConfig struct {
	Name             string
	MagazineCapacity int
	ReserveAmmo      int
	InfiniteReserve  bool
	FireInterval     float64 // minimum time between shots
	ReloadTime       float64
	PelletsPerShot   int
	SpreadAngle      float64 // full cone width in degrees
	PelletDamage     float64
	ImpactForce      float64
	MaxRange         float64
	RecoilKick       float64 // degrees of pitch per shot

	FireSound     Sound
	ReloadSound   Sound
	EmptySound    Sound
	FireTrigger   string // animator trigger names
	ReloadTrigger string
	ImpactEffect  EffectRef
}

// DefaultWeaponConfig is a double-barrel shotgun.
func DefaultWeaponConfig() WeaponConfig {
	return WeaponConfig{
		Name:             "shotgun",
		MagazineCapacity: 2,
		ReserveAmmo:      24,
		FireInterval:     0.5,
		ReloadTime:       1.5,
		PelletsPerShot:   8,
		SpreadAngle:      6,
		PelletDamage:     10,
		ImpactForce:      4,
		MaxRange:         100,
		RecoilKick:       4,
		FireSound:        "shotgun_fire",
		ReloadSound:      "shotgun_reload",
		EmptySound:       "dry_fire",
		FireTrigger:      "Fire",
		ReloadTrigger:    "Reload",
		ImpactEffect:     "impact_dust",
	}
}

// WeaponState is a read-only snapshot of a FireControl.
type WeaponState struct {
	ShellsLoaded     int
	MagazineCapacity int
	ReserveAmmo      int // InfiniteReserve when bottomless
	Reloading        bool
	ReloadDoneAt     float64
	NextBarrel       int
	LastFireTime     float64
	Enabled          bool
}

// WeaponStats counts what a FireControl has done since creation.
type WeaponStats struct {
	Shots       int
	Pellets     int
	PelletHits  int
	Reloads     int
	EmptyClicks int
	Rejected    int
	DamageDealt float64
}

// TracerSink receives one line per pellet, for drawing.
type TracerSink interface {
	AddTracer(from, to mgl64.Vec3, hit bool)
}

// FireOption configures optional FireControl collaborators.
type FireOption func(*FireControl)

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) FireOption {
	return func(fc *FireControl) { fc.log = l }
}

// WithNoiseLogger sets the logger for per-frame trigger rejections (rate
// limited or empty). Hosts usually hand in a sampled logger.
func WithNoiseLogger(l zerolog.Logger) FireOption {
	return func(fc *FireControl) { fc.noise = l }
}

// WithEventLog records gameplay events into el.
func WithEventLog(el *EventLog) FireOption {
	return func(fc *FireControl) { fc.events = el }
}

// WithSampler replaces the default spread sampler.
func WithSampler(s *SpreadSampler) FireOption {
	return func(fc *FireControl) { fc.sampler = s }
}

// WithRecoil wires the recoil controller kicked on every shot.
func WithRecoil(r *RecoilController) FireOption {
	return func(fc *FireControl) { fc.recoil = r }
}

// WithSound sets the audio player.
func WithSound(p SoundPlayer) FireOption {
	return func(fc *FireControl) { fc.sound = p }
}

// WithAnimator sets the animator receiving fire/reload triggers.
func WithAnimator(a Animator) FireOption {
	return func(fc *FireControl) { fc.anim = a }
}

// WithFlash sets the muzzle flash emitter.
func WithFlash(f FlashEmitter) FireOption {
	return func(fc *FireControl) { fc.flash = f }
}

// WithEffects sets the impact effect spawner.
func WithEffects(e EffectSpawner) FireOption {
	return func(fc *FireControl) { fc.effects = e }
}

// WithTracers sets the pellet tracer sink.
func WithTracers(t TracerSink) FireOption {
	return func(fc *FireControl) { fc.tracers = t }
}

// FireControl owns the ammo and reload state machine of a dual-barrel weapon.
//
// Invariant: 0 <= shellsLoaded <= MagazineCapacity, and no shot is fired
// while a reload is pending or within FireInterval of the previous shot.
type FireControl struct {
	cfg     WeaponConfig
	muzzles MuzzleSource
	ray     Raycaster

	shellsLoaded int
	reserve      int
	reloading    bool
	reloadDoneAt float64
	nextBarrel   int
	lastFire     float64
	enabled      bool

	sampler *SpreadSampler
	recoil  *RecoilController
	sound   SoundPlayer
	anim    Animator
	flash   FlashEmitter
	effects EffectSpawner
	tracers TracerSink
	events  *EventLog
	log     zerolog.Logger
	noise   zerolog.Logger

	stats WeaponStats
}

// NewFireControl activates a weapon with a full magazine.
func NewFireControl(cfg WeaponConfig, muzzles MuzzleSource, ray Raycaster, opts ...FireOption) *FireControl {
	fc := &FireControl{
		cfg:          cfg,
		muzzles:      muzzles,
		ray:          ray,
		shellsLoaded: cfg.MagazineCapacity,
		reserve:      cfg.ReserveAmmo,
		lastFire:     math.Inf(-1),
		enabled:      true,
		log:          zerolog.Nop(),
		noise:        zerolog.Nop(),
	}
	for _, o := range opts {
		o(fc)
	}
	if fc.sampler == nil {
		fc.sampler = NewSpreadSampler(1)
	}
	return fc
}

// Config returns the weapon tuning.
func (fc *FireControl) Config() WeaponConfig { return fc.cfg }

// CurrentAmmo returns the shells in the magazine.
func (fc *FireControl) CurrentAmmo() int { return fc.shellsLoaded }

// ReserveAmmo returns the reserve count, or InfiniteReserve.
func (fc *FireControl) ReserveAmmo() int {
	if fc.cfg.InfiniteReserve {
		return InfiniteReserve
	}
	return fc.reserve
}

// Reloading reports whether a reload is pending.
func (fc *FireControl) Reloading() bool { return fc.reloading }

// Stats returns the running counters.
func (fc *FireControl) Stats() WeaponStats { return fc.stats }

// State returns a snapshot for HUDs and reports.
func (fc *FireControl) State() WeaponState {
	return WeaponState{
		ShellsLoaded:     fc.shellsLoaded,
		MagazineCapacity: fc.cfg.MagazineCapacity,
		ReserveAmmo:      fc.ReserveAmmo(),
		Reloading:        fc.reloading,
		ReloadDoneAt:     fc.reloadDoneAt,
		NextBarrel:       fc.nextBarrel,
		LastFireTime:     fc.lastFire,
		Enabled:          fc.enabled,
	}
}

// Enabled reports whether the weapon responds to ticks.
func (fc *FireControl) Enabled() bool { return fc.enabled }

// SetEnabled turns the weapon behavior on or off. Holstered or not-yet-picked
// weapons are disabled.
func (fc *FireControl) SetEnabled(on bool) { fc.enabled = on }

// Tick advances the weapon by one frame. dt is unused by the weapon itself;
// all timing is against now.
func (fc *FireControl) Tick(dt float64, in Input, now float64) {
	if !fc.enabled {
		return
	}
	fc.completeReload(now)
	if fc.reloading {
		return
	}
	switch {
	case in.Reload && fc.canReload():
		fc.BeginReload(now)
	case in.Fire:
		fc.pullTrigger(now)
	}
}

func (fc *FireControl) pullTrigger(now float64) {
	if now-fc.lastFire < fc.cfg.FireInterval {
		fc.stats.Rejected++
		fc.events.Add(now, fc.cfg.Name, CatFire, "rate_limited",
			fmt.Sprintf("%.3f since last shot", now-fc.lastFire), now-fc.lastFire)
		fc.noise.Debug().
			Str("weapon", fc.cfg.Name).
			Float64("since_last", now-fc.lastFire).
			Msg("trigger rate limited")
		return
	}
	if fc.shellsLoaded > 0 {
		fc.fireOneBarrel(now)
		return
	}
	if fc.canReload() {
		fc.BeginReload(now)
		return
	}
	fc.stats.EmptyClicks++
	fc.play(fc.cfg.EmptySound)
	fc.events.Add(now, fc.cfg.Name, CatFire, "empty", "no shells, no reserve", 0)
	fc.noise.Debug().Str("weapon", fc.cfg.Name).Msg("trigger pulled on empty weapon")
}

func (fc *FireControl) fireOneBarrel(now float64) {
	barrel := fc.nextBarrel
	muzzle := fc.muzzles.Muzzle(barrel)

	fc.play(fc.cfg.FireSound)
	if fc.flash != nil {
		fc.flash.Flash(barrel, muzzle)
	}
	fc.trigger(fc.cfg.FireTrigger)
	if fc.recoil != nil {
		fc.recoil.ApplyKick(fc.cfg.RecoilKick)
	}

	forward := muzzle.Forward()
	hits := 0
	for i := 0; i < fc.cfg.PelletsPerShot; i++ {
		dir := fc.sampler.Sample(forward, fc.cfg.SpreadAngle)
		fc.stats.Pellets++
		hit, ok := fc.cast(muzzle.Position, dir)
		if !ok {
			fc.addTracer(muzzle.Position, muzzle.Position.Add(dir.Normalize().Mul(fc.cfg.MaxRange)), false)
			continue
		}
		hits++
		fc.addTracer(muzzle.Position, hit.Point, true)
		fc.resolveHit(hit, dir)
	}

	fc.shellsLoaded--
	fc.nextBarrel = (fc.nextBarrel + 1) % barrelCount
	fc.lastFire = now
	fc.stats.Shots++
	fc.stats.PelletHits += hits
	fc.events.Add(now, fc.cfg.Name, CatFire, "shot",
		fmt.Sprintf("barrel=%d shells=%d hits=%d/%d", barrel, fc.shellsLoaded, hits, fc.cfg.PelletsPerShot),
		float64(barrel))

	if fc.shellsLoaded == 0 && fc.canReload() {
		fc.BeginReload(now)
	}
}

func (fc *FireControl) cast(origin, dir mgl64.Vec3) (Hit, bool) {
	if fc.ray == nil {
		return Hit{}, false
	}
	return fc.ray.Cast(origin, dir, fc.cfg.MaxRange)
}

// resolveHit applies one pellet's damage, impulse and impact effect.
func (fc *FireControl) resolveHit(hit Hit, dir mgl64.Vec3) {
	if target, ok := hit.Object.(Damageable); ok {
		target.TakeDamage(fc.cfg.PelletDamage)
		fc.stats.DamageDealt += fc.cfg.PelletDamage
	}
	if hit.Body != nil {
		hit.Body.ApplyImpulseAt(hit.Point, dir.Normalize().Mul(fc.cfg.ImpactForce))
	}
	if fc.effects != nil && fc.cfg.ImpactEffect != "" {
		fc.effects.SpawnEffect(fc.cfg.ImpactEffect, hit.Point, LookRotation(hit.Normal, AxisUp))
	}
}

func (fc *FireControl) canReload() bool {
	if fc.shellsLoaded >= fc.cfg.MagazineCapacity {
		return false
	}
	return fc.cfg.InfiniteReserve || fc.reserve > 0
}

// BeginReload starts a reload that completes ReloadTime after now. It is a
// no-op while another reload is pending. Once started a reload always
// finishes; there is no cancel.
func (fc *FireControl) BeginReload(now float64) {
	if fc.reloading {
		return
	}
	fc.reloading = true
	fc.reloadDoneAt = now + fc.cfg.ReloadTime
	fc.play(fc.cfg.ReloadSound)
	fc.trigger(fc.cfg.ReloadTrigger)
	fc.events.Add(now, fc.cfg.Name, CatReload, "start",
		fmt.Sprintf("shells=%d reserve=%d", fc.shellsLoaded, fc.ReserveAmmo()), fc.reloadDoneAt)
	fc.log.Debug().
		Str("weapon", fc.cfg.Name).
		Float64("done_at", fc.reloadDoneAt).
		Msg("reload started")
}

// completeReload finalises a pending reload once its time has come.
func (fc *FireControl) completeReload(now float64) {
	if !fc.reloading || now < fc.reloadDoneAt {
		return
	}
	if fc.cfg.InfiniteReserve {
		fc.shellsLoaded = fc.cfg.MagazineCapacity
	} else {
		n := min(fc.cfg.MagazineCapacity-fc.shellsLoaded, fc.reserve)
		if n > 0 {
			fc.shellsLoaded += n
			fc.reserve -= n
		}
	}
	fc.reloading = false
	fc.stats.Reloads++
	fc.events.Add(now, fc.cfg.Name, CatReload, "done",
		fmt.Sprintf("shells=%d reserve=%d", fc.shellsLoaded, fc.ReserveAmmo()), float64(fc.shellsLoaded))
	fc.log.Debug().
		Str("weapon", fc.cfg.Name).
		Int("shells", fc.shellsLoaded).
		Int("reserve", fc.ReserveAmmo()).
		Msg("reload finished")
}

func (fc *FireControl) play(s Sound) {
	if fc.sound == nil || s == "" {
		return
	}
	fc.sound.PlaySound(s)
}

func (fc *FireControl) trigger(name string) {
	if fc.anim == nil || name == "" {
		return
	}
	fc.anim.SetTrigger(name)
}

func (fc *FireControl) addTracer(from, to mgl64.Vec3, hit bool) {
	if fc.tracers == nil {
		return
	}
	fc.tracers.AddTracer(from, to, hit)
}
