package game

import "github.com/go-gl/mathgl/mgl64"

// Lifetimes of transient visuals, in time units.
const (
	defaultEffectLifetime = 4.0
	tracerLifetime        = 0.15
	flashLifetime         = 0.07
)

// Effect is a spawned impact prefab instance.
type Effect struct {
	Ref       EffectRef
	Position  mgl64.Vec3
	Rotation  mgl64.Quat
	SpawnedAt float64
}

// Tracer is a short-lived line along one pellet's path.
type Tracer struct {
	From, To  mgl64.Vec3
	Hit       bool
	SpawnedAt float64
}

// MuzzleFlash is a short-lived burst at a barrel's muzzle.
type MuzzleFlash struct {
	Barrel    int
	Muzzle    Transform
	SpawnedAt float64
}

// EffectPool holds transient effects and expires them on Update.
// It implements EffectSpawner, TracerSink and FlashEmitter.
type EffectPool struct {
	lifetime float64
	now      float64
	effects  []Effect
	tracers  []Tracer
	flashes  []MuzzleFlash
}

// NewEffectPool creates a pool whose impact effects live for lifetime time
// units. A non-positive lifetime uses the default of 4.
func NewEffectPool(lifetime float64) *EffectPool {
	if lifetime <= 0 {
		lifetime = defaultEffectLifetime
	}
	return &EffectPool{lifetime: lifetime}
}

// SpawnEffect implements EffectSpawner. The effect is stamped with the time
// of the last Update.
func (ep *EffectPool) SpawnEffect(ref EffectRef, pos mgl64.Vec3, rot mgl64.Quat) {
	ep.effects = append(ep.effects, Effect{Ref: ref, Position: pos, Rotation: rot, SpawnedAt: ep.now})
}

// AddTracer implements TracerSink.
func (ep *EffectPool) AddTracer(from, to mgl64.Vec3, hit bool) {
	ep.tracers = append(ep.tracers, Tracer{From: from, To: to, Hit: hit, SpawnedAt: ep.now})
}

// Flash implements FlashEmitter.
func (ep *EffectPool) Flash(barrel int, muzzle Transform) {
	ep.flashes = append(ep.flashes, MuzzleFlash{Barrel: barrel, Muzzle: muzzle, SpawnedAt: ep.now})
}

// Update moves the pool clock to now and prunes everything that expired.
func (ep *EffectPool) Update(now float64) {
	ep.now = now

	kept := ep.effects[:0]
	for _, e := range ep.effects {
		if now-e.SpawnedAt < ep.lifetime {
			kept = append(kept, e)
		}
	}
	ep.effects = kept

	keptT := ep.tracers[:0]
	for _, t := range ep.tracers {
		if now-t.SpawnedAt < tracerLifetime {
			keptT = append(keptT, t)
		}
	}
	ep.tracers = keptT

	keptF := ep.flashes[:0]
	for _, f := range ep.flashes {
		if now-f.SpawnedAt < flashLifetime {
			keptF = append(keptF, f)
		}
	}
	ep.flashes = keptF
}

// Now returns the pool clock.
func (ep *EffectPool) Now() float64 { return ep.now }

// Effects returns live impact effects.
func (ep *EffectPool) Effects() []Effect { return ep.effects }

// Tracers returns live tracers.
func (ep *EffectPool) Tracers() []Tracer { return ep.tracers }

// Flashes returns live muzzle flashes.
func (ep *EffectPool) Flashes() []MuzzleFlash { return ep.flashes }

// Age returns how far through its life a visual spawned at t is, in [0,1].
func (ep *EffectPool) Age(spawnedAt, lifetime float64) float64 {
	if lifetime <= 0 {
		return 1
	}
	return clamp01((ep.now - spawnedAt) / lifetime)
}

// TracerLifetime is exported for renderers fading tracers.
func TracerLifetime() float64 { return tracerLifetime }

// FlashLifetime is exported for renderers fading flashes.
func FlashLifetime() float64 { return flashLifetime }

// EffectLifetime returns the pool's impact lifetime.
func (ep *EffectPool) EffectLifetime() float64 { return ep.lifetime }
