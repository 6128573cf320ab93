package game

import "github.com/go-gl/mathgl/mgl64"

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Raycaster,Damageable,RigidBody,EffectSpawner,SoundPlayer,Animator,FlashEmitter,PitchRig

// Hit is the result of a successful ray query.
// Object is whatever the ray struck; it receives damage only if it is
// Damageable. Body is nil for static geometry.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Object   any
	Body     RigidBody
}

// Raycaster answers hitscan queries against the scene.
type Raycaster interface {
	Cast(origin, dir mgl64.Vec3, maxDistance float64) (Hit, bool)
}

// Damageable is implemented by anything that can take pellet damage.
type Damageable interface {
	TakeDamage(amount float64)
}

// RigidBody receives impact impulses.
type RigidBody interface {
	ApplyImpulseAt(point, force mgl64.Vec3)
}

// EffectRef names a transient effect prefab. The empty ref disables spawning.
type EffectRef string

// EffectSpawner creates a short-lived effect that expires on its own.
type EffectSpawner interface {
	SpawnEffect(ref EffectRef, pos mgl64.Vec3, rot mgl64.Quat)
}

// Sound names an audio clip. The empty sound is "no clip".
type Sound string

// SoundPlayer plays one-shot clips.
type SoundPlayer interface {
	PlaySound(s Sound)
}

// Animator receives named animation triggers.
type Animator interface {
	SetTrigger(name string)
}

// FlashEmitter shows a muzzle flash at the given barrel.
type FlashEmitter interface {
	Flash(barrel int, muzzle Transform)
}

// MuzzleSource reports the current world transform of each barrel's muzzle.
type MuzzleSource interface {
	Muzzle(barrel int) Transform
}

// StaticMuzzles is a MuzzleSource whose muzzles never move.
type StaticMuzzles [2]Transform

// Muzzle implements MuzzleSource.
func (m StaticMuzzles) Muzzle(barrel int) Transform {
	return m[barrel&1]
}

// Input carries one tick's edge-detected button presses.
type Input struct {
	Fire   bool
	Reload bool
	Pickup bool
}
