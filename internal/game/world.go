package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned solid in a BoxWorld. Object and Body are what a
// ray striking it reports; both may be nil for static scenery.
type Box struct {
	Min, Max mgl64.Vec3
	Object   any
	Body     RigidBody
}

// Center returns the box midpoint.
func (b *Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// contains reports whether p lies inside or on the box.
func (b *Box) contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// BoxWorld is a Raycaster over a flat list of boxes.
type BoxWorld struct {
	boxes []*Box
}

// NewBoxWorld creates a world holding boxes.
func NewBoxWorld(boxes ...*Box) *BoxWorld {
	return &BoxWorld{boxes: append([]*Box(nil), boxes...)}
}

// Add inserts a box.
func (w *BoxWorld) Add(b *Box) {
	w.boxes = append(w.boxes, b)
}

// Boxes returns every box.
func (w *BoxWorld) Boxes() []*Box {
	return w.boxes
}

// Cast implements Raycaster. Boxes that contain the origin are ignored, so a
// muzzle poking into the shooter's own collider does not block the shot.
func (w *BoxWorld) Cast(origin, dir mgl64.Vec3, maxDistance float64) (Hit, bool) {
	if dir.LenSqr() < 1e-18 || maxDistance <= 0 {
		return Hit{}, false
	}
	d := dir.Normalize()
	end := origin.Add(d.Mul(maxDistance))

	bestT := 2.0 // >1 means no hit
	var bestBox *Box
	bestAxis := -1
	for _, b := range w.boxes {
		if b.contains(origin) {
			continue
		}
		t, axis, ok := segmentAABBHitT(origin, end, b.Min, b.Max)
		if ok && t < bestT {
			bestT = t
			bestBox = b
			bestAxis = axis
		}
	}
	if bestBox == nil {
		return Hit{}, false
	}

	var normal mgl64.Vec3
	if bestAxis >= 0 {
		normal[bestAxis] = -math.Copysign(1, d[bestAxis])
	}
	return Hit{
		Point:    origin.Add(d.Mul(bestT * maxDistance)),
		Normal:   normal,
		Distance: bestT * maxDistance,
		Object:   bestBox.Object,
		Body:     bestBox.Body,
	}, true
}

// segmentAABBHitT returns the first segment parameter t in [0,1] where the
// segment o->e enters the box, and the axis whose slab it entered through.
func segmentAABBHitT(o, e, minB, maxB mgl64.Vec3) (float64, int, bool) {
	delta := e.Sub(o)

	tMin := 0.0
	tMax := 1.0
	axis := -1

	for i := 0; i < 3; i++ {
		if math.Abs(delta[i]) < 1e-12 {
			if o[i] < minB[i] || o[i] > maxB[i] {
				return 0, -1, false
			}
			continue
		}
		invD := 1.0 / delta[i]
		t1 := (minB[i] - o[i]) * invD
		t2 := (maxB[i] - o[i]) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
			axis = i
		}
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, -1, false
		}
	}

	if tMax < 0 || tMin > 1 {
		return 0, -1, false
	}
	return tMin, axis, true
}

// Dummy is a practice target: it soaks damage and gets shoved by impulses.
type Dummy struct {
	Name      string
	Health    float64
	MaxHealth float64
	Mass      float64
	Velocity  mgl64.Vec3
	Friction  float64 // fraction of velocity shed per time unit
	Hits      int
	Box       *Box
}

// NewDummy creates a dummy standing on the ground at pos with the given
// half-extents, and its collider.
func NewDummy(name string, pos, half mgl64.Vec3, health float64) *Dummy {
	d := &Dummy{
		Name:      name,
		Health:    health,
		MaxHealth: health,
		Mass:      5,
		Friction:  4,
	}
	d.Box = &Box{Min: pos.Sub(half), Max: pos.Add(half), Object: d, Body: d}
	return d
}

// TakeDamage implements Damageable.
func (d *Dummy) TakeDamage(amount float64) {
	d.Hits++
	d.Health = math.Max(0, d.Health-amount)
}

// ApplyImpulseAt implements RigidBody. The dummy only slides; torque from an
// off-centre point is ignored.
func (d *Dummy) ApplyImpulseAt(point, force mgl64.Vec3) {
	if d.Mass <= 0 {
		return
	}
	d.Velocity = d.Velocity.Add(force.Mul(1 / d.Mass))
}

// Down reports whether the dummy has run out of health.
func (d *Dummy) Down() bool { return d.Health <= 0 }

// Reset restores full health and stops the dummy.
func (d *Dummy) Reset() {
	d.Health = d.MaxHealth
	d.Velocity = mgl64.Vec3{}
	d.Hits = 0
}

// WorldPosition implements Positioned.
func (d *Dummy) WorldPosition() mgl64.Vec3 { return d.Box.Center() }

// Step slides the dummy along the ground and bleeds off velocity.
func (d *Dummy) Step(dt float64) {
	if dt <= 0 {
		return
	}
	v := d.Velocity
	v[1] = 0
	shift := v.Mul(dt)
	d.Box.Min = d.Box.Min.Add(shift)
	d.Box.Max = d.Box.Max.Add(shift)
	d.Velocity = d.Velocity.Mul(math.Max(0, 1-d.Friction*dt))
}

// PropBody is the physics state of a loose prop, e.g. a weapon lying on the
// ground before it is picked up.
type PropBody struct {
	Simulated bool
	Collides  bool
}

// SetPhysicsEnabled implements PhysicsToggle.
func (p *PropBody) SetPhysicsEnabled(on bool) {
	p.Simulated = on
	p.Collides = on
}
