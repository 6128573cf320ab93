package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Positioned is anything with a world position to face.
type Positioned interface {
	WorldPosition() mgl64.Vec3
}

// FacingController turns a billboard (e.g. floating text) toward a target on
// the horizontal plane. The final pose is rotated half a turn so the text's
// readable side, which faces -Z, points at the target.
type FacingController struct {
	Transform Transform
	Target    Positioned
	Active    bool
	TurnRate  float64 // slerp fraction per time unit
}

// NewFacingController creates an active controller starting at t.
func NewFacingController(t Transform, target Positioned, turnRate float64) *FacingController {
	return &FacingController{Transform: t, Target: target, Active: true, TurnRate: turnRate}
}

// Tick eases the orientation toward the target by TurnRate*dt.
func (f *FacingController) Tick(dt float64) {
	if !f.Active || f.Target == nil {
		return
	}
	dir := f.Target.WorldPosition().Sub(f.Transform.Position)
	dir[1] = 0
	if dir.LenSqr() < 1e-12 {
		return
	}
	goal := LookRotation(dir, AxisUp).Mul(mgl64.QuatRotate(math.Pi, AxisUp))
	// q and -q are the same rotation; pick the one on the short arc.
	if f.Transform.Rotation.Dot(goal) < 0 {
		goal = goal.Scale(-1)
	}
	f.Transform.Rotation = mgl64.QuatSlerp(f.Transform.Rotation, goal, clamp01(f.TurnRate*dt)).Normalize()
}

// Point is a fixed Positioned.
type Point mgl64.Vec3

// WorldPosition implements Positioned.
func (p Point) WorldPosition() mgl64.Vec3 { return mgl64.Vec3(p) }
