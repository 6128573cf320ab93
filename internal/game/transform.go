package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Engine axes. +Y is up, +Z is a transform's forward, +X its right.
var (
	AxisRight   = mgl64.Vec3{1, 0, 0}
	AxisUp      = mgl64.Vec3{0, 1, 0}
	AxisForward = mgl64.Vec3{0, 0, 1}
)

// Transform is a position plus orientation, either world or parent-local.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityTransform sits at the origin with no rotation.
func IdentityTransform() Transform {
	return Transform{Rotation: mgl64.QuatIdent()}
}

// Forward returns the transform's +Z axis in the parent space.
func (t Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(AxisForward)
}

// Compose places a child-local transform into this transform's space.
func (t Transform) Compose(local Transform) Transform {
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(local.Position)),
		Rotation: t.Rotation.Mul(local.Rotation).Normalize(),
	}
}

// LookRotation returns the orientation whose forward axis points along dir
// with the given up hint. Degenerate input falls back to the shortest arc
// from +Z.
func LookRotation(dir, up mgl64.Vec3) mgl64.Quat {
	if dir.Len() < 1e-12 {
		return mgl64.QuatIdent()
	}
	fwd := dir.Normalize()
	right := up.Cross(fwd)
	if right.Len() < 1e-9 {
		return mgl64.QuatBetweenVectors(AxisForward, fwd)
	}
	right = right.Normalize()
	realUp := fwd.Cross(right)
	m := mgl64.Mat3FromCols(right, realUp, fwd)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// NormalizeAngle maps degrees into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
