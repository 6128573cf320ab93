package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Rand is the slice of *rand.Rand the sampler needs.
type Rand interface {
	Float64() float64
}

// SpreadSampler scatters pellet directions inside a square cone.
type SpreadSampler struct {
	rng Rand
}

// NewSpreadSampler creates a sampler with its own seeded RNG.
func NewSpreadSampler(seed int64) *SpreadSampler {
	return &SpreadSampler{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- game only
}

// NewSpreadSamplerFrom wraps an existing random source.
func NewSpreadSamplerFrom(rng Rand) *SpreadSampler {
	return &SpreadSampler{rng: rng}
}

// Sample returns forward deflected by a random yaw and pitch, each uniform in
// [-cone/2, +cone/2] degrees. Pitch turns about the local X axis and yaw about
// the local Y axis; there is no roll. A non-positive cone returns forward
// untouched.
func (s *SpreadSampler) Sample(forward mgl64.Vec3, coneDegrees float64) mgl64.Vec3 {
	if coneDegrees <= 0 {
		return forward
	}
	yaw := (s.rng.Float64() - 0.5) * coneDegrees
	pitch := (s.rng.Float64() - 0.5) * coneDegrees
	return Deflect(forward, yaw, pitch)
}

// Deflect rotates forward by yaw and pitch (degrees) in its own frame.
func Deflect(forward mgl64.Vec3, yawDeg, pitchDeg float64) mgl64.Vec3 {
	length := forward.Len()
	if length < 1e-12 {
		return forward
	}
	frame := LookRotation(forward, AxisUp)
	local := mgl64.QuatRotate(mgl64.DegToRad(yawDeg), AxisUp).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(pitchDeg), AxisRight))
	return frame.Mul(local).Rotate(AxisForward).Mul(length)
}
