package game

import "math"

// PitchRig is the externally owned viewpoint the recoil kicks.
// Pitch is in degrees and may arrive in any range, e.g. [0, 360).
type PitchRig interface {
	Pitch() float64
	SetPitch(deg float64)
}

// RecoilController adds kick to a rig's pitch and bleeds it back off.
// It only tracks the offset it contributed, never the absolute pitch.
type RecoilController struct {
	rig         PitchRig
	recoverRate float64 // degrees per time unit
	offset      float64
}

// NewRecoilController binds a controller to rig. A nil rig is allowed and
// makes the controller track the offset without moving anything.
func NewRecoilController(rig PitchRig, recoverRate float64) *RecoilController {
	return &RecoilController{rig: rig, recoverRate: recoverRate}
}

// Offset is the kick currently applied and not yet recovered.
func (r *RecoilController) Offset() float64 {
	return r.offset
}

// ApplyKick adds amount to both the tracked offset and the rig pitch.
func (r *RecoilController) ApplyKick(amount float64) {
	if amount <= 0 {
		return
	}
	r.offset += amount
	r.shiftPitch(amount)
}

// Tick recovers up to recoverRate*dt of the outstanding offset.
func (r *RecoilController) Tick(dt float64) {
	if r.offset <= 0 || dt <= 0 {
		return
	}
	step := math.Min(r.recoverRate*dt, r.offset)
	r.offset -= step
	if r.offset < 0 {
		r.offset = 0
	}
	r.shiftPitch(-step)
}

func (r *RecoilController) shiftPitch(delta float64) {
	if r.rig == nil {
		return
	}
	r.rig.SetPitch(NormalizeAngle(r.rig.Pitch()) + delta)
}

// Camera is a minimal PitchRig: a yaw/pitch viewpoint.
type Camera struct {
	Yaw   float64
	pitch float64
}

// Pitch implements PitchRig.
func (c *Camera) Pitch() float64 { return c.pitch }

// SetPitch implements PitchRig.
func (c *Camera) SetPitch(deg float64) { c.pitch = deg }
