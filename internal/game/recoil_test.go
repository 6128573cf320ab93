package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoil_KickNormalizesRigPitch(t *testing.T) {
	cam := &Camera{}
	cam.SetPitch(350)
	rc := NewRecoilController(cam, 20)

	rc.ApplyKick(4)

	assert.InDelta(t, -6, cam.Pitch(), 1e-9)
	assert.InDelta(t, 4, rc.Offset(), 1e-9)
}

func TestRecoil_RecoversAtRate(t *testing.T) {
	cam := &Camera{}
	cam.SetPitch(350)
	rc := NewRecoilController(cam, 20)
	rc.ApplyKick(4)

	rc.Tick(0.1)
	assert.InDelta(t, -8, cam.Pitch(), 1e-9)
	assert.InDelta(t, 2, rc.Offset(), 1e-9)

	rc.Tick(1)
	assert.InDelta(t, -10, cam.Pitch(), 1e-9)
	assert.Zero(t, rc.Offset())

	rc.Tick(1)
	assert.InDelta(t, -10, cam.Pitch(), 1e-9, "fully recovered recoil must not keep moving the rig")
}

func TestRecoil_KicksAccumulate(t *testing.T) {
	cam := &Camera{}
	rc := NewRecoilController(cam, 10)
	rc.ApplyKick(4)
	rc.ApplyKick(4)
	assert.InDelta(t, 8, rc.Offset(), 1e-9)
	assert.InDelta(t, 8, cam.Pitch(), 1e-9)
}

func TestRecoil_NonPositiveKickIgnored(t *testing.T) {
	cam := &Camera{}
	rc := NewRecoilController(cam, 10)
	rc.ApplyKick(0)
	rc.ApplyKick(-3)
	assert.Zero(t, rc.Offset())
	assert.Zero(t, cam.Pitch())
}

func TestRecoil_NilRigTracksOffsetOnly(t *testing.T) {
	rc := NewRecoilController(nil, 10)
	rc.ApplyKick(5)
	rc.Tick(0.2)
	assert.InDelta(t, 3, rc.Offset(), 1e-9)
}

func TestNormalizeAngle(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		180:  180,
		-180: 180,
		190:  -170,
		350:  -10,
		-350: 10,
		720:  0,
		540:  180,
	}
	for in, want := range cases {
		assert.InDelta(t, want, NormalizeAngle(in), 1e-9, "NormalizeAngle(%v)", in)
	}
}
