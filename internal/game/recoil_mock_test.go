package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Garsondee/Gunplay/internal/game"
	"github.com/Garsondee/Gunplay/internal/game/mocks"
)

func TestRecoil_DrivesExternalRig(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := mocks.NewMockPitchRig(ctrl)

	gomock.InOrder(
		rig.EXPECT().Pitch().Return(350.0),
		rig.EXPECT().SetPitch(-6.0),
		rig.EXPECT().Pitch().Return(-6.0),
		rig.EXPECT().SetPitch(-10.0),
	)

	rc := game.NewRecoilController(rig, 20)
	rc.ApplyKick(4)
	rc.Tick(1)
	assert.Zero(t, rc.Offset())

	// Nothing outstanding, so no further rig calls.
	rc.Tick(1)
}
