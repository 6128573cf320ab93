package game

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handsMount() *EquipMount {
	return NewEquipMount("hands", Transform{Position: mgl64.Vec3{0, 1.5, 0}, Rotation: mgl64.QuatIdent()})
}

// tickAt refreshes proximity around actor and runs one controller tick.
func tickAt(reg *PickupRegistry, pc *PickupController, actor mgl64.Vec3, in Input) {
	reg.UpdateProximity(actor)
	pc.Tick(1.0/60, actor, in, 0)
}

func TestPickup_ProximityFlipsOnlyOnBoundary(t *testing.T) {
	p := NewPickup("shotgun", mgl64.Vec3{0, 0, 5}, 2)

	assert.False(t, p.UpdateProximity(mgl64.Vec3{0, 0, 0}))
	assert.False(t, p.InRange())

	assert.True(t, p.UpdateProximity(mgl64.Vec3{0, 0, 3.5}), "entering should transition")
	assert.True(t, p.InRange())
	assert.False(t, p.UpdateProximity(mgl64.Vec3{0, 0, 4}), "moving inside is not a transition")

	assert.True(t, p.UpdateProximity(mgl64.Vec3{0, 0, 10}))
	assert.False(t, p.InRange())
}

func TestPickup_SelectsNearestInRange(t *testing.T) {
	near := NewPickup("near", mgl64.Vec3{1, 0, 0}, 2)
	far := NewPickup("far", mgl64.Vec3{0, 0, 1.8}, 2)
	reg := NewPickupRegistry(far, near)
	pc := NewPickupController(DefaultPickupConfig(), reg, handsMount())

	tickAt(reg, pc, mgl64.Vec3{}, Input{})

	require.NotNil(t, pc.Candidate())
	assert.Equal(t, "near", pc.Candidate().Name)
}

func TestPickup_EqualDistanceGoesToLowestID(t *testing.T) {
	a := NewPickup("a", mgl64.Vec3{1, 0, 0}, 2)
	b := NewPickup("b", mgl64.Vec3{-1, 0, 0}, 2)
	a.ID = uuid.MustParse("ffffffff-0000-4000-8000-000000000000")
	b.ID = uuid.MustParse("00000000-0000-4000-8000-000000000000")

	for _, order := range [][]*Pickup{{a, b}, {b, a}} {
		reg := NewPickupRegistry(order...)
		pc := NewPickupController(DefaultPickupConfig(), reg, handsMount())
		tickAt(reg, pc, mgl64.Vec3{}, Input{})
		require.NotNil(t, pc.Candidate())
		assert.Equal(t, "b", pc.Candidate().Name)
	}
}

func TestPickup_CandidateDroppedWhenLeavingTrigger(t *testing.T) {
	p := NewPickup("shotgun", mgl64.Vec3{0, 0, 1}, 2)
	reg := NewPickupRegistry(p)
	el := NewEventLog()
	pc := NewPickupController(DefaultPickupConfig(), reg, handsMount(), WithPickupEvents(el))

	tickAt(reg, pc, mgl64.Vec3{}, Input{})
	require.NotNil(t, pc.Candidate())

	tickAt(reg, pc, mgl64.Vec3{0, 0, 20}, Input{})
	assert.Nil(t, pc.Candidate())
	assert.Equal(t, 1, el.Count(CatPickup, "lost"))
}

func TestPickup_EquipUsesGripMarker(t *testing.T) {
	fc, _ := newTestWeapon(DefaultWeaponConfig())
	fc.SetEnabled(false)
	body := &PropBody{Simulated: true, Collides: true}

	p := NewPickup("shotgun", mgl64.Vec3{0, 0, 1}, 2)
	p.Physics = body
	p.Behavior = fc
	p.EquipOffset = &Transform{Position: mgl64.Vec3{0.1, 0.2, -0.3}, Rotation: mgl64.QuatIdent()}

	reg := NewPickupRegistry(p)
	mount := handsMount()
	pc := NewPickupController(DefaultPickupConfig(), reg, mount)

	tickAt(reg, pc, mgl64.Vec3{}, Input{Pickup: true})

	assert.True(t, p.Equipped())
	assert.False(t, p.InRange())
	assert.Same(t, mount, p.Mount())
	assert.Same(t, p, mount.Occupant())
	assert.False(t, body.Simulated)
	assert.False(t, body.Collides)
	assert.True(t, fc.Enabled(), "equipping should enable the weapon behaviour")
	assert.Nil(t, pc.Candidate())

	assertVecNear(t, mgl64.Vec3{-0.1, -0.2, 0.3}, p.Transform.Position)
	assert.Equal(t, mgl64.QuatIdent(), p.Transform.Rotation)
	world := p.WorldTransform()
	assertVecNear(t, mgl64.Vec3{-0.1, 1.3, 0.3}, world.Position)
}

func TestPickup_EquipWithoutMarkerUsesMountOffset(t *testing.T) {
	p := NewPickup("pistol", mgl64.Vec3{0, 0, 1}, 2)
	reg := NewPickupRegistry(p)
	cfg := DefaultPickupConfig()
	pc := NewPickupController(cfg, reg, handsMount())

	tickAt(reg, pc, mgl64.Vec3{}, Input{Pickup: true})

	require.True(t, p.Equipped())
	assert.Equal(t, cfg.MountOffset, p.Transform)
}

func TestPickup_ReplacesAndDestroysPreviousOccupant(t *testing.T) {
	first := NewPickup("first", mgl64.Vec3{0, 0, 1}, 2)
	second := NewPickup("second", mgl64.Vec3{0, 0, 30}, 2)
	reg := NewPickupRegistry(first, second)
	el := NewEventLog()
	mount := handsMount()
	pc := NewPickupController(DefaultPickupConfig(), reg, mount, WithPickupEvents(el))

	tickAt(reg, pc, mgl64.Vec3{}, Input{Pickup: true})
	require.Same(t, first, mount.Occupant())

	tickAt(reg, pc, mgl64.Vec3{0, 0, 30}, Input{Pickup: true})
	assert.Same(t, second, mount.Occupant())
	assert.True(t, first.Destroyed())
	assert.Nil(t, first.Mount())
	assert.NotContains(t, reg.All(), first)
	assert.True(t, el.HasEntry(CatPickup, "destroy_previous", "first"))
	assert.Equal(t, 2, el.Count(CatPickup, "equip"))
}

func TestPickup_MissingMountAbortsWithDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	p := NewPickup("shotgun", mgl64.Vec3{0, 0, 1}, 2)
	reg := NewPickupRegistry(p)
	pc := NewPickupController(DefaultPickupConfig(), reg, nil, WithPickupLogger(zerolog.New(&buf)))

	tickAt(reg, pc, mgl64.Vec3{}, Input{Pickup: true})

	assert.False(t, p.Equipped())
	assert.Same(t, p, pc.Candidate(), "an aborted pickup keeps its candidate")
	assert.Contains(t, buf.String(), "equip mount is not set")
}

func TestPickup_MountAssignedAfterConstruction(t *testing.T) {
	p := NewPickup("shotgun", mgl64.Vec3{0, 0, 1}, 2)
	reg := NewPickupRegistry(p)
	pc := NewPickupController(DefaultPickupConfig(), reg, nil)

	tickAt(reg, pc, mgl64.Vec3{}, Input{Pickup: true})
	require.False(t, p.Equipped())

	m := handsMount()
	pc.SetMount(m)
	assert.Same(t, m, pc.Mount())
	tickAt(reg, pc, mgl64.Vec3{}, Input{Pickup: true})
	assert.True(t, p.Equipped())
	assert.Same(t, p, m.Occupant())
}

func TestPickupRegistry_DestroyLeavesEarlierListingIntact(t *testing.T) {
	a := NewPickup("a", mgl64.Vec3{}, 1)
	b := NewPickup("b", mgl64.Vec3{}, 1)
	c := NewPickup("c", mgl64.Vec3{}, 1)
	reg := NewPickupRegistry(a, b, c)

	before := reg.All()
	reg.Destroy(a)

	names := make([]string, len(before))
	for i, p := range before {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, []*Pickup{b, c}, reg.All())
	assert.True(t, a.Destroyed())
}

func TestPickup_PressWithNothingInRange(t *testing.T) {
	var buf bytes.Buffer
	reg := NewPickupRegistry(NewPickup("far", mgl64.Vec3{0, 0, 50}, 2))
	pc := NewPickupController(DefaultPickupConfig(), reg, handsMount(), WithPickupLogger(zerolog.New(&buf)))

	assert.False(t, pc.TryPickup(0))
	assert.Contains(t, buf.String(), "nothing in range")
}

func TestPickup_EquippedSkippedByScan(t *testing.T) {
	p := NewPickup("shotgun", mgl64.Vec3{0, 0, 1}, 2)
	reg := NewPickupRegistry(p)
	pc := NewPickupController(DefaultPickupConfig(), reg, handsMount())
	tickAt(reg, pc, mgl64.Vec3{}, Input{Pickup: true})
	require.True(t, p.Equipped())

	assert.Empty(t, reg.PickupsWithin(mgl64.Vec3{}, 10))
	tickAt(reg, pc, mgl64.Vec3{}, Input{})
	assert.Nil(t, pc.Candidate())
}
