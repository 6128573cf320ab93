package game

import (
	"bytes"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PhysicsToggle switches an object's physics and collision response.
type PhysicsToggle interface {
	SetPhysicsEnabled(on bool)
}

// Behavior is a component that can be switched on and off, e.g. a weapon's
// FireControl that stays disabled until the weapon is picked up.
type Behavior interface {
	SetEnabled(on bool)
}

// Pickup is a loose object the actor can walk up to and equip.
type Pickup struct {
	ID   uuid.UUID
	Name string

	// Transform is world space while loose and mount-local once equipped.
	Transform     Transform
	TriggerRadius float64

	// EquipOffset is the optional grip marker, local to the pickup.
	EquipOffset *Transform
	Physics     PhysicsToggle
	Behavior    Behavior

	inRange   bool
	equipped  bool
	destroyed bool
	mount     *EquipMount
}

// NewPickup creates a loose pickup at pos with a fresh ID.
func NewPickup(name string, pos mgl64.Vec3, triggerRadius float64) *Pickup {
	return &Pickup{
		ID:            uuid.New(),
		Name:          name,
		Transform:     Transform{Position: pos, Rotation: mgl64.QuatIdent()},
		TriggerRadius: triggerRadius,
	}
}

// InRange reports whether the actor is inside this pickup's trigger.
func (p *Pickup) InRange() bool { return p.inRange }

// SetInRange sets the trigger flag directly, for hosts running their own
// overlap detection.
func (p *Pickup) SetInRange(in bool) {
	if p.equipped || p.destroyed {
		in = false
	}
	p.inRange = in
}

// Equipped reports whether the pickup has been transferred to a mount.
func (p *Pickup) Equipped() bool { return p.equipped }

// Destroyed reports whether the pickup was removed from the scene.
func (p *Pickup) Destroyed() bool { return p.destroyed }

// Mount returns the mount holding the pickup, or nil while loose.
func (p *Pickup) Mount() *EquipMount { return p.mount }

// WorldTransform resolves the pickup's transform through its mount.
func (p *Pickup) WorldTransform() Transform {
	if p.mount == nil {
		return p.Transform
	}
	return p.mount.World.Compose(p.Transform)
}

// UpdateProximity flips the trigger flag when actor crosses the trigger
// boundary. It returns true on a transition.
func (p *Pickup) UpdateProximity(actor mgl64.Vec3) bool {
	if p.equipped || p.destroyed {
		return false
	}
	inside := actor.Sub(p.Transform.Position).LenSqr() <= p.TriggerRadius*p.TriggerRadius
	if inside == p.inRange {
		return false
	}
	p.inRange = inside
	return true
}

// EquipMount is the attachment point picked-up objects are parented to.
type EquipMount struct {
	Name     string
	World    Transform
	occupant *Pickup
}

// NewEquipMount creates an empty mount.
func NewEquipMount(name string, world Transform) *EquipMount {
	return &EquipMount{Name: name, World: world}
}

// Occupant returns the equipped object, or nil.
func (m *EquipMount) Occupant() *Pickup { return m.occupant }

// PickupSource finds pickups near a point.
type PickupSource interface {
	PickupsWithin(center mgl64.Vec3, radius float64) []*Pickup
}

// Destroyer removes an object from the scene.
type Destroyer interface {
	Destroy(p *Pickup)
}

// PickupRegistry is a flat scene list of pickups. It is both the overlap
// query and the destroyer.
type PickupRegistry struct {
	items []*Pickup
}

// NewPickupRegistry creates a registry holding ps.
func NewPickupRegistry(ps ...*Pickup) *PickupRegistry {
	return &PickupRegistry{items: append([]*Pickup(nil), ps...)}
}

// Add puts p in the scene.
func (r *PickupRegistry) Add(p *Pickup) {
	r.items = append(r.items, p)
}

// All returns every live pickup in insertion order. Later Add or Destroy
// calls do not change a returned slice.
func (r *PickupRegistry) All() []*Pickup {
	return r.items
}

// UpdateProximity refreshes every pickup's trigger flag against actor.
func (r *PickupRegistry) UpdateProximity(actor mgl64.Vec3) {
	for _, p := range r.items {
		p.UpdateProximity(actor)
	}
}

// PickupsWithin implements PickupSource. Equipped pickups are skipped.
func (r *PickupRegistry) PickupsWithin(center mgl64.Vec3, radius float64) []*Pickup {
	var out []*Pickup
	r2 := radius * radius
	for _, p := range r.items {
		if p.equipped {
			continue
		}
		if center.Sub(p.Transform.Position).LenSqr() <= r2 {
			out = append(out, p)
		}
	}
	return out
}

// Destroy implements Destroyer.
func (r *PickupRegistry) Destroy(p *Pickup) {
	p.destroyed = true
	p.inRange = false
	kept := make([]*Pickup, 0, len(r.items))
	for _, it := range r.items {
		if it != p {
			kept = append(kept, it)
		}
	}
	r.items = kept
}

// PickupConfig tunes the actor side of pickups.
type PickupConfig struct {
	ScanRadius  float64
	MountOffset Transform // used when the pickup has no EquipOffset marker
}

// DefaultPickupConfig returns the stock actor tuning.
func DefaultPickupConfig() PickupConfig {
	return PickupConfig{
		ScanRadius: 2.5,
		MountOffset: Transform{
			Position: mgl64.Vec3{0.3, -0.25, 0.5},
			Rotation: mgl64.QuatIdent(),
		},
	}
}

// PickupOption configures optional PickupController collaborators.
type PickupOption func(*PickupController)

// WithPickupLogger sets the diagnostic logger.
func WithPickupLogger(l zerolog.Logger) PickupOption {
	return func(pc *PickupController) { pc.log = l }
}

// WithPickupEvents records pickup events into el.
func WithPickupEvents(el *EventLog) PickupOption {
	return func(pc *PickupController) { pc.events = el }
}

// WithDestroyer sets who removes a displaced occupant from the scene.
func WithDestroyer(d Destroyer) PickupOption {
	return func(pc *PickupController) { pc.destroyer = d }
}

// PickupController selects the nearest in-range pickup and moves it to the
// equip mount on a pickup press. It holds at most one candidate.
type PickupController struct {
	cfg       PickupConfig
	source    PickupSource
	mount     *EquipMount
	destroyer Destroyer
	candidate *Pickup
	events    *EventLog
	log       zerolog.Logger
}

// NewPickupController creates a controller scanning source. mount may be nil,
// in which case every pickup attempt is refused with a diagnostic.
func NewPickupController(cfg PickupConfig, source PickupSource, mount *EquipMount, opts ...PickupOption) *PickupController {
	pc := &PickupController{
		cfg:    cfg,
		source: source,
		mount:  mount,
		log:    zerolog.Nop(),
	}
	if d, ok := source.(Destroyer); ok {
		pc.destroyer = d
	}
	for _, o := range opts {
		o(pc)
	}
	return pc
}

// Candidate returns the current selection, or nil.
func (pc *PickupController) Candidate() *Pickup { return pc.candidate }

// Mount returns the equip mount.
func (pc *PickupController) Mount() *EquipMount { return pc.mount }

// SetMount replaces the equip mount.
func (pc *PickupController) SetMount(m *EquipMount) { pc.mount = m }

// Tick refreshes the candidate around actor and handles a pickup press.
func (pc *PickupController) Tick(dt float64, actor mgl64.Vec3, in Input, now float64) {
	if pc.candidate != nil && !pc.candidate.InRange() {
		pc.events.Add(now, "hands", CatPickup, "lost", pc.candidate.Name, 0)
		pc.candidate = nil
	}
	if pc.candidate == nil {
		pc.candidate = pc.selectNearest(actor)
		if pc.candidate != nil {
			pc.events.Add(now, "hands", CatPickup, "candidate", pc.candidate.Name, 0)
		}
	}
	if in.Pickup {
		pc.TryPickup(now)
	}
}

// selectNearest picks the in-range pickup closest to actor. Equal distances
// go to the lowest ID so the choice does not depend on scene order.
func (pc *PickupController) selectNearest(actor mgl64.Vec3) *Pickup {
	if pc.source == nil {
		return nil
	}
	var best *Pickup
	bestDist := 0.0
	for _, p := range pc.source.PickupsWithin(actor, pc.cfg.ScanRadius) {
		if !p.InRange() || p.equipped || p.destroyed {
			continue
		}
		d := actor.Sub(p.Transform.Position).LenSqr()
		if best == nil || d < bestDist || (d == bestDist && bytes.Compare(p.ID[:], best.ID[:]) < 0) {
			best = p
			bestDist = d
		}
	}
	return best
}

// TryPickup equips the current candidate. It reports whether a transfer
// happened; a missing candidate or mount only logs a diagnostic.
func (pc *PickupController) TryPickup(now float64) bool {
	if pc.candidate == nil {
		pc.log.Warn().Msg("pickup pressed with nothing in range")
		return false
	}
	if pc.mount == nil {
		pc.log.Warn().
			Str("pickup", pc.candidate.Name).
			Msg("pickup aborted: equip mount is not set")
		return false
	}
	p := pc.candidate

	if old := pc.mount.occupant; old != nil {
		pc.mount.occupant = nil
		old.mount = nil
		if pc.destroyer != nil {
			pc.destroyer.Destroy(old)
		} else {
			old.destroyed = true
		}
		pc.events.Add(now, "hands", CatPickup, "destroy_previous", old.Name, 0)
	}

	if p.Physics != nil {
		p.Physics.SetPhysicsEnabled(false)
	}
	if p.EquipOffset != nil {
		p.Transform = Transform{
			Position: p.EquipOffset.Position.Mul(-1),
			Rotation: mgl64.QuatIdent(),
		}
	} else {
		p.Transform = pc.cfg.MountOffset
	}
	p.mount = pc.mount
	p.equipped = true
	p.inRange = false
	pc.mount.occupant = p
	if p.Behavior != nil {
		p.Behavior.SetEnabled(true)
	}
	pc.candidate = nil

	pc.events.Add(now, "hands", CatPickup, "equip",
		fmt.Sprintf("%s -> %s", p.Name, pc.mount.Name), 0)
	pc.log.Info().Str("pickup", p.Name).Msg("equipped")
	return true
}
