// Package sandbox is the interactive top-down firing range: walk up to a
// weapon, pick it up, and shoot practice dummies.
package sandbox

import (
	"math"
	"time"

	"github.com/atotto/clipboard"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Gunplay/internal/config"
	"github.com/Garsondee/Gunplay/internal/game"
	"github.com/Garsondee/Gunplay/internal/logging"
)

const (
	eyeHeight = 1.5
	moveSpeed = 4.0   // metres per second
	turnSpeed = 120.0 // degrees per second

	// Holding the trigger rejects a press every frame; log a few, then one
	// in noiseEvery.
	noiseBurst = 3
	noiseEvery = 30
)

// frameInput is one frame of player intent, already edge-detected.
type frameInput struct {
	game.Input
	Move  mgl64.Vec2 // strafe (x), forward (y), each in [-1,1]
	Turn  float64    // -1 left, +1 right
	Copy  bool
	Reset bool
}

// actor is the player body.
type actor struct {
	pos mgl64.Vec3
	yaw float64 // degrees, 0 faces +Z
}

// WorldPosition implements game.Positioned.
func (a *actor) WorldPosition() mgl64.Vec3 { return a.pos }

// weaponSlot ties a loose pickup to the weapon it enables.
type weaponSlot struct {
	pickup *game.Pickup
	fire   *game.FireControl
	body   *game.PropBody
}

// sign is a floating range marker that turns to face the player.
type sign struct {
	label  string
	facing *game.FacingController
}

// Option configures a Game.
type Option func(*Game)

// WithSound wires an audio player into every weapon.
func WithSound(p game.SoundPlayer) Option {
	return func(g *Game) { g.sound = p }
}

// WithClipboard replaces the clipboard writer used by "copy report".
func WithClipboard(write func(string) error) Option {
	return func(g *Game) { g.copyText = write }
}

// WithSeed sets the pellet spread seed.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// Game implements ebiten.Game.
type Game struct {
	cfg    config.Config
	log    zerolog.Logger
	width  int
	height int
	dt     float64
	now    float64
	seed   int64

	player   actor
	camera   *game.Camera
	recoil   *game.RecoilController
	world    *game.BoxWorld
	dummies  []*game.Dummy
	effects  *game.EffectPool
	events   *game.EventLog
	registry *game.PickupRegistry
	mount    *game.EquipMount
	hands    *game.PickupController
	weapons  []*weaponSlot
	signs    []*sign
	anim     *viewModel
	panel    *EventPanel
	face     text.Face

	sound    game.SoundPlayer
	copyText func(string) error
	status   string
	statusAt float64
}

// New builds the range from cfg.
func New(cfg config.Config, log zerolog.Logger, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		log:      log,
		width:    cfg.Sandbox.Width,
		height:   cfg.Sandbox.Height,
		dt:       1.0 / float64(max(cfg.Sandbox.TPS, 1)),
		seed:     1,
		copyText: clipboard.WriteAll,
		panel:    NewEventPanel(),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	for _, o := range opts {
		o(g)
	}

	g.events = game.NewEventLog()
	g.effects = game.NewEffectPool(cfg.Weapon.EffectLifetime)
	g.camera = &game.Camera{}
	g.recoil = game.NewRecoilController(g.camera, cfg.Weapon.RecoverRate)
	g.anim = newViewModel(func() float64 { return g.now })
	g.mount = game.NewEquipMount("hands", g.viewTransform())

	g.buildRange()
	g.registry = game.NewPickupRegistry()
	g.addWeapon("shotgun", mgl64.Vec3{0, 0.1, 3}, cfg.GameWeapon(), 0)
	sawnOff := cfg.GameWeapon()
	sawnOff.Name = "sawn-off"
	sawnOff.SpreadAngle *= 2.5
	sawnOff.MaxRange *= 0.3
	g.addWeapon("sawn-off", mgl64.Vec3{-4, 0.1, 3}, sawnOff, 1)

	g.hands = game.NewPickupController(cfg.GamePickup(), g.registry, g.mount,
		game.WithPickupLogger(logging.Component(log, "pickup")),
		game.WithPickupEvents(g.events),
	)
	return g
}

// buildRange lays out dummies, their signs and a back wall.
func (g *Game) buildRange() {
	g.world = game.NewBoxWorld()
	half := mgl64.Vec3{0.4, 0.9, 0.4}
	for _, d := range []struct {
		name string
		pos  mgl64.Vec3
	}{
		{"8m", mgl64.Vec3{-2, 0.9, 8}},
		{"12m", mgl64.Vec3{2, 0.9, 12}},
		{"20m", mgl64.Vec3{0, 0.9, 20}},
	} {
		dummy := game.NewDummy(d.name, d.pos, half, 100)
		g.dummies = append(g.dummies, dummy)
		g.world.Add(dummy.Box)

		signAt := game.Transform{Position: d.pos.Add(mgl64.Vec3{0, 1.6, 0}), Rotation: mgl64.QuatIdent()}
		g.signs = append(g.signs, &sign{
			label:  d.name,
			facing: game.NewFacingController(signAt, &g.player, g.cfg.Facing.TurnRate),
		})
	}
	g.world.Add(&game.Box{Min: mgl64.Vec3{-12, 0, 28}, Max: mgl64.Vec3{12, 4, 29}})
	g.world.Add(&game.Box{Min: mgl64.Vec3{6, 0, 14}, Max: mgl64.Vec3{7, 2, 16}})
}

// addWeapon places a loose weapon with its own disabled FireControl.
func (g *Game) addWeapon(name string, pos mgl64.Vec3, wc game.WeaponConfig, seedOffset int64) {
	p := game.NewPickup(name, pos, g.cfg.Pickup.TriggerRadius)
	p.EquipOffset = &game.Transform{Position: mgl64.Vec3{-0.25, 0.3, -0.35}, Rotation: mgl64.QuatIdent()}
	body := &game.PropBody{Simulated: true, Collides: true}
	p.Physics = body

	weaponLog := logging.Component(g.log, "weapon")
	fc := game.NewFireControl(wc, &barrelMuzzles{pickup: p}, g.world,
		game.WithLogger(weaponLog),
		game.WithNoiseLogger(logging.Sampled(weaponLog, noiseBurst, time.Second, noiseEvery)),
		game.WithEventLog(g.events),
		game.WithSampler(game.NewSpreadSampler(g.seed+seedOffset)),
		game.WithRecoil(g.recoil),
		game.WithSound(g.sound),
		game.WithAnimator(g.anim),
		game.WithFlash(g.effects),
		game.WithEffects(g.effects),
		game.WithTracers(g.effects),
	)
	fc.SetEnabled(false)
	p.Behavior = fc

	g.registry.Add(p)
	g.weapons = append(g.weapons, &weaponSlot{pickup: p, fire: fc, body: body})
}

// barrelMuzzles places the two barrels at the tip of a weapon, wherever it
// currently is.
type barrelMuzzles struct {
	pickup *game.Pickup
}

// Muzzle implements game.MuzzleSource.
func (m *barrelMuzzles) Muzzle(barrel int) game.Transform {
	x := -0.05
	if barrel == 1 {
		x = 0.05
	}
	tip := game.Transform{Position: mgl64.Vec3{x, 0, 0.7}, Rotation: mgl64.QuatIdent()}
	return m.pickup.WorldTransform().Compose(tip)
}

// viewTransform is the player's eye: yaw from the body, pitch from the
// camera. A positive kick lifts the view.
func (g *Game) viewTransform() game.Transform {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(g.player.yaw), game.AxisUp)
	pitch := mgl64.QuatRotate(mgl64.DegToRad(-game.NormalizeAngle(g.camera.Pitch())), game.AxisRight)
	return game.Transform{
		Position: g.player.pos.Add(mgl64.Vec3{0, eyeHeight, 0}),
		Rotation: yaw.Mul(pitch).Normalize(),
	}
}

// activeWeapon returns the equipped weapon, or nil.
func (g *Game) activeWeapon() *weaponSlot {
	occ := g.mount.Occupant()
	if occ == nil {
		return nil
	}
	for _, w := range g.weapons {
		if w.pickup == occ {
			return w
		}
	}
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.step(pollInput())
	return nil
}

// step advances the range by one frame.
func (g *Game) step(in frameInput) {
	g.now += g.dt
	g.effects.Update(g.now)

	g.movePlayer(in)
	g.mount.World = g.viewTransform()

	g.registry.UpdateProximity(g.player.pos)
	g.hands.Tick(g.dt, g.player.pos, in.Input, g.now)

	if w := g.activeWeapon(); w != nil {
		w.fire.Tick(g.dt, in.Input, g.now)
	}
	g.recoil.Tick(g.dt)

	for _, s := range g.signs {
		s.facing.Tick(g.dt)
	}
	for _, d := range g.dummies {
		d.Step(g.dt)
	}
	g.dropDestroyedWeapons()

	if in.Reset {
		g.resetDummies()
	}
	if in.Copy {
		g.copyReport()
	}
	g.panel.Sync(g.events)
}

func (g *Game) movePlayer(in frameInput) {
	g.player.yaw = game.NormalizeAngle(g.player.yaw + in.Turn*turnSpeed*g.dt)
	if in.Move.Len() < 1e-9 {
		return
	}
	move := in.Move
	if move.Len() > 1 {
		move = move.Normalize()
	}
	rad := mgl64.DegToRad(g.player.yaw)
	fwd := mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}
	right := mgl64.Vec3{math.Cos(rad), 0, -math.Sin(rad)}
	step := fwd.Mul(move.Y()).Add(right.Mul(move.X())).Mul(moveSpeed * g.dt)
	g.player.pos = g.player.pos.Add(step)
}

// dropDestroyedWeapons forgets weapons displaced from the hands.
func (g *Game) dropDestroyedWeapons() {
	kept := g.weapons[:0]
	for _, w := range g.weapons {
		if w.pickup.Destroyed() {
			w.fire.SetEnabled(false)
			continue
		}
		kept = append(kept, w)
	}
	g.weapons = kept
}

func (g *Game) resetDummies() {
	for _, d := range g.dummies {
		d.Reset()
	}
	g.setStatus("dummies reset")
}

func (g *Game) copyReport() {
	w := g.activeWeapon()
	if w == nil {
		g.setStatus("nothing equipped")
		return
	}
	report := game.WeaponDebugReport(w.fire, g.events, g.now, 30)
	if err := g.copyText(report); err != nil {
		g.log.Warn().Err(err).Msg("copy debug report to clipboard")
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("debug report copied")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusAt = g.now
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width + panelWidth, g.height
}

// Size returns the window size including the event panel.
func (g *Game) Size() (int, int) {
	return g.width + panelWidth, g.height
}

// Now returns the range clock.
func (g *Game) Now() float64 { return g.now }

var _ ebiten.Game = (*Game)(nil)
