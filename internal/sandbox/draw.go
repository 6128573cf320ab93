package sandbox

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Gunplay/internal/game"
)

const (
	pxPerMetre   = 20.0
	groundMargin = 40
	statusTTL    = 2.5
)

// project maps a world point onto the top-down view: +X right, +Z up the screen.
func (g *Game) project(p mgl64.Vec3) (float32, float32) {
	sx := float64(g.width)/2 + p.X()*pxPerMetre
	sy := float64(g.height-groundMargin) - p.Z()*pxPerMetre
	return float32(sx), float32(sy)
}

func drawText(dst *ebiten.Image, face text.Face, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 22, B: 18, A: 255})
	g.drawGrid(screen)
	g.drawBoxes(screen)
	g.drawPickups(screen)
	g.drawImpacts(screen)
	g.drawTracers(screen)
	g.drawFlashes(screen)
	g.drawPlayer(screen)
	g.drawSigns(screen)
	g.drawHUD(screen)
	g.panel.Draw(screen, g.face, g.width, g.height)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	c := color.RGBA{R: 34, G: 44, B: 34, A: 255}
	for z := 0.0; z <= 30; z += 5 {
		x0, y := g.project(mgl64.Vec3{-24, 0, z})
		x1, _ := g.project(mgl64.Vec3{24, 0, z})
		vector.StrokeLine(screen, x0, y, x1, y, 1, c, false)
		drawText(screen, g.face, fmt.Sprintf("%.0fm", z), 4, int(y)-14, c)
	}
}

func (g *Game) drawBoxes(screen *ebiten.Image) {
	for _, b := range g.world.Boxes() {
		x0, y1 := g.project(b.Min)
		x1, y0 := g.project(b.Max)
		fill := color.RGBA{R: 90, G: 90, B: 96, A: 255}
		if d, ok := b.Object.(*game.Dummy); ok {
			frac := d.Health / math.Max(d.MaxHealth, 1)
			fill = color.RGBA{R: uint8(200 - 120*frac), G: uint8(60 + 140*frac), B: 60, A: 255}
			if d.Down() {
				fill = color.RGBA{R: 60, G: 30, B: 30, A: 255}
			}
		}
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, fill, false)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, color.RGBA{R: 20, G: 20, B: 20, A: 255}, false)
	}
}

func (g *Game) drawPickups(screen *ebiten.Image) {
	candidate := g.hands.Candidate()
	for _, w := range g.weapons {
		p := w.pickup
		if p.Equipped() {
			continue
		}
		x, y := g.project(p.Transform.Position)
		ring := color.RGBA{R: 80, G: 120, B: 80, A: 120}
		if p.InRange() {
			ring = color.RGBA{R: 140, G: 220, B: 140, A: 200}
		}
		vector.StrokeCircle(screen, x, y, float32(p.TriggerRadius*pxPerMetre), 1, ring, false)
		vector.FillRect(screen, x-3, y-12, 6, 24, color.RGBA{R: 150, G: 110, B: 70, A: 255}, false)
		if p == candidate {
			drawText(screen, g.face, "[E] "+p.Name, int(x)+10, int(y)-8, color.White)
		}
	}
}

// drawTracers renders each pellet path with a bright head racing ahead of
// a fading tail.
func (g *Game) drawTracers(screen *ebiten.Image) {
	life := game.TracerLifetime()
	for _, t := range g.effects.Tracers() {
		progress := g.effects.Age(t.SpawnedAt, life)
		fx, fy := g.project(t.From)
		tx, ty := g.project(t.To)

		headT := math.Min(1.0, progress*2.0+0.25)
		tailT := math.Max(0.0, headT-0.35)
		fade := float32(1.0 - progress*progress)

		const nSeg = 4
		for i := 0; i < nSeg; i++ {
			t0 := float32(tailT + (headT-tailT)*float64(i)/nSeg)
			t1 := float32(tailT + (headT-tailT)*float64(i+1)/nSeg)
			intensity := float32(i+1) / nSeg
			a := uint8(210 * intensity * fade)
			vector.StrokeLine(screen,
				fx+(tx-fx)*t0, fy+(ty-fy)*t0,
				fx+(tx-fx)*t1, fy+(ty-fy)*t1,
				0.8, color.RGBA{R: 255, G: 210, B: 100, A: a}, false)
		}
		if t.Hit && progress < 0.3 {
			vector.FillCircle(screen, tx, ty, 2.5, color.RGBA{R: 255, G: 240, B: 180, A: 180}, false)
		}
	}
}

func (g *Game) drawFlashes(screen *ebiten.Image) {
	life := game.FlashLifetime()
	for _, f := range g.effects.Flashes() {
		progress := g.effects.Age(f.SpawnedAt, life)
		alpha := uint8(255 * (1.0 - progress))
		x, y := g.project(f.Muzzle.Position)

		glowR := float32(9.0 * (1.0 - progress*0.6))
		vector.FillCircle(screen, x, y, glowR, color.RGBA{R: 255, G: 180, B: 40, A: uint8(float64(alpha) * 0.3)}, false)
		coreR := float32(4.0 * (1.0 - progress*0.5))
		vector.FillCircle(screen, x, y, coreR, color.RGBA{R: 255, G: 255, B: 220, A: alpha}, false)

		ex, ey := g.project(f.Muzzle.Position.Add(f.Muzzle.Forward().Mul(0.7 * (1 - progress*0.7))))
		vector.StrokeLine(screen, x, y, ex, ey, 1.5, color.RGBA{R: 255, G: 240, B: 160, A: uint8(float64(alpha) * 0.7)}, false)
	}
}

func (g *Game) drawImpacts(screen *ebiten.Image) {
	for _, e := range g.effects.Effects() {
		age := g.effects.Age(e.SpawnedAt, g.effects.EffectLifetime())
		x, y := g.project(e.Position)
		a := uint8(200 * (1 - age))
		vector.FillCircle(screen, x, y, 2, color.RGBA{R: 200, G: 180, B: 140, A: a}, false)
		nx, ny := g.project(e.Position.Add(e.Rotation.Rotate(game.AxisForward).Mul(0.3)))
		vector.StrokeLine(screen, x, y, nx, ny, 1, color.RGBA{R: 200, G: 180, B: 140, A: a / 2}, false)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	x, y := g.project(g.player.pos)
	vector.FillCircle(screen, x, y, 7, color.RGBA{R: 70, G: 130, B: 220, A: 255}, false)
	view := g.viewTransform()
	lx, ly := g.project(g.player.pos.Add(view.Forward().Mul(1.2)))
	vector.StrokeLine(screen, x, y, lx, ly, 2, color.RGBA{R: 170, G: 200, B: 255, A: 255}, false)

	w := g.activeWeapon()
	if w == nil {
		return
	}
	wt := w.pickup.WorldTransform()
	// Reload tilts the barrels aside; firing jolts them back.
	trigger, p := g.anim.pose(w.fire.Config().ReloadTime)
	cfg := w.fire.Config()
	switch {
	case trigger == cfg.ReloadTrigger && w.fire.Reloading():
		wt.Rotation = wt.Rotation.Mul(mgl64.QuatRotate(math.Sin(p*math.Pi)*0.8, game.AxisUp))
	case trigger == cfg.FireTrigger && p < 0.1:
		wt.Position = wt.Position.Sub(wt.Forward().Mul(0.15 * (1 - p/0.1)))
	}
	bx, by := g.project(wt.Position)
	tx, ty := g.project(wt.Position.Add(wt.Forward().Mul(0.8)))
	vector.StrokeLine(screen, bx, by, tx, ty, 4, color.RGBA{R: 150, G: 110, B: 70, A: 255}, false)
}

func (g *Game) drawSigns(screen *ebiten.Image) {
	for _, s := range g.signs {
		t := s.facing.Transform
		x, y := g.project(t.Position)
		// The readable side faces -Z in the sign's own frame.
		rx, ry := g.project(t.Position.Sub(t.Forward().Mul(0.8)))
		vector.StrokeLine(screen, x, y, rx, ry, 1, color.RGBA{R: 230, G: 230, B: 120, A: 200}, false)
		drawText(screen, g.face, s.label, int(x)+4, int(y)-16, color.RGBA{R: 230, G: 230, B: 120, A: 255})
	}
}

// hudLines is the HUD text for the current frame.
func (g *Game) hudLines() []string {
	lines := []string{}
	if w := g.activeWeapon(); w != nil {
		st := w.fire.State()
		lines = append(lines, fmt.Sprintf("%s  SHELLS %d/%d  RESERVE %s",
			w.fire.Config().Name, st.ShellsLoaded, st.MagazineCapacity, reserveText(st.ReserveAmmo)))
		if st.Reloading {
			remaining := math.Max(0, st.ReloadDoneAt-g.now)
			lines = append(lines, fmt.Sprintf("RELOADING %.1fs", remaining))
		}
	} else {
		lines = append(lines, "unarmed: walk to a weapon and press E")
	}
	lines = append(lines, fmt.Sprintf("pitch %+.1f  recoil %.1f", game.NormalizeAngle(g.camera.Pitch()), g.recoil.Offset()))
	lines = append(lines, "WASD move  Q/arrows turn  SPACE fire  R reload  C copy report  F1 reset")
	if g.status != "" && g.now-g.statusAt < statusTTL {
		lines = append(lines, g.status)
	}
	return lines
}

func reserveText(n int) string {
	if n == game.InfiniteReserve {
		return "inf"
	}
	return fmt.Sprintf("%d", n)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	const lineH = 15
	boxH := float32(len(lines)*lineH + 8)
	vector.FillRect(screen, 4, 4, 560, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(screen, 4, 4, 560, boxH, 1, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	for i, l := range lines {
		drawText(screen, g.face, l, 10, 8+i*lineH, color.White)
	}
}
