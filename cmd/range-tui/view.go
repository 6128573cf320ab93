package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Gunplay/internal/game"
)

// Lane scale: one column is half a metre downrange, one row half a metre
// sideways.
const (
	metersPerCol = 0.5
	metersPerRow = 0.5
	hudRows      = 5
	logRows      = 6
)

var (
	styleDefault = tcell.StyleDefault
	styleShooter = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTracer  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleMiss    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleImpact  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFlash   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// rangeView is a top-down terminal rendering of a Scenario with live keys.
type rangeView struct {
	screen  tcell.Screen
	s       *game.Scenario
	pending game.Input
}

func newRange(screen tcell.Screen, s *game.Scenario) *rangeView {
	return &rangeView{screen: screen, s: s}
}

// handleEvent latches key presses until the next tick. It returns false to quit.
func (r *rangeView) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

func (r *rangeView) handleKey(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ch {
		case 'q':
			return false
		case ' ', 'f':
			r.pending.Fire = true
		case 'r':
			r.pending.Reload = true
		case 'x':
			for _, d := range r.s.Dummies {
				d.Reset()
			}
		}
	}
	return true
}

// tick advances the range one frame with whatever was pressed since the last.
func (r *rangeView) tick() {
	r.s.Advance(r.pending)
	r.pending = game.Input{}
}

// laneRows is how many rows the top-down lane gets at the current size.
func (r *rangeView) laneRows() int {
	_, h := r.screen.Size()
	return max(h-hudRows-logRows, 3)
}

// cell maps a world point to a lane cell. ok is false off-screen.
func (r *rangeView) cell(p mgl64.Vec3) (x, y int, ok bool) {
	w, _ := r.screen.Size()
	rows := r.laneRows()
	x = 1 + int(math.Round(p.Z()/metersPerCol))
	y = rows/2 + int(math.Round(p.X()/metersPerRow))
	return x, y, x >= 0 && x < w && y >= 0 && y < rows
}

func (r *rangeView) draw() {
	r.screen.Clear()
	r.drawLane()
	r.drawHUD(r.laneRows())
	r.drawLog(r.laneRows() + hudRows)
	r.screen.Show()
}

func (r *rangeView) drawLane() {
	w, _ := r.screen.Size()
	rows := r.laneRows()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, rows-1, '─', nil, styleLabel)
	}

	for _, d := range r.s.Dummies {
		r.drawDummy(d)
	}

	life := game.TracerLifetime()
	for _, t := range r.s.Effects.Tracers() {
		if r.s.Effects.Age(t.SpawnedAt, life) >= 1 {
			continue
		}
		style := styleMiss
		if t.Hit {
			style = styleTracer
		}
		r.drawSegment(t.From, t.To, '·', style)
	}
	for _, e := range r.s.Effects.Effects() {
		if x, y, ok := r.cell(e.Position); ok {
			r.screen.SetContent(x, y, '*', nil, styleImpact)
		}
	}

	sx, sy, _ := r.cell(mgl64.Vec3{})
	shooter := styleShooter
	if len(r.s.Effects.Flashes()) > 0 {
		shooter = styleFlash
	}
	r.screen.SetContent(sx, sy, '>', nil, shooter)
}

func (r *rangeView) drawDummy(d *game.Dummy) {
	minX, minY, okMin := r.cell(d.Box.Min)
	maxX, maxY, okMax := r.cell(d.Box.Max)
	if !okMin && !okMax {
		return
	}
	style := tcell.StyleDefault.Foreground(healthColor(d))
	glyph := '█'
	if d.Down() {
		glyph = '░'
	}
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	r.drawText(minX, maxY+1, styleLabel, d.Name)
}

// drawSegment plots a world-space segment cell by cell.
func (r *rangeView) drawSegment(from, to mgl64.Vec3, glyph rune, style tcell.Style) {
	steps := int(to.Sub(from).Len()/metersPerCol) + 1
	for i := 0; i <= steps; i++ {
		p := from.Add(to.Sub(from).Mul(float64(i) / float64(steps)))
		if x, y, ok := r.cell(p); ok {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *rangeView) drawHUD(top int) {
	for i, line := range r.hudLines() {
		style := styleDefault
		if i == 1 && r.s.Weapon.Reloading() {
			style = styleWarn
		}
		r.drawText(0, top+i, style, line)
	}
}

func (r *rangeView) hudLines() []string {
	st := r.s.Weapon.State()
	stats := r.s.Weapon.Stats()
	status := "ready"
	if st.Reloading {
		status = fmt.Sprintf("RELOADING (%.1fs)", max(st.ReloadDoneAt-r.s.Now(), 0))
	} else if st.ShellsLoaded == 0 {
		status = "EMPTY"
	}
	reserve := fmt.Sprintf("%d", st.ReserveAmmo)
	if st.ReserveAmmo == game.InfiniteReserve {
		reserve = "inf"
	}
	return []string{
		fmt.Sprintf("%s  SHELLS %d/%d  RESERVE %s  next barrel %d",
			r.s.Weapon.Config().Name, st.ShellsLoaded, st.MagazineCapacity, reserve, st.NextBarrel),
		status,
		fmt.Sprintf("shots %d  pellets %d  hits %d  damage %.0f  recoil %.1f°",
			stats.Shots, stats.Pellets, stats.PelletHits, stats.DamageDealt, r.s.Recoil.Offset()),
		fmt.Sprintf("t=%.2fs", r.s.Now()),
		"space fire  r reload  x reset dummies  q quit",
	}
}

// drawLog shows the newest events that fit below the HUD.
func (r *rangeView) drawLog(top int) {
	entries := r.s.Log.Entries()
	start := max(len(entries)-logRows, 0)
	for i, e := range entries[start:] {
		r.drawText(0, top+i, styleLabel, e.String())
	}
}

func (r *rangeView) drawText(x, y int, style tcell.Style, s string) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range s {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// healthColor fades from green to red as a dummy loses health.
func healthColor(d *game.Dummy) tcell.Color {
	if d.Down() || d.MaxHealth <= 0 {
		return tcell.ColorDarkRed
	}
	f := math.Max(0, math.Min(1, d.Health/d.MaxHealth))
	return tcell.NewRGBColor(int32(255*(1-f)), int32(200*f), 40)
}
