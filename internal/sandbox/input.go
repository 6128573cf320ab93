package sandbox

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollInput reads the keyboard and mouse. Actions are edge-triggered;
// movement and turning are held.
func pollInput() frameInput {
	var in frameInput
	in.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Pickup = inpututil.IsKeyJustPressed(ebiten.KeyE)
	in.Copy = inpututil.IsKeyJustPressed(ebiten.KeyC)
	in.Reset = inpututil.IsKeyJustPressed(ebiten.KeyF1)

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Move[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Move[1]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Move[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Move[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.Turn--
	}
	return in
}
