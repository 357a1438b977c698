package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	scopeSamples = 512
	scopeWidth   = 256
	scopeHeight  = 48
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	status := fmt.Sprintf("t=%s  pulses=%d  agent=%s  restarts=%d",
		formatClock(w.Now), w.Pool.Len(), w.Frame.Phase, w.Restarts)
	switch {
	case g.sonar == nil:
		status += "  audio=off"
	case g.muted:
		status += "  audio=muted"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	g.drawScope(screen)
}

// drawScope traces the last few milliseconds of sonar output.
func (g *Game) drawScope(screen *ebiten.Image) {
	samples := g.sonar.scope(scopeSamples)
	if len(samples) < 2 {
		return
	}

	x0 := float32(12)
	y0 := float32(screen.Bounds().Dy() - scopeHeight - 12)
	mid := y0 + scopeHeight/2
	vector.StrokeRect(screen, x0, y0, scopeWidth, scopeHeight, 1, color.RGBA{R: 40, G: 50, B: 70, A: 200}, false)

	step := float32(scopeWidth) / float32(len(samples)-1)
	// the trace drifts around the wheel from the beam green
	r, gv, b := hsvToRgb(110+g.colorPhase*360, 0.9, 1.0)
	trace := color.RGBA{R: r, G: gv, B: b, A: 255}
	for i := 1; i < len(samples); i++ {
		xa := x0 + float32(i-1)*step
		xb := x0 + float32(i)*step
		ya := mid - float32(samples[i-1])*scopeHeight/2
		yb := mid - float32(samples[i])*scopeHeight/2
		vector.StrokeLine(screen, xa, ya, xb, yb, 1, trace, true)
	}
}
