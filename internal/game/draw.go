package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/orbit"
)

var background = color.RGBA{R: 4, G: 6, B: 14, A: 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.beam == nil || w == 0 || h == 0 {
		return
	}
	g.ensureTargets(w, h)

	g.scene.Clear()
	g.drawPulses(g.scene, float64(w)/2, float64(h)/2)
	g.drawAgent(g.scene, float64(w)/2, float64(h)/2)

	screen.DrawImage(g.scene, nil)
	if g.settings.Bloom.Enabled {
		g.drawBloom(screen)
	}

	g.drawHUD(screen)
}

func (g *Game) ensureTargets(w, h int) {
	if g.scene != nil && g.scene.Bounds().Dx() == w && g.scene.Bounds().Dy() == h {
		return
	}
	if g.scene != nil {
		g.scene.Deallocate()
		g.glow.Deallocate()
	}
	g.scene = ebiten.NewImage(w, h)
	g.glow = ebiten.NewImage(max(w/config.BloomDownscale, 1), max(h/config.BloomDownscale, 1))
}

func (g *Game) drawPulses(dst *ebiten.Image, cx, cy float64) {
	half := float64(config.PlanePixels) / 2
	for _, p := range g.world.Pool.Pulses() {
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Rotate(p.Rotation)
		op.GeoM.Translate(cx, cy)
		op.Uniforms = p.Uniforms().Map()
		op.Blend = ebiten.BlendLighter
		dst.DrawRectShader(config.PlanePixels, config.PlanePixels, g.beam, op)
	}
}

func (g *Game) drawAgent(dst *ebiten.Image, cx, cy float64) {
	f := g.world.Frame
	if f.Scale <= 0 {
		return
	}

	if f.Phase != orbit.Seeking {
		// faint ring tracing the orbit around the target
		tx, ty := project(g.world.Agent.Target, cx, cy)
		ring := g.world.Agent.Radius * config.PixelsPerUnit
		vector.StrokeCircle(dst, float32(tx), float32(ty), float32(ring), 1, withAlpha(config.AgentColor, 0.2*f.Scale), true)
	}

	g.drawTrail(dst, cx, cy, f.Scale)

	x, y := project(f.Position, cx, cy)
	radius := config.AgentRadius * config.PixelsPerUnit * f.Scale
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(radius*2.2), withAlpha(config.AgentColor, 0.35*f.Scale), true)
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(radius), config.AgentColor, true)
}

// drawTrail strokes the recent agent path, thinning and fading toward the
// tail.
func (g *Game) drawTrail(dst *ebiten.Image, cx, cy, scale float64) {
	pts := g.trail.points()
	n := len(pts)
	for i := 1; i < n; i++ {
		k := fade(i, n)
		ax, ay := project(pts[i-1], cx, cy)
		bx, by := project(pts[i], cx, cy)
		width := float32(config.TrailWidthPx * k * scale)
		if width <= 0 {
			continue
		}
		vector.StrokeLine(dst, float32(ax), float32(ay), float32(bx), float32(by), width, withAlpha(config.AgentColor, k), true)
	}
}

// drawBloom downsamples the scene and adds it back blurred by linear
// filtering. Cheap, but enough for a glow.
func (g *Game) drawBloom(screen *ebiten.Image) {
	g.glow.Clear()

	down := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	down.GeoM.Scale(1/float64(config.BloomDownscale), 1/float64(config.BloomDownscale))
	g.glow.DrawImage(g.scene, down)

	up := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear, Blend: ebiten.BlendLighter}
	up.GeoM.Scale(float64(config.BloomDownscale), float64(config.BloomDownscale))
	up.ColorScale.ScaleAlpha(float32(g.settings.Bloom.Strength))
	screen.DrawImage(g.glow, up)
}
