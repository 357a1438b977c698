// Package shader holds the radar beam Kage program and the uniform contract
// that entity state is mapped onto.
package shader

import (
	_ "embed"
	"math"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/vec"
)

//go:embed radar.kage
var Source []byte

// Uniforms is the per-draw parameter block. Time is the beam head x
// coordinate, not wall-clock time.
type Uniforms struct {
	Color      [3]float32
	Time       float32
	HolePos    [2]float32
	OrbitAngle float32
	Opacity    float32
	TrapMode   float32
}

// Map returns the uniforms keyed by their Kage variable names.
func (u Uniforms) Map() map[string]any {
	return map[string]any{
		"UColor":      u.Color[:],
		"UTime":       u.Time,
		"UHolePos":    u.HolePos[:],
		"UOrbitAngle": u.OrbitAngle,
		"UOpacity":    u.Opacity,
		"UTrapMode":   u.TrapMode,
	}
}

func smoothstep(e0, e1, x float64) float64 {
	t := vec.Clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// spin turns v clockwise by a, matching the Kage helper.
func spin(v vec.Vec2, a float64) vec.Vec2 {
	s, c := math.Sincos(a)
	return vec.Vec2{X: c*v.X + s*v.Y, Y: -s*v.X + c*v.Y}
}

// beam evaluates the fragment program at plane point p (world units, y up)
// and returns its beam strength before opacity, plus the distance to the
// hole.
func beam(u Uniforms, p vec.Vec2) (strength, dist float64) {
	hole := vec.Vec2{X: float64(u.HolePos[0]), Y: float64(u.HolePos[1])}
	trap := float64(u.TrapMode)

	toPixel := p.Sub(hole)
	dist = toPixel.Len()
	lag := dist * 1.5 * trap
	r := spin(toPixel, (float64(u.OrbitAngle)-lag)*trap)

	sd := hole.X + r.X - float64(u.Time)
	if sd > 0 {
		strength = 1 - smoothstep(0, 0.1, sd)
	} else {
		strength = math.Exp(sd * 0.25)
	}
	strength = math.Max(strength, 1-smoothstep(0, 0.5, math.Abs(sd)))

	if trap > 0 {
		radius := math.Pow(float64(u.Opacity), 4) * 100
		strength *= 1 - smoothstep(radius*0.5, radius+0.0001, dist)
	}
	return strength, dist
}

// Intensity is the fragment alpha at p: beam strength times opacity.
func Intensity(u Uniforms, p vec.Vec2) float64 {
	b, _ := beam(u, p)
	return vec.Clamp01(b * float64(u.Opacity))
}

// Brightness is the unclamped color gain at p before premultiplication,
// including the white flare right at a trapping hole.
func Brightness(u Uniforms, p vec.Vec2) float64 {
	b, dist := beam(u, p)
	gain := b * 10
	if u.TrapMode > 0.5 && dist < 0.5 {
		gain += b * 15
	}
	return gain
}

// PlaneToWorld converts a pixel offset inside the drawn plane to world units.
func PlaneToWorld(px, py float64) vec.Vec2 {
	return vec.Vec2{
		X: (px/config.PlanePixels - 0.5) * config.PlaneSize,
		Y: -(py/config.PlanePixels - 0.5) * config.PlaneSize,
	}
}
