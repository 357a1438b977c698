package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/vec"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// project maps a world position onto the screen around (cx, cy). The camera
// is orthographic and looks down -Z, so Z is dropped.
func project(p vec.Vec3, cx, cy float64) (x, y float64) {
	return cx + p.X*config.PixelsPerUnit, cy - p.Y*config.PixelsPerUnit
}

// withAlpha scales c by a in premultiplied form.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = vec.Clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// formatClock formats simulated seconds as SS.s
func formatClock(seconds float64) string {
	return fmt.Sprintf("%05.1fs", seconds)
}
