package shader

import (
	"math"
	"testing"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceDeclaresContract(t *testing.T) {
	src := string(Source)
	for name := range (Uniforms{}).Map() {
		assert.Contains(t, src, "var "+name+" ", name)
	}
}

func TestMap_Types(t *testing.T) {
	u := Uniforms{
		Color:      config.BeamColor,
		Time:       -12.5,
		HolePos:    [2]float32{5, -3},
		OrbitAngle: 1.25,
		Opacity:    0.75,
		TrapMode:   1,
	}
	m := u.Map()
	require.Len(t, m, 6)
	assert.Equal(t, []float32{5, -3}, m["UHolePos"])
	assert.Equal(t, float32(-12.5), m["UTime"])
	assert.Equal(t, float32(1), m["UTrapMode"])
	assert.Len(t, m["UColor"], 3)
}

func TestIntensity_TravelingBeam(t *testing.T) {
	u := Uniforms{Time: 0, HolePos: [2]float32{3, 0}, Opacity: 1}

	atHead := Intensity(u, vec.Vec2{X: 0, Y: 0})
	ahead := Intensity(u, vec.Vec2{X: 5, Y: 0})
	behind := Intensity(u, vec.Vec2{X: -20, Y: 0})

	assert.InDelta(t, 1.0, atHead, 1e-9)
	assert.Zero(t, ahead, "sharp leading edge")
	assert.InDelta(t, math.Exp(-20*0.25), behind, 1e-9, "exponential trail")
}

func TestIntensity_HeadReachesHoleAtAnyHeight(t *testing.T) {
	for _, y := range []float64{0, 2, -4, 5, 10, 15, -20} {
		u := Uniforms{Time: 3, HolePos: [2]float32{3, float32(y)}, Opacity: 1}
		assert.InDelta(t, 1.0, Intensity(u, vec.Vec2{X: 3, Y: y}), 1e-9, "y=%v", y)
	}
}

func TestIntensity_HeadWidensLeadingEdge(t *testing.T) {
	u := Uniforms{Time: 0, Opacity: 1}
	// past the 0.1 leading ramp only the 0.5 wide head remains
	got := Intensity(u, vec.Vec2{X: 0.25})
	assert.InDelta(t, 1-smoothstep(0, 0.5, 0.25), got, 1e-9)
	assert.Zero(t, Intensity(u, vec.Vec2{X: 0.5}))
}

func TestIntensity_SpiralLagsOrbitAngle(t *testing.T) {
	// At distance 4 the lag is 6 rad, so an orbit angle of 6 cancels it and
	// the sample sits exactly on the beam head.
	u := Uniforms{Time: 4, TrapMode: 1, OrbitAngle: 6, Opacity: 1}
	assert.InDelta(t, 1.0, Intensity(u, vec.Vec2{X: 4}), 1e-9)

	u.OrbitAngle = -6
	assert.Less(t, Intensity(u, vec.Vec2{X: 4}), 0.5)
}

func TestSpin_Clockwise(t *testing.T) {
	r := spin(vec.Vec2{X: 1}, math.Pi/2)
	assert.InDelta(t, 0.0, r.X, 1e-12)
	assert.InDelta(t, -1.0, r.Y, 1e-12)
}

func TestIntensity_ImplosionShrinks(t *testing.T) {
	sample := vec.Vec2{X: 10, Y: 0}
	base := Uniforms{Time: 0, HolePos: [2]float32{0, 0}, TrapMode: 1}

	full := base
	full.Opacity = 1
	small := base
	small.Opacity = 0.5 // radius 6.25, sample is outside

	assert.Greater(t, Intensity(full, sample), 0.0)
	assert.Zero(t, Intensity(small, sample))
	assert.Greater(t, Intensity(small, vec.Vec2{X: 0.5}), 0.0)
}

func TestIntensity_ZeroOpacityIsInvisible(t *testing.T) {
	u := Uniforms{Time: 0, TrapMode: 1, Opacity: 0}
	assert.Zero(t, Intensity(u, vec.Vec2{}))
}

func TestBrightness_FlareOnlyAtTrappedHole(t *testing.T) {
	trapped := Uniforms{Time: 2, HolePos: [2]float32{2, 1}, TrapMode: 1, Opacity: 1}
	traveling := trapped
	traveling.TrapMode = 0

	hole := vec.Vec2{X: 2, Y: 1}
	assert.InDelta(t, 25.0, Brightness(trapped, hole), 1e-9)
	assert.InDelta(t, 10.0, Brightness(traveling, hole), 1e-9)
	assert.LessOrEqual(t, Brightness(trapped, vec.Vec2{X: 2, Y: 2}), 10.0)
}

func TestPlaneToWorld(t *testing.T) {
	c := PlaneToWorld(config.PlanePixels/2, config.PlanePixels/2)
	assert.InDelta(t, 0.0, c.X, 1e-9)
	assert.InDelta(t, 0.0, c.Y, 1e-9)

	tl := PlaneToWorld(0, 0)
	assert.InDelta(t, -config.PlaneSize/2, tl.X, 1e-9)
	assert.InDelta(t, config.PlaneSize/2, tl.Y, 1e-9)
}
