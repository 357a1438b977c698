package config

import (
	"image/color"
	"math"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Radar Pulse - Space: mute, R: restart, Esc/Q: quit"

	TPS = 60

	// Beam travel axis
	BeamStartX = -60.0
	BeamEndX   = 60.0

	// Hole placement rectangle
	HoleMinX = -6.0
	HoleMaxX = 6.0
	HoleMinY = -4.0
	HoleMaxY = 4.0

	// At 60 TPS a step covers 1.25-1.42 units, wider than the 0.8 trap
	// window, so some pulses skip their hole and leave at BeamEndX.
	PulseMinSpeed = 75.0
	PulseMaxSpeed = 85.0

	TrapThreshold    = 0.4
	TrapSpinVelocity = 15.0
	SpinAcceleration = 25.0
	FadeRate         = 3.5
	OpacityCutoff    = 0.01

	// Pool cadence
	SpawnInterval      = 2.5
	SpawnPopulationMax = 2

	// Orbit agent
	SeekDuration  = 2.0
	WobbleFreq    = 5.0
	WobbleAmp     = 0.2
	OrbitSpeed    = 2.0
	WaveLifetime  = 6.0
	FadeDuration  = 1.5
	StartSpread   = 7.5
	TargetSpread  = 2.5
	AxisTiltMax   = 1.0
	OrbitRadiusLo = 1.0
	OrbitRadiusHi = 3.0

	// Rendering. The camera is orthographic at 35 px per world unit and each
	// pulse is drawn on a 100x100 unit plane.
	PixelsPerUnit  = 35.0
	PlaneSize      = 100.0
	PlanePixels    = 3500
	AgentRadius    = 0.1
	TrailSamples   = 48
	TrailWidthPx   = 3.0
	BloomDownscale = 4

	// Audio
	SampleRate   = 44100
	ScopeRing    = 4096
	PingDuration = 0.45
)

// TwoPi is the upper bound for random planar rotations.
const TwoPi = 2 * math.Pi

// BeamColor is the base beam color fed to the shader as uColor (#39ff14).
var BeamColor = [3]float32{57.0 / 255, 1.0, 20.0 / 255}

// AgentColor is BeamColor doubled so the agent dominates the bloom pass,
// clamped to 8-bit.
var AgentColor = color.RGBA{R: 114, G: 255, B: 40, A: 255}
