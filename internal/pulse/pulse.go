// Package pulse implements the traveling beam entities and the pool that
// spawns and retires them.
package pulse

import (
	"github.com/google/uuid"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/rng"
	"github.com/iburimskiy/radar-pulse/internal/shader"
	"github.com/iburimskiy/radar-pulse/internal/vec"
)

type Mode int

const (
	Traveling Mode = iota
	Trapped
)

func (m Mode) String() string {
	if m == Trapped {
		return "trapped"
	}
	return "traveling"
}

// Pulse is one beam. Its motion state is mutated only by Step.
type Pulse struct {
	ID       uuid.UUID
	X        float64
	Hole     vec.Vec2
	Rotation float64
	Speed    float64

	mode         Mode
	orbitAngle   float64
	spinVelocity float64
	opacity      float64
}

// Params fixes the creation-time values of a pulse.
type Params struct {
	Hole     vec.Vec2
	Rotation float64
	Speed    float64
}

// RandomParams draws hole position, rotation and speed from src.
func RandomParams(src rng.Source) Params {
	return Params{
		Hole: vec.Vec2{
			X: rng.Range(src, config.HoleMinX, config.HoleMaxX),
			Y: rng.Range(src, config.HoleMinY, config.HoleMaxY),
		},
		Rotation: rng.Range(src, 0, config.TwoPi),
		Speed:    rng.Range(src, config.PulseMinSpeed, config.PulseMaxSpeed),
	}
}

func New(p Params) *Pulse {
	return &Pulse{
		ID:       uuid.New(),
		X:        config.BeamStartX,
		Hole:     p.Hole,
		Rotation: p.Rotation,
		Speed:    p.Speed,
		opacity:  1,
	}
}

func (p *Pulse) Mode() Mode            { return p.mode }
func (p *Pulse) OrbitAngle() float64   { return p.orbitAngle }
func (p *Pulse) SpinVelocity() float64 { return p.spinVelocity }
func (p *Pulse) Opacity() float64      { return p.opacity }

// Step advances the pulse by dt seconds and reports whether it is finished.
// A finished pulse should be dropped; stepping it again is harmless but
// meaningless.
func (p *Pulse) Step(dt float64) (done bool) {
	if p.mode == Traveling {
		p.X += p.Speed * dt
		if abs(p.X-p.Hole.X) < config.TrapThreshold {
			p.X = p.Hole.X
			p.mode = Trapped
			p.spinVelocity = config.TrapSpinVelocity
			return false
		}
		return p.X > config.BeamEndX
	}

	p.orbitAngle += p.spinVelocity * dt
	p.spinVelocity += config.SpinAcceleration * dt
	p.opacity = vec.Lerp(p.opacity, 0, dt*config.FadeRate)
	return p.opacity <= config.OpacityCutoff
}

// Uniforms maps the current state onto the shader contract.
func (p *Pulse) Uniforms() shader.Uniforms {
	var trap float32
	if p.mode == Trapped {
		trap = 1
	}
	return shader.Uniforms{
		Color:      config.BeamColor,
		Time:       float32(p.X),
		HolePos:    [2]float32{float32(p.Hole.X), float32(p.Hole.Y)},
		OrbitAngle: float32(p.orbitAngle),
		Opacity:    float32(p.opacity),
		TrapMode:   trap,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
