// Package orbit implements the agent that seeks a target, circles it, then
// fades out and asks its owner to restart everything.
package orbit

import (
	"math"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/rng"
	"github.com/iburimskiy/radar-pulse/internal/vec"
)

type Phase int

const (
	Seeking Phase = iota
	Orbiting
	Fading
)

func (p Phase) String() string {
	switch p {
	case Seeking:
		return "seeking"
	case Orbiting:
		return "orbiting"
	case Fading:
		return "fading"
	}
	return "unknown"
}

type Params struct {
	Start  vec.Vec3
	Target vec.Vec3
	Axis   vec.Vec3
	Radius float64
}

func RandomParams(src rng.Source) Params {
	spread := func(r float64) vec.Vec3 {
		return vec.Vec3{
			X: rng.Range(src, -r, r),
			Y: rng.Range(src, -r, r),
			Z: rng.Range(src, -r, r),
		}
	}
	return Params{
		Start:  spread(config.StartSpread),
		Target: spread(config.TargetSpread),
		Axis: tiltedUp(
			rng.Range(src, 0, config.AxisTiltMax),
			rng.Range(src, 0, config.AxisTiltMax),
		),
		Radius: rng.Range(src, config.OrbitRadiusLo, config.OrbitRadiusHi),
	}
}

// tiltedUp turns +Y by the Euler angles (x, y, 0) applied in XYZ order.
// Since +Y lies on the Y axis the result always has X == 0, so the orbit
// circle is never tilted.
func tiltedUp(x, y float64) vec.Vec3 {
	return vec.Vec3{Y: 1}.RotateY(y).RotateX(x)
}

// Frame is what the agent produces for one clock reading.
type Frame struct {
	Phase    Phase
	Position vec.Vec3
	Scale    float64
	// Alpha is the seek interpolation factor, clamped to [0, 1].
	Alpha float64
	// RestartRequested is set on the single frame where the fade completes.
	RestartRequested bool
}

type Agent struct {
	Params
	born      float64
	phase     Phase
	restarted bool
}

// New creates an agent whose age is measured from born on the caller's clock.
func New(p Params, born float64) *Agent {
	return &Agent{Params: p, born: born}
}

func (a *Agent) Phase() Phase { return a.phase }

func (a *Agent) Age(now float64) float64 { return now - a.born }

// OrbitOffset is the point on the orbit circle at clock time now. The circle
// lies in XZ and is tilted about X by Axis.X only.
func (a *Agent) OrbitOffset(now float64) vec.Vec3 {
	s, c := math.Sincos(now * config.OrbitSpeed)
	return vec.Vec3{X: c * a.Radius, Z: s * a.Radius}.RotateX(a.Axis.X)
}

// Update advances the lifecycle to clock time now.
func (a *Agent) Update(now float64) Frame {
	age := a.Age(now)
	if a.phase != Fading && age > config.WaveLifetime {
		a.phase = Fading
	}

	f := Frame{Phase: a.phase, Scale: 1, Alpha: 1}
	switch a.phase {
	case Seeking:
		f.Alpha = vec.Clamp01(age / config.SeekDuration)
		f.Position = vec.Lerp3(a.Start, a.Target, f.Alpha)
		f.Position.Y += math.Sin(now*config.WobbleFreq) * config.WobbleAmp
		if f.Alpha >= 1 {
			a.phase = Orbiting
		}
	case Orbiting:
		f.Position = a.Target.Add(a.OrbitOffset(now))
	case Fading:
		f.Position = a.Target.Add(a.OrbitOffset(now))
		progress := (age - config.WaveLifetime) / config.FadeDuration
		f.Scale = math.Max(1-progress, 0)
		if f.Scale == 0 && !a.restarted {
			a.restarted = true
			f.RestartRequested = true
		}
	}
	return f
}
