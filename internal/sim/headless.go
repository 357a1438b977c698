package sim

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/radar-pulse/internal/pulse"
	"github.com/iburimskiy/radar-pulse/internal/shader"
)

type Summary struct {
	Frames         int
	Spawned        int
	Trapped        int
	Completed      int
	Restarts       int
	PeakPopulation int
	SimSeconds     float64
}

func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Int("frames", s.Frames).
		Int("spawned", s.Spawned).
		Int("trapped", s.Trapped).
		Int("completed", s.Completed).
		Int("restarts", s.Restarts).
		Int("peak_population", s.PeakPopulation).
		Float64("sim_seconds", s.SimSeconds)
}

// Run steps w at a fixed dt until seconds of simulated time have passed or
// ctx is cancelled.
func Run(ctx context.Context, w *World, seconds, dt float64, log zerolog.Logger) (Summary, error) {
	var sum Summary
	frames := int(math.Round(seconds / dt))

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		res := w.Step(dt)
		sum.Frames++
		sum.SimSeconds += dt

		for _, ev := range res.Events {
			switch ev.Kind {
			case pulse.EventSpawned:
				sum.Spawned++
			case pulse.EventTrapped:
				sum.Trapped++
			case pulse.EventCompleted:
				sum.Completed++
			}
			logEvent(log, res, ev)
		}
		if res.Population > sum.PeakPopulation {
			sum.PeakPopulation = res.Population
		}
		if res.Restarted {
			sum.Restarts++
			log.Info().Int("restarts", w.Restarts).Float64("sim_seconds", sum.SimSeconds).Msg("orbit agent faded out, world restarted")
		}
	}
	return sum, nil
}

func logEvent(log zerolog.Logger, res StepResult, ev pulse.Event) {
	e := log.Debug().Str("event", ev.Kind.String()).Stringer("pulse", ev.ID).Float64("x", ev.X).Int("population", res.Population)
	if ev.Kind == pulse.EventTrapped {
		e = e.Float64("hole_intensity", HoleIntensity(ev))
	}
	e.Msg("pulse")
}

// HoleIntensity is the beam intensity at the hole center for the pulse state
// captured in ev.
func HoleIntensity(ev pulse.Event) float64 {
	return shader.Intensity(ev.Uniforms, ev.Hole)
}
