// Package sim owns the top-level animation state and the lifecycle rules
// that tie the pulse pool and the orbit agent together.
package sim

import (
	"github.com/iburimskiy/radar-pulse/internal/orbit"
	"github.com/iburimskiy/radar-pulse/internal/pulse"
	"github.com/iburimskiy/radar-pulse/internal/rng"
)

// World is everything a restart throws away.
type World struct {
	src rng.Source

	Now      float64
	Pool     *pulse.Pool
	Agent    *orbit.Agent
	Frame    orbit.Frame
	Restarts int
}

// StepResult is what happened during one frame.
// Population is the pool size after the frame's updates, taken before a
// restart replaces the pool.
type StepResult struct {
	Events     []pulse.Event
	Frame      orbit.Frame
	Population int
	Restarted  bool
}

func NewWorld(src rng.Source) *World {
	w := &World{src: src}
	w.reset()
	return w
}

func (w *World) reset() {
	if w.Pool != nil {
		w.Pool.Close()
	}
	w.Now = 0
	w.Pool = pulse.NewPool(w.src)
	w.Agent = orbit.New(orbit.RandomParams(w.src), w.Now)
	w.Frame = w.Agent.Update(w.Now)
}

// Restart rebuilds all state from initial conditions.
func (w *World) Restart() {
	w.Restarts++
	w.reset()
}

// Step advances the clock by dt, runs the spawn cadence, steps every entity
// and honours a restart request from the agent.
func (w *World) Step(dt float64) StepResult {
	w.Now += dt
	w.Pool.Advance(dt)

	res := StepResult{Events: w.Pool.Update(dt)}
	res.Population = w.Pool.Len()
	res.Frame = w.Agent.Update(w.Now)
	w.Frame = res.Frame

	if res.Frame.RestartRequested {
		w.Restart()
		res.Restarted = true
	}
	return res
}
