package sim

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/orbit"
	"github.com/iburimskiy/radar-pulse/internal/pulse"
	"github.com/iburimskiy/radar-pulse/internal/rng"
	"github.com/iburimskiy/radar-pulse/internal/vec"
)

const dt = 1.0 / config.TPS

func TestNewWorld_InitialConditions(t *testing.T) {
	w := NewWorld(rng.New(1))

	assert.Equal(t, 0.0, w.Now)
	assert.Equal(t, 1, w.Pool.Len())
	assert.Equal(t, orbit.Seeking, w.Agent.Phase())
	assert.Zero(t, w.Restarts)
}

func TestStep_RestartsWhenAgentFades(t *testing.T) {
	w := NewWorld(rng.New(2))
	oldPool := w.Pool

	restartAt := -1.0
	for i := 0; i < 10*config.TPS; i++ {
		now := w.Now + dt
		res := w.Step(dt)
		if res.Restarted {
			restartAt = now
			assert.True(t, res.Frame.RestartRequested)
			break
		}
	}

	require.Positive(t, restartAt)
	assert.InDelta(t, config.WaveLifetime+config.FadeDuration, restartAt, 2*dt)
	assert.Equal(t, 1, w.Restarts)
	assert.Equal(t, 0.0, w.Now)
	assert.Equal(t, 1, w.Pool.Len())
	assert.NotSame(t, oldPool, w.Pool)
	assert.True(t, oldPool.Closed(), "old spawn timer is cancelled")
	assert.Equal(t, orbit.Seeking, w.Agent.Phase())
}

func TestRestart_Manual(t *testing.T) {
	w := NewWorld(rng.New(3))
	for i := 0; i < 3*config.TPS; i++ {
		w.Step(dt)
	}
	require.Equal(t, orbit.Orbiting, w.Agent.Phase())

	w.Restart()
	assert.Equal(t, 1, w.Restarts)
	assert.Equal(t, orbit.Seeking, w.Agent.Phase())
	assert.Equal(t, 0.0, w.Now)
}

func TestStep_PopulationStaysNearCap(t *testing.T) {
	w := NewWorld(rng.New(4))
	for i := 0; i < 60*config.TPS; i++ {
		w.Step(dt)
		assert.LessOrEqual(t, w.Pool.Len(), config.SpawnPopulationMax+1)
	}
}

func TestRun_Summary(t *testing.T) {
	w := NewWorld(rng.New(5))
	sum, err := Run(context.Background(), w, 20, dt, zerolog.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, 20*config.TPS, sum.Frames)
	assert.InDelta(t, 20.0, sum.SimSeconds, 1e-6)
	assert.Equal(t, 2, sum.Restarts, "agent restarts every 7.5s")
	assert.Positive(t, sum.Spawned)
	assert.LessOrEqual(t, sum.Completed, sum.Spawned)
	assert.LessOrEqual(t, sum.PeakPopulation, config.SpawnPopulationMax+1)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := Run(ctx, NewWorld(rng.New(6)), 5, dt, zerolog.New(io.Discard))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Frames)
}

func TestStep_RestartFrameReportsOldPopulation(t *testing.T) {
	w := NewWorld(rng.New(7))
	// parked pulses never reach their hole and never leave
	for i := 0; i < 3; i++ {
		w.Pool.Add(pulse.Params{Hole: vec.Vec2{X: 50}})
	}

	var res StepResult
	for i := 0; i < 10*config.TPS && !res.Restarted; i++ {
		res = w.Step(dt)
	}

	require.True(t, res.Restarted)
	assert.GreaterOrEqual(t, res.Population, 4)
	assert.Equal(t, 1, w.Pool.Len())
}

func TestHoleIntensity_FromTrapSnapshot(t *testing.T) {
	w := NewWorld(rng.New(8))
	p := w.Pool.Add(pulse.Params{Hole: vec.Vec2{X: -59, Y: 3}, Speed: 10})

	var trapped *pulse.Event
	for i := 0; i < config.TPS && trapped == nil; i++ {
		for _, ev := range w.Step(dt).Events {
			if ev.Kind == pulse.EventTrapped && ev.ID == p.ID {
				trapped = &ev
			}
		}
	}
	require.NotNil(t, trapped)

	// the pool no longer decides what gets reported
	w.Restart()
	assert.InDelta(t, 1.0, HoleIntensity(*trapped), 1e-4)
}

func TestRun_FrameCountRounds(t *testing.T) {
	sum, err := Run(context.Background(), NewWorld(rng.New(9)), 0.3, 0.1, zerolog.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Frames)
}
