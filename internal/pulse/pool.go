package pulse

import (
	"github.com/google/uuid"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/rng"
	"github.com/iburimskiy/radar-pulse/internal/shader"
	"github.com/iburimskiy/radar-pulse/internal/vec"
)

type EventKind int

const (
	EventSpawned EventKind = iota
	EventTrapped
	EventCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventTrapped:
		return "trapped"
	case EventCompleted:
		return "completed"
	}
	return "unknown"
}

// Event reports a pool-level change so the host can log or play sound. It
// carries a snapshot of the pulse, which may be gone from the pool by the
// time the event is read.
type Event struct {
	Kind     EventKind
	ID       uuid.UUID
	X        float64
	Hole     vec.Vec2
	Uniforms shader.Uniforms
}

func newEvent(kind EventKind, p *Pulse) Event {
	return Event{Kind: kind, ID: p.ID, X: p.X, Hole: p.Hole, Uniforms: p.Uniforms()}
}

// Pool owns the active pulses in spawn order.
type Pool struct {
	src     rng.Source
	pulses  []*Pulse
	elapsed float64
	closed  bool
	pending []Event
}

// NewPool creates a pool and spawns its first pulse immediately.
func NewPool(src rng.Source) *Pool {
	pl := &Pool{src: src}
	pl.spawn()
	return pl
}

func (pl *Pool) spawn() *Pulse {
	return pl.Add(RandomParams(pl.src))
}

// Add appends a pulse with explicit parameters, bypassing the cadence gate.
func (pl *Pool) Add(params Params) *Pulse {
	p := New(params)
	pl.pulses = append(pl.pulses, p)
	pl.pending = append(pl.pending, newEvent(EventSpawned, p))
	return p
}

// Tick is the spawn cadence callback: it adds one pulse unless the
// population is already above the gate.
func (pl *Pool) Tick() bool {
	if pl.closed || len(pl.pulses) > config.SpawnPopulationMax {
		return false
	}
	pl.spawn()
	return true
}

// Advance moves the spawn timer forward by dt and fires Tick for every
// full interval that elapsed.
func (pl *Pool) Advance(dt float64) {
	if pl.closed {
		return
	}
	pl.elapsed += dt
	for pl.elapsed >= config.SpawnInterval {
		pl.elapsed -= config.SpawnInterval
		pl.Tick()
	}
}

// Update steps every pulse and removes the finished ones. The returned
// events include spawns queued since the last call.
func (pl *Pool) Update(dt float64) []Event {
	events := pl.pending
	pl.pending = nil

	var done []uuid.UUID
	for _, p := range pl.pulses {
		before := p.Mode()
		if p.Step(dt) {
			done = append(done, p.ID)
			events = append(events, newEvent(EventCompleted, p))
			continue
		}
		if before == Traveling && p.Mode() == Trapped {
			events = append(events, newEvent(EventTrapped, p))
		}
	}
	for _, id := range done {
		pl.Remove(id)
	}
	return events
}

// Remove drops the pulse with the given id. Unknown ids are ignored.
func (pl *Pool) Remove(id uuid.UUID) bool {
	for i, p := range pl.pulses {
		if p.ID == id {
			pl.pulses = append(pl.pulses[:i], pl.pulses[i+1:]...)
			return true
		}
	}
	return false
}

// Pulses returns the active pulses in spawn order. The slice is shared.
func (pl *Pool) Pulses() []*Pulse { return pl.pulses }

func (pl *Pool) Len() int { return len(pl.pulses) }

// Close cancels the spawn timer. Existing pulses keep animating.
func (pl *Pool) Close() { pl.closed = true }

func (pl *Pool) Closed() bool { return pl.closed }
