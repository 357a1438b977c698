// Package game hosts the radar pulse world inside an ebiten window.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/pulse"
	"github.com/iburimskiy/radar-pulse/internal/rng"
	"github.com/iburimskiy/radar-pulse/internal/shader"
	"github.com/iburimskiy/radar-pulse/internal/sim"
)

type Game struct {
	settings config.Settings
	log      zerolog.Logger

	world *sim.World

	// render handles, created lazily
	beam  *ebiten.Shader
	scene *ebiten.Image
	glow  *ebiten.Image

	sonar *sonar
	trail *trail

	colorPhase float64
	muted      bool
}

// New compiles the beam shader and, if enabled, opens the audio device.
// Audio failure is not fatal.
func New(settings config.Settings, log zerolog.Logger, src rng.Source) (*Game, error) {
	beam, err := ebiten.NewShader(shader.Source)
	if err != nil {
		return nil, fmt.Errorf("compile beam shader: %w", err)
	}

	g := &Game{
		settings: settings,
		log:      log,
		world:    sim.NewWorld(src),
		beam:     beam,
		trail:    newTrail(config.TrailSamples),
	}

	if settings.Audio.Enabled {
		s, err := newSonar(settings.Audio)
		if err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sonar")
		} else {
			g.sonar = s
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.muted = g.sonar.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart("manual")
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.colorPhase += dt * 0.1
	g.apply(g.world.Step(dt))
	g.trail.push(g.world.Frame.Position)
	return nil
}

// apply reacts to one frame's lifecycle output.
func (g *Game) apply(res sim.StepResult) {
	for _, ev := range res.Events {
		g.log.Debug().
			Str("event", ev.Kind.String()).
			Stringer("pulse", ev.ID).
			Float64("x", ev.X).
			Int("population", res.Population).
			Msg("pulse")
		if ev.Kind == pulse.EventTrapped {
			g.sonar.ping(pitchFor(ev))
		}
	}
	if res.Restarted {
		g.sonar.reset()
		g.trail.reset()
		g.log.Info().Int("restarts", g.world.Restarts).Msg("orbit agent faded out, world restarted")
	}
}

func (g *Game) restart(reason string) {
	g.world.Restart()
	g.sonar.reset()
	g.trail.reset()
	g.log.Info().Str("reason", reason).Int("restarts", g.world.Restarts).Msg("world restarted")
}

// pitchFor raises the ping for holes above the axis and lowers it below.
func pitchFor(ev pulse.Event) float64 {
	return 1 + ev.Hole.Y/(2*config.HoleMaxY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}
