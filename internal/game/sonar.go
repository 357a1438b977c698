package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/radar-pulse/internal/config"
)

// sonar plays a short ping whenever a pulse is trapped.
// Chain: mixer -> tap -> ctrl -> speaker.
type sonar struct {
	rate   beep.SampleRate
	mixer  *beep.Mixer
	tap    *scopeTap
	ctrl   *beep.Ctrl
	volume float64
	pingHz float64
}

func newSonar(s config.AudioSettings) (*sonar, error) {
	rate := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	mixer := &beep.Mixer{}
	tap := newScopeTap(mixer, config.ScopeRing)
	ctrl := &beep.Ctrl{Streamer: tap, Paused: false}
	speaker.Play(ctrl)

	return &sonar{
		rate:   rate,
		mixer:  mixer,
		tap:    tap,
		ctrl:   ctrl,
		volume: s.Volume,
		pingHz: s.PingHz,
	}, nil
}

// ping queues one echo. pitch scales the base frequency.
func (s *sonar) ping(pitch float64) {
	if s == nil {
		return
	}
	tone := &effects.Volume{
		Streamer: newPing(s.rate, s.pingHz*pitch, config.PingDuration),
		Base:     2,
		Volume:   s.volume,
	}
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

func (s *sonar) toggleMute() bool {
	if s == nil {
		return true
	}
	speaker.Lock()
	s.ctrl.Paused = !s.ctrl.Paused
	muted := s.ctrl.Paused
	speaker.Unlock()
	return muted
}

// reset drops any pings still ringing.
func (s *sonar) reset() {
	if s == nil {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

func (s *sonar) scope(n int) []float64 {
	if s == nil {
		return nil
	}
	return s.tap.snapshot(n)
}

// newPing synthesizes a decaying sine with a short attack.
func newPing(rate beep.SampleRate, hz, seconds float64) beep.Streamer {
	total := int(float64(rate) * seconds)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(rate)
			env := math.Exp(-t*9) * math.Min(t*400, 1)
			v := math.Sin(2*math.Pi*hz*t) * env
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
