package game

import (
	"github.com/iburimskiy/radar-pulse/internal/vec"
)

// trail keeps the last n agent positions in a ring.
type trail struct {
	buf   []vec.Vec3
	next  int
	count int
}

func newTrail(n int) *trail {
	return &trail{buf: make([]vec.Vec3, n)}
}

func (t *trail) push(p vec.Vec3) {
	t.buf[t.next] = p
	t.next = (t.next + 1) % len(t.buf)
	if t.count < len(t.buf) {
		t.count++
	}
}

// points returns the stored positions oldest first.
func (t *trail) points() []vec.Vec3 {
	out := make([]vec.Vec3, t.count)
	start := (t.next - t.count + len(t.buf)) % len(t.buf)
	for i := range out {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

func (t *trail) reset() {
	t.next = 0
	t.count = 0
}

// fade is the attenuation for segment i of n, growing as t*t toward the head.
func fade(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	t := float64(i) / float64(n-1)
	return t * t
}
