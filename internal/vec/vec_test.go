package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateX_KeepsXAndLength(t *testing.T) {
	v := Vec3{1, 0, 2}
	r := v.RotateX(math.Pi / 2)
	assert.InDelta(t, 1.0, r.X, 1e-12)
	assert.InDelta(t, -2.0, r.Y, 1e-12)
	assert.InDelta(t, 0.0, r.Z, 1e-12)
	assert.InDelta(t, v.Len(), r.Len(), 1e-12)
}

func TestRotateY(t *testing.T) {
	r := Vec3{1, 3, 0}.RotateY(math.Pi / 2)
	assert.InDelta(t, 0.0, r.X, 1e-12)
	assert.InDelta(t, 3.0, r.Y, 1e-12)
	assert.InDelta(t, -1.0, r.Z, 1e-12)
}

func TestVec2Rotate(t *testing.T) {
	r := Vec2{1, 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, r.X, 1e-12)
	assert.InDelta(t, 1.0, r.Y, 1e-12)
}

func TestLerpAndClamp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-12)
	assert.Equal(t, Vec3{2, 4, 6}, Lerp3(Vec3{}, Vec3{4, 8, 12}, 0.5))
	assert.Equal(t, 1.0, Clamp01(3))
	assert.Equal(t, 0.0, Clamp01(-1))
	assert.Equal(t, 0.25, Clamp01(0.25))
}
