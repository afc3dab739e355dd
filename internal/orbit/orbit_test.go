package orbit

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got [3]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d", i)
	}
}

func TestNewKeepsPosition(t *testing.T) {
	c := New([3]float32{3, 3, 3}, [3]float32{})
	assertVec(t, [3]float32{3, 3, 3}, c.Position())
	assert.InDelta(t, math32.Sqrt(27), c.Radius(), 1e-4)
	assert.False(t, c.Animating())
}

func TestNoInputNoMovement(t *testing.T) {
	c := New([3]float32{0, 0, 5}, [3]float32{})
	c.Update(1.0/60, Input{})
	assertVec(t, [3]float32{0, 0, 5}, c.Position())
}

func TestDragRotatesAroundTarget(t *testing.T) {
	target := [3]float32{1, 0, 0}
	c := New([3]float32{1, 0, 5}, target)
	c.Update(1.0/60, Input{DragX: 100, DragY: -40})

	p := c.Position()
	d := sub(p, target)
	assert.InDelta(t, 5, math32.Sqrt(d[0]*d[0]+d[1]*d[1]+d[2]*d[2]), 1e-4)
	assert.NotEqual(t, float32(0), d[0])
}

func TestPitchIsClamped(t *testing.T) {
	c := New([3]float32{0, 0, 5}, [3]float32{})
	c.Update(0, Input{DragY: 1e6})
	p := c.Position()
	assert.Less(t, p[1], float32(5))
	assert.Greater(t, p[1], float32(4.99))
}

func TestWheelZoomIsClamped(t *testing.T) {
	c := New([3]float32{0, 0, 5}, [3]float32{})
	c.Update(0, Input{Wheel: 1})
	assert.InDelta(t, 4.5, c.Radius(), 1e-4)

	for i := 0; i < 100; i++ {
		c.Update(0, Input{Wheel: 5})
	}
	assert.Equal(t, c.MinRadius, c.Radius())

	for i := 0; i < 100; i++ {
		c.Update(0, Input{Wheel: -5})
	}
	assert.Equal(t, c.MaxRadius, c.Radius())
}

func TestResetFliesHome(t *testing.T) {
	home := [3]float32{3, 3, 3}
	c := New(home, [3]float32{})
	c.Update(0, Input{DragX: 300, DragY: 50, Wheel: 2})
	require.Greater(t, math32.Abs(c.Position()[0]-home[0]), float32(0.1))

	c.Update(0, Input{Reset: true})
	require.True(t, c.Animating())
	for i := 0; i < 120 && c.Animating(); i++ {
		c.Update(1.0/60, Input{})
	}
	assert.False(t, c.Animating())
	assertVec(t, home, c.Position())
}

func TestDragCancelsReset(t *testing.T) {
	c := New([3]float32{0, 0, 5}, [3]float32{})
	c.Update(0, Input{DragX: 200})
	c.Reset(1)
	c.Update(0.1, Input{DragX: 1})
	assert.False(t, c.Animating())
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0, wrapAngle(2*math32.Pi), 1e-5)
	assert.InDelta(t, -math32.Pi/2, wrapAngle(3*math32.Pi/2), 1e-5)
	assert.InDelta(t, math32.Pi/2, wrapAngle(-3*math32.Pi/2), 1e-5)
}
