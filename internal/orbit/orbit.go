// Package orbit implements mouse orbit controls for a perspective camera: drag to rotate around a
// target, wheel to zoom. Input is passed in explicitly so the controls do not depend on a window.
package orbit

import (
	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultRotateSpeed = 0.005 // radians per pixel dragged
	defaultZoomStep    = 0.1   // fraction of radius per wheel notch
	defaultMinRadius   = 0.5
	defaultMaxRadius   = 100
	// maxPitch keeps the camera off the poles so the up vector stays valid.
	maxPitch = math32.Pi/2 - 0.01
	// DefaultResetDuration is how long Reset takes to fly back, in seconds.
	DefaultResetDuration = 0.6
)

// Input is one frame of pointer input. DragX/DragY are pixels moved while the rotate button was
// held; Wheel is notches scrolled (positive zooms in). Reset starts a fly back to the home view.
type Input struct {
	DragX, DragY float32
	Wheel        float32
	Reset        bool
}

type view struct {
	radius, yaw, pitch float32
}

// Controls orbits a camera around Target using spherical coordinates.
type Controls struct {
	Target      [3]float32
	RotateSpeed float32
	ZoomStep    float32
	MinRadius   float32
	MaxRadius   float32

	cur    view
	home   view
	tweens [3]*gween.Tween
}

// New returns controls whose home view places the camera at position looking at target.
func New(position, target [3]float32) *Controls {
	v := fromCartesian(sub(position, target))
	return &Controls{
		Target:      target,
		RotateSpeed: defaultRotateSpeed,
		ZoomStep:    defaultZoomStep,
		MinRadius:   defaultMinRadius,
		MaxRadius:   defaultMaxRadius,
		cur:         v,
		home:        v,
	}
}

// Update applies one frame of input and advances any running reset animation by dt seconds.
// Drag and wheel input cancel a running reset.
func (c *Controls) Update(dt float32, in Input) {
	if in.Reset {
		c.Reset(DefaultResetDuration)
	}
	if in.DragX != 0 || in.DragY != 0 || in.Wheel != 0 {
		c.tweens = [3]*gween.Tween{}
		c.cur.yaw -= in.DragX * c.RotateSpeed
		c.cur.pitch = clamp(c.cur.pitch+in.DragY*c.RotateSpeed, -maxPitch, maxPitch)
		c.cur.radius = clamp(c.cur.radius*(1-in.Wheel*c.ZoomStep), c.MinRadius, c.MaxRadius)
		return
	}
	if !c.Animating() {
		return
	}
	fields := [3]*float32{&c.cur.radius, &c.cur.yaw, &c.cur.pitch}
	done := true
	for i, tw := range c.tweens {
		v, finished := tw.Update(dt)
		*fields[i] = v
		if !finished {
			done = false
		}
	}
	if done {
		c.tweens = [3]*gween.Tween{}
	}
}

// Reset starts a tween from the current view back to the home view over duration seconds.
// Yaw takes the short way around.
func (c *Controls) Reset(duration float32) {
	yaw := c.cur.yaw
	delta := wrapAngle(c.home.yaw - yaw)
	c.tweens = [3]*gween.Tween{
		gween.New(c.cur.radius, c.home.radius, duration, ease.OutCubic),
		gween.New(yaw, yaw+delta, duration, ease.OutCubic),
		gween.New(c.cur.pitch, c.home.pitch, duration, ease.OutCubic),
	}
}

// Animating reports whether a reset is in progress.
func (c *Controls) Animating() bool {
	return c.tweens[0] != nil
}

// Position returns the camera position for the current view.
func (c *Controls) Position() [3]float32 {
	cp := math32.Cos(c.cur.pitch)
	return [3]float32{
		c.Target[0] + c.cur.radius*cp*math32.Sin(c.cur.yaw),
		c.Target[1] + c.cur.radius*math32.Sin(c.cur.pitch),
		c.Target[2] + c.cur.radius*cp*math32.Cos(c.cur.yaw),
	}
}

// Radius returns the current distance from the target.
func (c *Controls) Radius() float32 {
	return c.cur.radius
}

func fromCartesian(d [3]float32) view {
	r := math32.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	if r == 0 {
		return view{radius: 1}
	}
	return view{
		radius: r,
		yaw:    math32.Atan2(d[0], d[2]),
		pitch:  clamp(math32.Asin(d[1]/r), -maxPitch, maxPitch),
	}
}

// wrapAngle maps a to (-π, π].
func wrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sub(a, b [3]float32) [3]float32 { return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
