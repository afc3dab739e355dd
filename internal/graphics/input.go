package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-demos/internal/orbit"
	"shape-demos/internal/widget"
)

// ReadPointer returns this frame's mouse state for the control panel.
func ReadPointer() widget.Pointer {
	pos := rl.GetMousePosition()
	return widget.Pointer{
		X:       pos.X,
		Y:       pos.Y,
		Down:    rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Pressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
	}
}

// OrbitReader turns mouse and keyboard state into orbit input. A drag only rotates the camera
// when it started outside the panel.
type OrbitReader struct {
	dragging bool
}

// Read returns this frame's orbit input. overPanel reports whether the panel used the pointer
// this frame; keysBlocked suppresses the R reset key while the console has focus.
func (o *OrbitReader) Read(overPanel, keysBlocked bool) orbit.Input {
	var in orbit.Input
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		o.dragging = !overPanel
	}
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		o.dragging = false
	}
	if o.dragging {
		d := rl.GetMouseDelta()
		in.DragX, in.DragY = d.X, d.Y
	}
	if !overPanel {
		in.Wheel = rl.GetMouseWheelMove()
	}
	if !keysBlocked {
		in.Reset = rl.IsKeyPressed(rl.KeyR)
	}
	return in
}
