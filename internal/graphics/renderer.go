package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-demos/internal/primitives"
	"shape-demos/internal/scene"
)

// Renderer draws a scene through a primitives.Registry.
type Renderer struct {
	reg *primitives.Registry
}

// NewRenderer returns a renderer with an empty mesh cache.
func NewRenderer() *Renderer {
	return &Renderer{reg: primitives.NewRegistry()}
}

// Camera converts the scene camera to a raylib perspective camera.
func Camera(c scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(c.Position[0], c.Position[1], c.Position[2]),
		Target:     rl.NewVector3(c.Target[0], c.Target[1], c.Target[2]),
		Up:         rl.NewVector3(c.Up[0], c.Up[1], c.Up[2]),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Draw renders the active meshes of s. Meshes no longer in the active set release their GPU
// buffers afterwards. An empty scene draws nothing.
func (r *Renderer) Draw(s *scene.Scene) {
	meshes := s.Meshes()
	r.reg.SetView(s)
	rl.BeginMode3D(Camera(s.Camera))
	for _, m := range meshes {
		r.reg.Draw(m)
	}
	rl.EndMode3D()
	r.reg.Prune(meshes)
}

// Close releases GPU resources. Call before the window closes.
func (r *Renderer) Close() {
	r.reg.Unload()
}
