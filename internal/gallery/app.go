// Package gallery is the shape gallery demo: a grid of identical primitives of one kind, each
// spinning at a slightly different rate.
package gallery

import (
	"fmt"

	"shape-demos/internal/geometry"
	"shape-demos/internal/logger"
	"shape-demos/internal/material"
	"shape-demos/internal/scene"
)

// Msg is a change request from a widget or a console command.
type Msg interface{ isMsg() }

// SelectShape changes the shape the next Render uses.
type SelectShape struct{ Shape string }

// Render repopulates the gallery with the selected shape.
type Render struct{}

func (SelectShape) isMsg() {}
func (Render) isMsg()      {}

var (
	lightPos   = [3]float32{-1, 2, 4}
	lightColor = material.FromHex(0xffffff)
)

const lightIntensity = 4

// App owns the selected shape, the scene and the animation clock.
type App struct {
	Shape string
	Count int
	Scene *scene.Scene

	rendered string
	elapsed  float32
	log      *logger.Logger
}

// New returns an empty gallery with shape selected. count <= 0 means DefaultCount. The camera is
// placed distance units in front of the origin.
func New(shape string, count int, distance float32, log *logger.Logger) *App {
	if count <= 0 {
		count = DefaultCount
	}
	a := &App{Shape: shape, Count: count, Scene: scene.New(), log: log}
	if distance > 0 {
		a.Scene.Camera.Position = [3]float32{0, 0, distance}
	}
	a.Scene.AddLight(scene.Light{
		Kind:      scene.Directional,
		Color:     lightColor,
		Intensity: lightIntensity,
		Position:  lightPos,
	})
	return a
}

// Update applies one message.
func (a *App) Update(msg Msg) {
	switch msg := msg.(type) {
	case SelectShape:
		a.Shape = msg.Shape
	case Render:
		a.Populate(a.Shape)
	}
}

// Populate replaces the active set with Count objects of the given shape and returns how many
// were attached. All objects share one geometry; each has its own Phong material. An unknown
// shape leaves the gallery empty.
func (a *App) Populate(shape string) int {
	kind, ok := geometry.ParseKind(shape)
	g, known := geometry.Standard(kind)
	var next []*scene.Mesh
	if ok && known {
		next = make([]*scene.Mesh, 0, a.Count)
		for i := 0; i < a.Count; i++ {
			c, pos := Layout(i)
			m := a.Scene.NewMesh(g, material.NewPhong(c))
			m.Position = pos
			next = append(next, m)
		}
	}
	old := a.Scene.Replace(next)
	a.rendered = shape
	a.log.Event().Info().
		Str("shape", shape).
		Int("removed", len(old)).
		Int("added", len(next)).
		Msg("gallery populated")
	return len(next)
}

// Tick advances the clock by dt seconds and sets each object's x and y rotation to
// elapsed * Speed(i).
func (a *App) Tick(dt float32) {
	a.elapsed += dt
	for i, m := range a.Scene.Meshes() {
		rot := a.elapsed * Speed(i)
		m.Rotation[0] = rot
		m.Rotation[1] = rot
	}
}

// Elapsed returns the seconds accumulated by Tick.
func (a *App) Elapsed() float32 {
	return a.elapsed
}

// Readout returns the lines shown in the info overlay.
func (a *App) Readout() []string {
	rendered := a.rendered
	if rendered == "" {
		rendered = "-"
	}
	return []string{
		"selected: " + a.Shape,
		"rendered: " + rendered,
		fmt.Sprintf("objects: %d", a.Scene.Len()),
	}
}
