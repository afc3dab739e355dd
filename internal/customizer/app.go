// Package customizer is the single-cube demo: a parameter store, the box it builds, and the
// messages that panel widgets and console commands send to change it.
package customizer

import (
	"fmt"
	"image/color"

	"github.com/jinzhu/copier"

	"shape-demos/internal/config"
	"shape-demos/internal/geometry"
	"shape-demos/internal/logger"
	"shape-demos/internal/material"
	"shape-demos/internal/orbit"
	"shape-demos/internal/scene"
)

// Msg is a change request from a widget or a console command.
type Msg interface{ isMsg() }

// SetValue sets one numeric parameter. Width, Height and Depth rebuild the box; the rest are
// applied in place.
type SetValue struct {
	Field Field
	Value float32
}

// SetColor changes the shared material color.
type SetColor struct{ Color color.RGBA }

// SetWireframe toggles wireframe drawing on the shared material.
type SetWireframe struct{ On bool }

// ResetCamera flies the orbit camera back to its starting view.
type ResetCamera struct{ Duration float32 }

func (SetValue) isMsg()     {}
func (SetColor) isMsg()     {}
func (SetWireframe) isMsg() {}
func (ResetCamera) isMsg()  {}

var (
	cameraStart = [3]float32{3, 3, 3}
	ambient     = material.FromHex(0x404040)
	white       = material.FromHex(0xffffff)
	// pointLights are placed in front of, above and behind the cube.
	pointLights = []scene.Light{
		{Kind: scene.Point, Color: white, Intensity: 30, Position: [3]float32{0, 0, 5}},
		{Kind: scene.Point, Color: white, Intensity: 20, Position: [3]float32{0, 5, 0}},
		{Kind: scene.Point, Color: white, Intensity: 20, Position: [3]float32{0, 0, -10}},
	}
)

const ambientIntensity = 20

// App owns the parameter store, the scene and the one active box. It is driven from the main
// loop: Update for changes, Tick once per frame.
type App struct {
	Params   Params
	Scene    *scene.Scene
	Material *material.Material
	Controls *orbit.Controls

	box *scene.Mesh
	log *logger.Logger
}

// New builds the scene for p and attaches the first box.
func New(p Params, log *logger.Logger) *App {
	c, ok := material.ParseHex(p.Color)
	if !ok {
		log.Event().Warn().Str("color", p.Color).Msg("invalid color, using default")
		p.Color = DefaultParams().Color
		c, _ = material.ParseHex(p.Color)
	}
	m := material.NewStandard(c)
	m.Opacity = p.Opacity
	m.Metalness = p.Metalness
	m.Roughness = p.Roughness
	m.Wireframe = p.Wireframe

	a := &App{
		Params:   p,
		Scene:    scene.New(),
		Material: m,
		log:      log,
	}
	a.setupScene()
	a.Rebuild()
	return a
}

func (a *App) setupScene() {
	a.Scene.Camera.Position = cameraStart
	a.Scene.AddLight(scene.Light{Kind: scene.Ambient, Color: ambient, Intensity: ambientIntensity})
	for _, l := range pointLights {
		a.Scene.AddLight(l)
	}
	a.Controls = orbit.New(a.Scene.Camera.Position, a.Scene.Camera.Target)
}

// Active returns the box currently in the scene.
func (a *App) Active() *scene.Mesh {
	return a.box
}

// Rebuild replaces the box with a new one sized from the current parameters. The old box is
// detached before the new one is attached; both share the same material.
func (a *App) Rebuild() {
	g := geometry.NewBox(a.Params.Width, a.Params.Height, a.Params.Depth)
	box := a.Scene.NewMesh(g, a.Material)
	a.Scene.Replace([]*scene.Mesh{box})
	a.box = box
	a.log.Event().Debug().
		Float32("width", g.Width).
		Float32("height", g.Height).
		Float32("depth", g.Depth).
		Uint64("mesh", box.ID).
		Msg("box rebuilt")
}

// Update applies one message.
func (a *App) Update(msg Msg) {
	switch msg := msg.(type) {
	case SetValue:
		a.Params.Set(msg.Field, msg.Value)
		switch msg.Field {
		case Width, Height, Depth:
			a.Rebuild()
		case Opacity:
			a.Material.Opacity = a.Params.Opacity
		case Metalness:
			a.Material.Metalness = a.Params.Metalness
		case Roughness:
			a.Material.Roughness = a.Params.Roughness
		}
	case SetColor:
		msg.Color.A = 255
		a.Material.Color = msg.Color
		a.Params.Color = material.Hex(msg.Color)
	case SetWireframe:
		a.Params.Wireframe = msg.On
		a.Material.Wireframe = msg.On
	case ResetCamera:
		a.Controls.Reset(msg.Duration)
	}
}

// Tick advances the orbit controls by dt seconds and spins the box by one step of the speed pair.
func (a *App) Tick(dt float32, in orbit.Input) {
	a.Controls.Update(dt, in)
	a.Scene.Camera.Position = a.Controls.Position()
	if a.box == nil {
		return
	}
	a.box.Rotation[0] += a.Params.RotationSpeedX
	a.box.Rotation[1] += a.Params.RotationSpeedY
}

// Snapshot returns the live parameters as a config section, ready to save.
func (a *App) Snapshot() (config.Customizer, error) {
	var c config.Customizer
	if err := copier.Copy(&c, &a.Params); err != nil {
		return config.Customizer{}, fmt.Errorf("customizer snapshot: %w", err)
	}
	return c, nil
}
