package customizer

import (
	"errors"
	"image/color"
	"io"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-demos/internal/commands"
	"shape-demos/internal/config"
	"shape-demos/internal/geometry"
	"shape-demos/internal/logger"
	"shape-demos/internal/material"
	"shape-demos/internal/orbit"
	"shape-demos/internal/scene"
	"shape-demos/internal/widget"
)

func newApp(t *testing.T) *App {
	t.Helper()
	return New(DefaultParams(), logger.NewWriter(io.Discard))
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, "#44aa88", p.Color)
	assert.Equal(t, float32(1), p.Width)
	assert.Equal(t, float32(1), p.Height)
	assert.Equal(t, float32(1), p.Depth)
	assert.Equal(t, float32(0.005), p.RotationSpeedX)
	assert.Equal(t, float32(0.005), p.RotationSpeedY)
	assert.Equal(t, float32(1), p.Opacity)
	assert.Equal(t, float32(0), p.Metalness)
	assert.Equal(t, float32(1), p.Roughness)
	assert.False(t, p.Wireframe)
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("rotationspeedx")
	require.True(t, ok)
	assert.Equal(t, RotationSpeedX, f)
	_, ok = ParseField("volume")
	assert.False(t, ok)
	for _, f := range Fields {
		got, ok := ParseField(f.String())
		require.True(t, ok)
		assert.Equal(t, f, got)
	}
}

func TestParamsFromConfigClamps(t *testing.T) {
	c := config.Default("customizer").Customizer
	c.Width = 50
	c.Opacity = -1
	c.RotationSpeedY = 0.1
	p, err := ParamsFromConfig(c)
	require.NoError(t, err)
	assert.Equal(t, float32(10), p.Width)
	assert.Equal(t, float32(0), p.Opacity)
	assert.Equal(t, float32(0.1), p.RotationSpeedY)
	assert.Equal(t, c.Color, p.Color)
}

func TestNewBuildsScene(t *testing.T) {
	a := newApp(t)
	assert.Equal(t, [3]float32{3, 3, 3}, a.Scene.Camera.Position)
	assert.Equal(t, float32(75), a.Scene.Camera.Fovy)
	require.Len(t, a.Scene.Lights, 4)
	assert.Equal(t, scene.Ambient, a.Scene.Lights[0].Kind)
	assert.Equal(t, material.FromHex(0x404040), a.Scene.Lights[0].Color)
	for _, l := range a.Scene.Lights[1:] {
		assert.Equal(t, scene.Point, l.Kind)
	}
	require.Equal(t, 1, a.Scene.Len())
	assert.Same(t, a.Active(), a.Scene.Meshes()[0])
	assert.Equal(t, material.FromHex(0x44aa88), a.Material.Color)
}

func TestNewFallsBackOnBadColor(t *testing.T) {
	p := DefaultParams()
	p.Color = "teal"
	a := New(p, logger.NewWriter(io.Discard))
	assert.Equal(t, "#44aa88", a.Params.Color)
	assert.Equal(t, material.FromHex(0x44aa88), a.Material.Color)
}

func TestRebuildReplacesBox(t *testing.T) {
	for _, dims := range [][3]float32{{2, 3, 4}, {0.1, 0.1, 0.1}, {10, 1, 5.5}} {
		a := newApp(t)
		old := a.Active()
		a.Update(SetValue{Field: Width, Value: dims[0]})
		a.Update(SetValue{Field: Height, Value: dims[1]})
		a.Update(SetValue{Field: Depth, Value: dims[2]})

		require.Equal(t, 1, a.Scene.Len())
		box := a.Scene.Meshes()[0]
		assert.Same(t, a.Active(), box)
		assert.Equal(t, geometry.NewBox(dims[0], dims[1], dims[2]), box.Geometry)
		assert.False(t, a.Scene.Contains(old))
		assert.Same(t, a.Material, box.Material, "material is shared across rebuilds")
	}
}

func TestSetValueClamps(t *testing.T) {
	a := newApp(t)
	a.Update(SetValue{Field: Width, Value: 99})
	assert.Equal(t, float32(10), a.Active().Geometry.Width)
	a.Update(SetValue{Field: Roughness, Value: -2})
	assert.Equal(t, float32(0), a.Material.Roughness)
}

func TestTickAccumulatesRotation(t *testing.T) {
	cases := [][2]float32{{0.005, 0.005}, {0.1, 0}, {0, 0.2}, {0.015, 0.035}}
	for _, sp := range cases {
		a := newApp(t)
		a.Update(SetValue{Field: RotationSpeedX, Value: sp[0]})
		a.Update(SetValue{Field: RotationSpeedY, Value: sp[1]})
		const n = 120
		for i := 0; i < n; i++ {
			a.Tick(1.0/60, orbit.Input{})
		}
		rot := a.Active().Rotation
		assert.InDelta(t, n*sp[0], rot[0], 1e-4)
		assert.InDelta(t, n*sp[1], rot[1], 1e-4)
		assert.Equal(t, float32(0), rot[2])
	}
}

func TestTickWithoutBoxIsNoop(t *testing.T) {
	a := newApp(t)
	a.Scene.Clear()
	a.box = nil
	assert.NotPanics(t, func() { a.Tick(0.016, orbit.Input{}) })
}

func TestMaterialChangesInPlace(t *testing.T) {
	a := newApp(t)
	box := a.Active()
	mat := a.Material

	a.Update(SetWireframe{On: true})
	a.Update(SetValue{Field: Opacity, Value: 0.4})
	a.Update(SetValue{Field: Metalness, Value: 0.7})
	a.Update(SetValue{Field: Roughness, Value: 0.25})
	a.Update(SetColor{Color: color.RGBA{R: 255, A: 10}})

	assert.Same(t, box, a.Active(), "mesh identity is preserved")
	assert.Same(t, mat, box.Material)
	assert.True(t, mat.Wireframe)
	assert.Equal(t, float32(0.4), mat.Opacity)
	assert.Equal(t, float32(0.7), mat.Metalness)
	assert.Equal(t, float32(0.25), mat.Roughness)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, mat.Color)
	assert.Equal(t, "#ff0000", a.Params.Color)
	assert.Equal(t, 1, a.Scene.Len())
}

func TestTickFollowsOrbitControls(t *testing.T) {
	a := newApp(t)
	a.Tick(0.016, orbit.Input{DragX: 100})
	assert.NotEqual(t, [3]float32{3, 3, 3}, a.Scene.Camera.Position)
	assert.InDelta(t, a.Controls.Radius(), distance(a.Scene.Camera.Position), 1e-4)
}

func distance(p [3]float32) float32 {
	return math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
}

func TestSnapshotRoundTrip(t *testing.T) {
	a := newApp(t)
	a.Update(SetValue{Field: Depth, Value: 2.5})
	a.Update(SetWireframe{On: true})
	a.Update(SetColor{Color: material.FromHex(0x226699)})

	snap, err := a.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), snap.Depth)
	assert.True(t, snap.Wireframe)
	assert.Equal(t, "#226699", snap.Color)

	p, err := ParamsFromConfig(snap)
	require.NoError(t, err)
	assert.Equal(t, a.Params, p)
}

func TestPanelWritesThroughUpdate(t *testing.T) {
	a := newApp(t)
	p := a.BuildPanel(widget.DefaultTheme())
	p.Place(1280, 720)
	rows := p.Rows()
	require.Len(t, rows, 1+len(Fields)+1)
	assert.Equal(t, "color", rows[0].Control.Label())
	assert.Equal(t, "wireframe", rows[len(rows)-1].Control.Label())

	old := a.Active()
	width := rows[1]
	require.Equal(t, "width", width.Control.Label())
	f := width.Field
	p.Update(widget.Pointer{X: f.X + f.W - 1, Y: f.Y + 1, Down: true, Pressed: true})
	p.Update(widget.Pointer{})
	assert.InDelta(t, 10, a.Params.Width, 0.11)
	assert.NotSame(t, old, a.Active())
	assert.Equal(t, 1, a.Scene.Len())

	box := a.Active()
	wf := rows[len(rows)-1].Bounds
	p.Update(widget.Pointer{X: wf.X + 1, Y: wf.Y + 1, Down: true, Pressed: true})
	assert.True(t, a.Material.Wireframe)
	assert.Same(t, box, a.Active())
}

func TestPanelSlidersShowLiveValues(t *testing.T) {
	a := newApp(t)
	p := a.BuildPanel(widget.DefaultTheme())
	for _, c := range p.Controls() {
		s, ok := c.(*widget.Slider)
		if !ok {
			continue
		}
		f, ok := ParseField(s.Label())
		require.True(t, ok)
		assert.Equal(t, a.Params.Get(f), s.Value())
		assert.Equal(t, f.Range().Step, s.Step)
	}
}

func TestCommands(t *testing.T) {
	a := newApp(t)
	r := commands.NewRegistry()
	var saved *config.Customizer
	a.RegisterCommands(r, func(c config.Customizer) error {
		saved = &c
		return nil
	})

	msg, err := r.Execute([]string{"set", "height", "3"})
	require.NoError(t, err)
	assert.Equal(t, "height = 3", msg)
	assert.Equal(t, float32(3), a.Active().Geometry.Height)

	_, err = r.Execute([]string{"set", "volume", "3"})
	assert.Error(t, err)
	_, err = r.Execute([]string{"set", "width", "wide"})
	assert.Error(t, err)

	msg, err = r.Execute([]string{"color", "#8844aa"})
	require.NoError(t, err)
	assert.Equal(t, "color = #8844aa", msg)
	assert.Equal(t, material.FromHex(0x8844aa), a.Material.Color)
	_, err = r.Execute([]string{"color", "purple"})
	assert.Error(t, err)

	_, err = r.Execute([]string{"wireframe", "on"})
	require.NoError(t, err)
	assert.True(t, a.Material.Wireframe)

	_, err = r.Execute([]string{"camera", "-duration", "0.2", "reset"})
	require.NoError(t, err)
	assert.True(t, a.Controls.Animating())
	_, err = r.Execute([]string{"camera", "spin"})
	assert.Error(t, err)

	_, err = r.Execute([]string{"save"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, float32(3), saved.Height)
	assert.Equal(t, "#8844aa", saved.Color)
}

func TestSaveErrors(t *testing.T) {
	a := newApp(t)
	r := commands.NewRegistry()
	a.RegisterCommands(r, nil)
	_, err := r.Execute([]string{"save"})
	assert.Error(t, err)

	boom := errors.New("disk full")
	r = commands.NewRegistry()
	a.RegisterCommands(r, func(config.Customizer) error { return boom })
	_, err = r.Execute([]string{"save"})
	assert.ErrorIs(t, err, boom)
}
