package customizer

import (
	"image/color"

	"shape-demos/internal/widget"
)

// BuildPanel returns the property panel. Every control reads the live parameters and writes
// through Update, so the console and the panel stay in sync.
func (a *App) BuildPanel(theme widget.Theme) *widget.Panel {
	p := widget.NewPanel("Cube", theme)
	p.AddColor("color",
		func() color.RGBA { return a.Material.Color },
		func(c color.RGBA) { a.Update(SetColor{Color: c}) })
	for _, f := range Fields {
		r := f.Range()
		p.AddSlider(f.String(), r.Min, r.Max, r.Step,
			func() float32 { return a.Params.Get(f) },
			func(v float32) { a.Update(SetValue{Field: f, Value: v}) })
	}
	p.AddCheckbox("wireframe",
		func() bool { return a.Params.Wireframe },
		func(on bool) { a.Update(SetWireframe{On: on}) })
	return p
}
