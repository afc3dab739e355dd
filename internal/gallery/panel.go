package gallery

import (
	"errors"
	"fmt"

	"shape-demos/internal/commands"
	"shape-demos/internal/geometry"
	"shape-demos/internal/widget"
)

// Shapes returns the dropdown options.
func Shapes() []string {
	out := make([]string, len(geometry.Kinds))
	for i, k := range geometry.Kinds {
		out[i] = k.String()
	}
	return out
}

// BuildPanel returns the shape dropdown and render button.
func (a *App) BuildPanel(theme widget.Theme) *widget.Panel {
	p := widget.NewPanel("Shapes", theme)
	p.AddDropdown("shape", Shapes(),
		func() string { return a.Shape },
		func(s string) { a.Update(SelectShape{Shape: s}) })
	p.AddButton("render", func() { a.Update(Render{}) })
	return p
}

// RegisterCommands adds shape and render to r.
func (a *App) RegisterCommands(r *commands.Registry) {
	r.Register("shape", "shape <kind> - select cube, cylinder, cone or dodecahedron", nil, func(args []string) (string, error) {
		if len(args) != 1 {
			return "", errors.New("usage: shape <kind>")
		}
		a.Update(SelectShape{Shape: args[0]})
		if _, ok := geometry.ParseKind(args[0]); !ok {
			return fmt.Sprintf("shape = %s (unknown, render will be empty)", args[0]), nil
		}
		return "shape = " + args[0], nil
	})
	r.Register("render", "render - populate the gallery with the selected shape", nil, func([]string) (string, error) {
		a.Update(Render{})
		return fmt.Sprintf("rendered %d %s", a.Scene.Len(), a.Shape), nil
	})
}
