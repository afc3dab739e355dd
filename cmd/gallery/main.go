package main

import (
	"os"

	"shape-demos/internal/demo"
	"shape-demos/internal/gallery"
	"shape-demos/internal/orbit"
)

func main() {
	os.Exit(demo.Main("gallery", os.Args[1:], build))
}

func build(env *demo.Env) (demo.Program, error) {
	g := env.Config.Gallery
	app := gallery.New(g.Shape, g.Count, g.CameraDistance, env.Log)
	app.RegisterCommands(env.Commands)
	if g.AutoRender {
		app.Update(gallery.Render{})
	}
	return demo.Program{
		Scene:   app.Scene,
		Panel:   app.BuildPanel(env.Theme),
		Readout: app.Readout,
		Tick:    func(dt float32, _ orbit.Input) { app.Tick(dt) },
	}, nil
}
