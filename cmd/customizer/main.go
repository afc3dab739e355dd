package main

import (
	"os"

	"shape-demos/internal/config"
	"shape-demos/internal/customizer"
	"shape-demos/internal/demo"
)

func main() {
	os.Exit(demo.Main("customizer", os.Args[1:], build))
}

func build(env *demo.Env) (demo.Program, error) {
	params, err := customizer.ParamsFromConfig(env.Config.Customizer)
	if err != nil {
		return demo.Program{}, err
	}
	app := customizer.New(params, env.Log)
	app.RegisterCommands(env.Commands, func(c config.Customizer) error {
		env.Config.Customizer = c
		return config.Save(env.ConfigPath, env.Config)
	})
	return demo.Program{
		Scene: app.Scene,
		Panel: app.BuildPanel(env.Theme),
		Tick:  app.Tick,
		Orbit: true,
	}, nil
}
