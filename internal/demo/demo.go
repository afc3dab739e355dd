// Package demo is the main loop shared by both programs: config and logging setup, the console,
// the control panel, the debug overlay, and per-frame input, tick and draw.
package demo

import (
	"errors"
	"flag"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-demos/internal/commands"
	"shape-demos/internal/config"
	"shape-demos/internal/debug"
	"shape-demos/internal/env"
	"shape-demos/internal/fonts"
	"shape-demos/internal/graphics"
	"shape-demos/internal/logger"
	"shape-demos/internal/orbit"
	"shape-demos/internal/scene"
	"shape-demos/internal/terminal"
	"shape-demos/internal/ui"
	"shape-demos/internal/widget"
)

// Env is what a program receives to build itself.
type Env struct {
	Program    string
	Config     config.Config
	ConfigPath string
	Log        *logger.Logger
	Commands   *commands.Registry
	Theme      widget.Theme
}

// Program is one demo plugged into the loop.
type Program struct {
	Scene *scene.Scene
	// Panel is the control panel; nil for none.
	Panel *widget.Panel
	// Readout, if set, supplies the info lines drawn in the top-left corner.
	Readout func() []string
	// Tick advances the demo by dt seconds. in is always zero unless Orbit is true.
	Tick  func(dt float32, in orbit.Input)
	Orbit bool
}

// Main parses args, builds the program with build and runs it until the window closes. It
// returns the process exit code.
func Main(program string, args []string, build func(*Env) (Program, error)) int {
	dotenv, envErr := env.Load(".env")
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	configPath := fs.String("config", env.Get(env.ConfigVar, config.Path(program)), "path to the YAML config file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logger.New(logger.Path(program))
	defer log.Close()

	if envErr != nil {
		log.Event().Warn().Err(envErr).Msg("ignoring .env")
	} else if len(dotenv) > 0 {
		log.Event().Debug().Strs("keys", dotenv).Msg("loaded .env")
	}

	cfg, err := config.Load(*configPath, program)
	if err != nil {
		log.Event().Warn().Err(err).Msg("using default config")
	}
	log.Event().Info().Str("program", program).Str("config", *configPath).Msg("starting")

	eng := ui.New(widget.DefaultTheme())
	if cfg.Stylesheet != "" {
		if err := eng.LoadCSS(cfg.Stylesheet); err != nil {
			log.Event().Warn().Err(err).Msg("using default stylesheet")
		}
	}

	e := &Env{
		Program:    program,
		Config:     cfg,
		ConfigPath: *configPath,
		Log:        log,
		Commands:   commands.NewRegistry(),
		Theme:      eng.Theme(),
	}
	prog, err := build(e)
	if err != nil {
		log.Event().Error().Err(err).Msg("setup failed")
		return 1
	}
	if prog.Tick == nil || prog.Scene == nil {
		log.Event().Error().Msg("setup failed: program has no scene or tick")
		return 1
	}

	dbg := debug.New(cfg.Debug)
	dbg.RegisterCommands(e.Commands)
	term := terminal.New(log, e.Commands)
	if prog.Panel != nil {
		eng.AddPanel(prog.Panel)
	}
	if prog.Readout != nil {
		eng.SetReadout(ui.NewReadout(prog.Readout))
	}
	if cfg.Font != "" {
		setupFont(cfg.Font, eng, term, dbg, log)
	}
	log.Log("ESC opens the console; type help for commands")

	renderer := graphics.NewRenderer()
	var reader graphics.OrbitReader
	update := func(dt float32) {
		term.Update()
		over := eng.Update(graphics.ReadPointer())
		var in orbit.Input
		if prog.Orbit {
			in = reader.Read(over, term.IsOpen())
		}
		prog.Tick(dt, in)
	}
	draw := func() {
		renderer.Draw(prog.Scene)
		eng.Draw()
		term.Draw()
		dbg.Draw()
	}
	closeGPU := func() {
		renderer.Close()
		eng.Unload()
	}
	graphics.Run(cfg.Window, update, draw, closeGPU)
	log.Event().Info().Str("program", program).Msg("exiting")
	return 0
}

// setupFont finds the configured font and has the UI load it on the first frame, sharing it with
// the console and the overlay.
func setupFont(name string, eng *ui.Engine, term *terminal.Terminal, dbg *debug.Debug, log *logger.Logger) {
	path, err := fonts.FindFont(fonts.BaseDirs(), name)
	if err != nil {
		log.Event().Warn().Err(err).Msg("using default font")
		return
	}
	eng.SetFontPath(path, func(f rl.Font, err error) {
		if err != nil {
			log.Event().Warn().Err(err).Msg("using default font")
			return
		}
		term.SetFont(f)
		dbg.SetFont(f)
		log.Event().Debug().Str("font", path).Msg("font loaded")
	})
}

