package customizer

import (
	"errors"
	"fmt"
	"strconv"

	"shape-demos/internal/commands"
	"shape-demos/internal/config"
	"shape-demos/internal/material"
	"shape-demos/internal/orbit"
)

// RegisterCommands adds set, color, wireframe, camera and save to r. save receives the
// current parameters; it may be nil, in which case save reports an error.
func (a *App) RegisterCommands(r *commands.Registry, save func(config.Customizer) error) {
	r.Register("set", "set <param> <value>", nil, func(args []string) (string, error) {
		if len(args) != 2 {
			return "", errors.New("usage: set <param> <value>")
		}
		f, ok := ParseField(args[0])
		if !ok {
			return "", fmt.Errorf("unknown param %q (one of %v)", args[0], Fields)
		}
		v, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			return "", fmt.Errorf("set %s: %w", f, err)
		}
		a.Update(SetValue{Field: f, Value: float32(v)})
		return fmt.Sprintf("%s = %g", f, a.Params.Get(f)), nil
	})

	r.Register("color", "color <#rrggbb>", nil, func(args []string) (string, error) {
		if len(args) != 1 {
			return "", errors.New("usage: color <#rrggbb>")
		}
		c, ok := material.ParseHex(args[0])
		if !ok {
			return "", fmt.Errorf("invalid color %q", args[0])
		}
		a.Update(SetColor{Color: c})
		return "color = " + a.Params.Color, nil
	})

	r.Register("wireframe", "wireframe on|off", nil, func(args []string) (string, error) {
		if len(args) != 1 {
			return "", errors.New("usage: wireframe on|off")
		}
		on, err := commands.ParseSwitch(args[0])
		if err != nil {
			return "", fmt.Errorf("wireframe: %w", err)
		}
		a.Update(SetWireframe{On: on})
		return fmt.Sprintf("wireframe = %t", on), nil
	})

	fs := commands.NewFlagSet("camera")
	duration := fs.Float64("duration", orbit.DefaultResetDuration, "reset animation length in seconds")
	r.Register("camera", "camera [-duration s] reset", fs, func(args []string) (string, error) {
		if len(args) != 1 || args[0] != "reset" {
			return "", errors.New("usage: camera [-duration s] reset")
		}
		a.Update(ResetCamera{Duration: float32(*duration)})
		*duration = orbit.DefaultResetDuration
		return "camera reset", nil
	})

	r.Register("save", "save - write current parameters to the config file", nil, func([]string) (string, error) {
		if save == nil {
			return "", errors.New("save: no config file")
		}
		snap, err := a.Snapshot()
		if err != nil {
			return "", err
		}
		if err := save(snap); err != nil {
			return "", fmt.Errorf("save: %w", err)
		}
		return "saved", nil
	})
}
