package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-demos/internal/commands"
	"shape-demos/internal/config"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws the FPS and heap overlays in the bottom-right corner.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	fpsText      string
	memText      string
	memStats     runtime.MemStats
}

// New returns overlays switched on as cfg says.
func New(cfg config.Debug) *Debug {
	return &Debug{ShowFPS: cfg.ShowFPS, ShowMemAlloc: cfg.ShowMemAlloc}
}

// SetFont sets the overlay font. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// RegisterCommands adds "fps on|off" and "mem on|off".
func (d *Debug) RegisterCommands(r *commands.Registry) {
	toggle := func(name string, dst *bool) {
		r.Register(name, name+" on|off", nil, func(args []string) (string, error) {
			if len(args) != 1 {
				return "", fmt.Errorf("usage: %s on|off", name)
			}
			on, err := commands.ParseSwitch(args[0])
			if err != nil {
				return "", fmt.Errorf("%s: %w", name, err)
			}
			*dst = on
			return fmt.Sprintf("%s = %t", name, on), nil
		})
	}
	toggle("fps", &d.ShowFPS)
	toggle("mem", &d.ShowMemAlloc)
}

// refresh recomputes the overlay text every updateInterval frames, or at once after a toggle.
func (d *Debug) refresh() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.fpsText == "") || (d.ShowMemAlloc && d.memText == "") {
		update = true
	}
	if !update {
		return
	}
	if d.ShowFPS {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
	}
}

// Draw renders the enabled overlays, right-aligned above the bottom edge.
func (d *Debug) Draw() {
	d.refresh()
	var lines []string
	if d.ShowFPS {
		lines = append(lines, d.fpsText)
	}
	if d.ShowMemAlloc {
		lines = append(lines, d.memText)
	}
	screenW := float32(rl.GetScreenWidth())
	y := float32(rl.GetScreenHeight()) - padding - float32(len(lines))*lineHeight
	for _, text := range lines {
		if d.font.Texture.ID != 0 {
			w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
			rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, y), fontSize, 1, rl.Green)
		} else {
			w := float32(rl.MeasureText(text, fontSize))
			rl.DrawText(text, int32(screenW-w-padding), int32(y), fontSize, rl.Green)
		}
		y += lineHeight
	}
}
