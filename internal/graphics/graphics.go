package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-demos/internal/config"
)

var background = rl.NewColor(0, 0, 0, 255)

// Run opens the window and runs the main loop until the window is closed. Each frame it calls
// update with the frame time in seconds, then clears the screen and calls draw. onClose, if set,
// runs while the OpenGL context still exists so GPU resources can be released.
// ESC is left to the console, so the window closes only through its close button.
func Run(win config.Window, update func(dt float32), draw func(), onClose func()) {
	if win.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
	} else {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(win.TargetFPS))

	if onClose != nil {
		defer onClose()
	}

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
