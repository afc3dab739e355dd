package ui

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-demos/internal/material"
	"shape-demos/internal/widget"
)

const checkInset = 6

// Engine draws control panels and the info readout with raylib. Panels own their layout and
// input handling; the engine only places them on screen, forwards the pointer and draws.
// If a font is loaded, text is drawn with it; otherwise raylib's default (pixel) font is used.
type Engine struct {
	theme   widget.Theme
	panels  []*widget.Panel
	readout *Readout

	fontPath   string
	fontTried  bool
	font       rl.Font
	pointer    widget.Pointer
	onFontLoad func(rl.Font, error)
}

// New creates an engine with the given theme and no panels.
func New(theme widget.Theme) *Engine {
	return &Engine{theme: theme}
}

// LoadCSS parses a stylesheet file and applies it to the engine and every panel.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("stylesheet: %w", err)
	}
	sheet, err := widget.ParseCSS(string(data))
	if err != nil {
		return fmt.Errorf("stylesheet %s: %w", path, err)
	}
	e.theme = widget.NewTheme(sheet)
	for _, p := range e.panels {
		p.Theme = e.theme
	}
	return nil
}

// Theme returns the current theme.
func (e *Engine) Theme() widget.Theme {
	return e.theme
}

// SetFontPath sets a TTF/OTF file to load on the first Draw, when the OpenGL context exists.
// done, if set, is called once with the loaded font or the load error.
func (e *Engine) SetFontPath(path string, done func(rl.Font, error)) {
	e.fontPath = path
	e.fontTried = false
	e.onFontLoad = done
}

// ensureFont loads the font set by SetFontPath once. On failure the default font stays in use.
func (e *Engine) ensureFont() {
	if e.fontTried || e.fontPath == "" {
		return
	}
	e.fontTried = true
	f := rl.LoadFont(e.fontPath)
	var err error
	if f.Texture.ID == 0 {
		err = fmt.Errorf("font %s: %w", e.fontPath, os.ErrNotExist)
	} else {
		if e.font.Texture.ID != 0 {
			rl.UnloadFont(e.font)
		}
		e.font = f
	}
	if e.onFontLoad != nil {
		e.onFontLoad(e.font, err)
	}
}

// AddPanel appends a panel. Panels are drawn in order.
func (e *Engine) AddPanel(p *widget.Panel) {
	e.panels = append(e.panels, p)
}

// SetReadout sets the info block drawn in the corner (nil hides it).
func (e *Engine) SetReadout(r *Readout) {
	e.readout = r
}

// Update places the panels on the current screen and forwards the pointer to each. It returns
// true if any panel used the pointer.
func (e *Engine) Update(ptr widget.Pointer) bool {
	e.pointer = ptr
	sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	used := false
	for _, p := range e.panels {
		p.Place(sw, sh)
		if p.Update(ptr) {
			used = true
		}
	}
	return used
}

// Draw draws the readout and every panel, open dropdown lists last so they sit on top.
func (e *Engine) Draw() {
	e.ensureFont()
	if e.readout != nil {
		e.readout.draw(e)
	}
	for _, p := range e.panels {
		e.drawPanel(p)
	}
	for _, p := range e.panels {
		e.drawOpenList(p)
	}
}

func (e *Engine) drawPanel(p *widget.Panel) {
	st := p.Theme
	fill(p.Bounds, st.Panel.Background)
	if st.Panel.HasBorder {
		rl.DrawRectangleLinesEx(rect(p.Bounds), 1, st.Panel.Border)
	}
	title := p.TitleRect()
	fill(title, st.Title.Background)
	e.textMiddle(p.Title, title.X+st.Panel.Padding, title, st.Panel.FontSize, st.Title.Color)

	for _, r := range p.Rows() {
		switch c := r.Control.(type) {
		case *widget.Button:
			bg := st.Control.Background
			if r.Field.Contains(e.pointer.X, e.pointer.Y) {
				bg = st.Hover.Background
			}
			fill(r.Field, bg)
			e.textCentered(c.Label(), r.Field, st.Panel.FontSize, st.Panel.Color)
			continue
		}
		e.textMiddle(r.Control.Label(), r.Label.X, r.Label, st.Panel.FontSize, st.Panel.Color)
		switch c := r.Control.(type) {
		case *widget.Slider:
			e.drawSlider(c, r, st)
		case *widget.Checkbox:
			e.drawCheckbox(c, r, st)
		case *widget.Dropdown:
			fill(r.Field, st.Control.Background)
			e.textMiddle(c.Value()+"  v", r.Field.X+st.Panel.Padding, r.Field, st.Panel.FontSize, st.Panel.Color)
		case *widget.ColorPicker:
			e.drawColorPicker(c, r, st)
		}
	}
}

func (e *Engine) drawSlider(s *widget.Slider, r widget.Row, st widget.Theme) {
	fill(r.Field, st.Control.Background)
	f := r.Field
	f.W *= s.Fraction()
	fill(f, st.Control.Color)
	text := strconv.FormatFloat(float64(s.Value()), 'f', s.Decimals(), 32)
	e.textMiddle(text, r.Field.X+st.Panel.Padding, r.Field, st.Panel.FontSize, st.Panel.Color)
}

func (e *Engine) drawCheckbox(c *widget.Checkbox, r widget.Row, st widget.Theme) {
	side := r.Field.H - 2*checkInset
	box := widget.Rect{X: r.Field.X, Y: r.Field.Y + checkInset, W: side, H: side}
	fill(box, st.Control.Background)
	if c.Checked() {
		inner := widget.Rect{X: box.X + 3, Y: box.Y + 3, W: box.W - 6, H: box.H - 6}
		fill(inner, st.Control.Color)
	}
}

func (e *Engine) drawColorPicker(c *widget.ColorPicker, r widget.Row, st widget.Theme) {
	cur := c.Value()
	cur.A = 255
	swatch := r.Field
	swatch.W = swatch.H
	fill(swatch, cur)
	e.textMiddle(material.Hex(cur), swatch.X+swatch.W+st.Panel.Padding, r.Field, st.Panel.FontSize, st.Panel.Color)

	h, s, v := c.HSV()
	sv := c.SVRect(r)
	pure := widget.HSVToRGB(h, 1, 1)
	rl.DrawRectangleGradientH(int32(sv.X), int32(sv.Y), int32(sv.W), int32(sv.H), rl.White, pure)
	rl.DrawRectangleGradientV(int32(sv.X), int32(sv.Y), int32(sv.W), int32(sv.H), rl.NewColor(0, 0, 0, 0), rl.Black)
	rl.DrawCircleLines(int32(sv.X+s*sv.W), int32(sv.Y+(1-v)*sv.H), 4, rl.White)

	hr := c.HueRect(r)
	const segments = 6
	seg := hr.H / segments
	for i := 0; i < segments; i++ {
		top := widget.HSVToRGB(float32(i)/segments, 1, 1)
		bottom := widget.HSVToRGB(float32(i+1)/segments, 1, 1)
		rl.DrawRectangleGradientV(int32(hr.X), int32(hr.Y+float32(i)*seg), int32(hr.W), int32(seg+1), top, bottom)
	}
	y := int32(hr.Y + h*hr.H)
	rl.DrawRectangle(int32(hr.X)-1, y-1, int32(hr.W)+2, 3, rl.White)
}

func (e *Engine) drawOpenList(p *widget.Panel) {
	d := p.Open()
	if d == nil {
		return
	}
	st := p.Theme
	for _, r := range p.Rows() {
		if r.Control != d {
			continue
		}
		sel := d.Selected()
		for i, opt := range d.Options {
			item := d.ItemRect(r.Field, i)
			bg := st.Control.Background
			if i == sel || item.Contains(e.pointer.X, e.pointer.Y) {
				bg = st.Hover.Background
			}
			fill(item, bg)
			e.textMiddle(opt, item.X+st.Panel.Padding, item, st.Panel.FontSize, st.Hover.Color)
		}
	}
}

// textMiddle draws text at x, vertically centered in box.
func (e *Engine) textMiddle(text string, x float32, box widget.Rect, size float32, col color.RGBA) {
	y := box.Y + (box.H-size)/2
	e.drawText(text, x, y, size, col)
}

// textCentered draws text centered in box.
func (e *Engine) textCentered(text string, box widget.Rect, size float32, col color.RGBA) {
	w := e.measure(text, size)
	e.drawText(text, box.X+(box.W-w)/2, box.Y+(box.H-size)/2, size, col)
}

func (e *Engine) drawText(text string, x, y, size float32, col color.RGBA) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(x, y), size, 1, col)
		return
	}
	rl.DrawText(text, int32(x), int32(y), int32(size), col)
}

func (e *Engine) measure(text string, size float32) float32 {
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, text, size, 1).X
	}
	return float32(rl.MeasureText(text, int32(size)))
}

func fill(r widget.Rect, c color.RGBA) {
	if c.A == 0 {
		return
	}
	rl.DrawRectangleRec(rect(r), c)
}

func rect(r widget.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// Unload releases the loaded font.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

func rectOf(x, y, w, h float32) widget.Rect {
	return widget.Rect{X: x, Y: y, W: w, H: h}
}
