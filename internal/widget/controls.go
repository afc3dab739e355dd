package widget

import (
	"image/color"
	"math"
)

// Control is one row of a Panel. The concrete types are *ColorPicker, *Slider, *Checkbox,
// *Dropdown, and *Button. Controls read and write their value through the get/set functions
// given at construction, so the panel always shows the current parameter value.
type Control interface {
	Label() string
	// Height is the row height in pixels.
	Height() float32
	// press handles a pointer press inside the row. It returns true to capture the pointer for drag.
	press(r Row, p Pointer) bool
	// drag handles pointer movement while captured.
	drag(r Row, p Pointer)
}

// Slider edits a number in [Min, Max], snapped to Step (Step 0 means continuous).
type Slider struct {
	label    string
	Min, Max float32
	Step     float32
	get      func() float32
	set      func(float32)
}

func (s *Slider) Label() string   { return s.label }
func (s *Slider) Height() float32 { return RowHeight }

// Value returns the bound value.
func (s *Slider) Value() float32 { return s.get() }

// Fraction returns the value's position in [Min, Max] as 0–1.
func (s *Slider) Fraction() float32 {
	if s.Max <= s.Min {
		return 0
	}
	return clamp01((s.get() - s.Min) / (s.Max - s.Min))
}

// Decimals is the number of decimals to display for the slider's step.
func (s *Slider) Decimals() int { return Decimals(s.Step) }

func (s *Slider) press(r Row, p Pointer) bool {
	if !r.Field.Contains(p.X, p.Y) {
		return false
	}
	s.drag(r, p)
	return true
}

func (s *Slider) drag(r Row, p Pointer) {
	if r.Field.W <= 0 {
		return
	}
	frac := clamp01((p.X - r.Field.X) / r.Field.W)
	v := Snap(s.Min+frac*(s.Max-s.Min), s.Min, s.Max, s.Step)
	if v != s.get() {
		s.set(v)
	}
}

// Checkbox toggles a boolean. Clicking anywhere on the row toggles it.
type Checkbox struct {
	label string
	get   func() bool
	set   func(bool)
}

func (c *Checkbox) Label() string   { return c.label }
func (c *Checkbox) Height() float32 { return RowHeight }

// Checked returns the bound value.
func (c *Checkbox) Checked() bool { return c.get() }

func (c *Checkbox) press(Row, Pointer) bool {
	c.set(!c.get())
	return false
}

func (c *Checkbox) drag(Row, Pointer) {}

// Button calls OnClick when pressed.
type Button struct {
	label   string
	onClick func()
}

func (b *Button) Label() string   { return b.label }
func (b *Button) Height() float32 { return RowHeight }

func (b *Button) press(Row, Pointer) bool {
	b.onClick()
	return false
}

func (b *Button) drag(Row, Pointer) {}

// Dropdown picks one of Options. The panel opens its item list below the field; choosing an
// item calls set with the option string.
type Dropdown struct {
	label   string
	Options []string
	get     func() string
	set     func(string)
}

func (d *Dropdown) Label() string   { return d.label }
func (d *Dropdown) Height() float32 { return RowHeight }

// Value returns the bound option string. It may name no option.
func (d *Dropdown) Value() string { return d.get() }

// Selected returns the index of the bound value in Options, or -1.
func (d *Dropdown) Selected() int {
	v := d.get()
	for i, o := range d.Options {
		if o == v {
			return i
		}
	}
	return -1
}

// ItemRect returns the rectangle of option i when the list is open under field.
func (d *Dropdown) ItemRect(field Rect, i int) Rect {
	return Rect{X: field.X, Y: field.Y + field.H*float32(i+1), W: field.W, H: field.H}
}

func (d *Dropdown) choose(i int) {
	if i < 0 || i >= len(d.Options) {
		return
	}
	if d.Options[i] != d.get() {
		d.set(d.Options[i])
	}
}

// Opening is handled by Panel so that only one list is open at a time.
func (d *Dropdown) press(Row, Pointer) bool { return false }
func (d *Dropdown) drag(Row, Pointer)       {}

// ColorPicker edits a color with a saturation/value square and a hue strip drawn under the label
// row. Hue is remembered across greys, which have no hue of their own.
type ColorPicker struct {
	label   string
	get     func() color.RGBA
	set     func(color.RGBA)
	h, s, v float32
	last    color.RGBA
	synced  bool
	zone    int
}

const (
	zoneNone = iota
	zoneSV
	zoneHue
)

func (c *ColorPicker) Label() string   { return c.label }
func (c *ColorPicker) Height() float32 { return RowHeight + PickerHeight }

// Value returns the bound color.
func (c *ColorPicker) Value() color.RGBA { return c.get() }

// HSV returns the picker's current hue, saturation, and value, each 0–1.
func (c *ColorPicker) HSV() (h, s, v float32) {
	c.sync()
	return c.h, c.s, c.v
}

// SVRect returns the saturation/value square for row r.
func (c *ColorPicker) SVRect(r Row) Rect {
	top := r.Bounds.Y + RowHeight
	return Rect{X: r.Bounds.X, Y: top, W: r.Bounds.W - hueStripWidth - pickerGap, H: PickerHeight - pickerGap}
}

// HueRect returns the hue strip for row r.
func (c *ColorPicker) HueRect(r Row) Rect {
	sv := c.SVRect(r)
	return Rect{X: sv.X + sv.W + pickerGap, Y: sv.Y, W: hueStripWidth, H: sv.H}
}

func (c *ColorPicker) sync() {
	cur := c.get()
	if c.synced && cur == c.last {
		return
	}
	h, s, v := RGBToHSV(cur)
	if s > 0 && v > 0 {
		c.h = h
	}
	c.s, c.v = s, v
	c.last = cur
	c.synced = true
}

func (c *ColorPicker) press(r Row, p Pointer) bool {
	c.sync()
	switch {
	case c.SVRect(r).Contains(p.X, p.Y):
		c.zone = zoneSV
	case c.HueRect(r).Contains(p.X, p.Y):
		c.zone = zoneHue
	default:
		c.zone = zoneNone
		return false
	}
	c.drag(r, p)
	return true
}

func (c *ColorPicker) drag(r Row, p Pointer) {
	switch c.zone {
	case zoneSV:
		sv := c.SVRect(r)
		c.s = clamp01((p.X - sv.X) / sv.W)
		c.v = 1 - clamp01((p.Y-sv.Y)/sv.H)
	case zoneHue:
		hr := c.HueRect(r)
		c.h = clamp01((p.Y - hr.Y) / hr.H)
		if c.h >= 1 {
			c.h = 0
		}
	default:
		return
	}
	next := HSVToRGB(c.h, c.s, c.v)
	if next != c.get() {
		c.set(next)
	}
	c.last = c.get()
}

// Snap rounds v to the nearest multiple of step above min, clamps it to [min, max], and rounds
// away float noise at the step's precision. A step of 0 only clamps.
func Snap(v, min, max, step float32) float32 {
	if step > 0 {
		n := math.Round(float64(v-min) / float64(step))
		v = min + float32(n)*step
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	p := math.Pow(10, float64(Decimals(step)))
	return float32(math.Round(float64(v)*p) / p)
}

// Decimals returns the number of decimal places needed to show multiples of step, up to 4.
// A step of 0 shows 2 decimals.
func Decimals(step float32) int {
	if step <= 0 {
		return 2
	}
	for d := 0; d < 4; d++ {
		scaled := float64(step) * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-4 {
			return d
		}
	}
	return 4
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
