// Package widget models a small control panel: labelled rows of color pickers, sliders,
// checkboxes, dropdowns, and buttons bound to get/set functions. It does layout and pointer
// handling only; package ui draws it.
package widget

import "image/color"

const (
	// RowHeight is the height of a single-line control row.
	RowHeight = 26
	// PickerHeight is the extra height of a color picker below its label row.
	PickerHeight = 80
	// TitleHeight is the height of the panel header.
	TitleHeight = 28
	rowGap      = 4
	labelRatio  = 0.4
	// hueStripWidth and pickerGap size the picker's hue strip.
	hueStripWidth = 16
	pickerGap     = 4
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Pointer is one frame of mouse state in screen pixels. Pressed is true only on the frame the
// button went down; Down is true while it is held.
type Pointer struct {
	X, Y    float32
	Down    bool
	Pressed bool
}

// Row is a laid-out control. Label is the left text area and Field the interactive area to its
// right; buttons have an empty Label and a full-width Field.
type Row struct {
	Control Control
	Bounds  Rect
	Label   Rect
	Field   Rect
}

// Panel is a titled list of controls. Call Place once the screen size is known, Update once per
// frame with pointer input, and draw the Rows.
type Panel struct {
	Title    string
	Theme    Theme
	Bounds   Rect
	controls []Control
	active   Control
	open     *Dropdown
}

// NewPanel returns an empty panel styled by theme.
func NewPanel(title string, theme Theme) *Panel {
	return &Panel{Title: title, Theme: theme}
}

// AddColor adds a color picker bound to get/set.
func (p *Panel) AddColor(label string, get func() color.RGBA, set func(color.RGBA)) *ColorPicker {
	c := &ColorPicker{label: label, get: get, set: set}
	p.controls = append(p.controls, c)
	return c
}

// AddSlider adds a slider over [min, max] with the given step (0 for continuous).
func (p *Panel) AddSlider(label string, min, max, step float32, get func() float32, set func(float32)) *Slider {
	s := &Slider{label: label, Min: min, Max: max, Step: step, get: get, set: set}
	p.controls = append(p.controls, s)
	return s
}

// AddCheckbox adds a checkbox bound to get/set.
func (p *Panel) AddCheckbox(label string, get func() bool, set func(bool)) *Checkbox {
	c := &Checkbox{label: label, get: get, set: set}
	p.controls = append(p.controls, c)
	return c
}

// AddDropdown adds a dropdown over options bound to get/set.
func (p *Panel) AddDropdown(label string, options []string, get func() string, set func(string)) *Dropdown {
	d := &Dropdown{label: label, Options: options, get: get, set: set}
	p.controls = append(p.controls, d)
	return d
}

// AddButton adds a full-width button.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := &Button{label: label, onClick: onClick}
	p.controls = append(p.controls, b)
	return b
}

// Controls returns the panel's controls in order.
func (p *Panel) Controls() []Control {
	return p.controls
}

// Open returns the dropdown whose list is open, or nil.
func (p *Panel) Open() *Dropdown {
	return p.open
}

// contentHeight is the height of title, rows, gaps, and padding.
func (p *Panel) contentHeight() float32 {
	pad := p.Theme.Panel.Padding
	h := TitleHeight + 2*pad
	for _, c := range p.controls {
		h += c.Height() + rowGap
	}
	return h
}

// Place sizes the panel and positions it on a screen of the given size using the theme's
// left/top (pixels or percentages of the free space). Width defaults to 260 when unset.
func (p *Panel) Place(screenW, screenH float32) {
	st := p.Theme.Panel
	w := st.Width
	if w <= 0 {
		w = 260
	}
	h := p.contentHeight()
	if st.Height > h {
		h = st.Height
	}
	x, y := st.Left, st.Top
	if st.LeftPct >= 0 {
		x = (screenW - w) * st.LeftPct / 100
	}
	if st.TopPct >= 0 {
		y = (screenH - h) * st.TopPct / 100
	}
	p.Bounds = Rect{X: x, Y: y, W: w, H: h}
}

// TitleRect returns the header row.
func (p *Panel) TitleRect() Rect {
	return Rect{X: p.Bounds.X, Y: p.Bounds.Y, W: p.Bounds.W, H: TitleHeight}
}

// Rows lays out the controls top to bottom inside Bounds.
func (p *Panel) Rows() []Row {
	pad := p.Theme.Panel.Padding
	x := p.Bounds.X + pad
	w := p.Bounds.W - 2*pad
	y := p.Bounds.Y + TitleHeight + pad
	rows := make([]Row, 0, len(p.controls))
	for _, c := range p.controls {
		r := Row{Control: c, Bounds: Rect{X: x, Y: y, W: w, H: c.Height()}}
		if _, ok := c.(*Button); ok {
			r.Field = Rect{X: x, Y: y, W: w, H: RowHeight}
		} else {
			lw := w * labelRatio
			r.Label = Rect{X: x, Y: y, W: lw, H: RowHeight}
			r.Field = Rect{X: x + lw, Y: y, W: w - lw, H: RowHeight}
		}
		rows = append(rows, r)
		y += c.Height() + rowGap
	}
	return rows
}

// Update applies one frame of pointer input. It returns true when the panel used the pointer
// (pressed on it, dragging one of its controls, or hovering it) so callers can keep it away from
// the 3D view.
func (p *Panel) Update(ptr Pointer) bool {
	rows := p.Rows()
	if p.active != nil {
		if !ptr.Down {
			p.active = nil
			return true
		}
		for _, r := range rows {
			if r.Control == p.active {
				p.active.drag(r, ptr)
			}
		}
		return true
	}

	if p.open != nil && ptr.Pressed {
		d := p.open
		p.open = nil
		for _, r := range rows {
			if r.Control != d {
				continue
			}
			for i := range d.Options {
				if d.ItemRect(r.Field, i).Contains(ptr.X, ptr.Y) {
					d.choose(i)
					return true
				}
			}
			if r.Field.Contains(ptr.X, ptr.Y) {
				return true
			}
		}
	}

	if !ptr.Pressed {
		return p.hovered(rows, ptr)
	}
	for _, r := range rows {
		if !r.Bounds.Contains(ptr.X, ptr.Y) {
			continue
		}
		if d, ok := r.Control.(*Dropdown); ok {
			if r.Field.Contains(ptr.X, ptr.Y) {
				p.open = d
			}
			return true
		}
		if r.Control.press(r, ptr) {
			p.active = r.Control
		}
		return true
	}
	return p.Bounds.Contains(ptr.X, ptr.Y)
}

func (p *Panel) hovered(rows []Row, ptr Pointer) bool {
	if p.Bounds.Contains(ptr.X, ptr.Y) {
		return true
	}
	if p.open == nil {
		return false
	}
	for _, r := range rows {
		if r.Control != p.open {
			continue
		}
		for i := range p.open.Options {
			if p.open.ItemRect(r.Field, i).Contains(ptr.X, ptr.Y) {
				return true
			}
		}
	}
	return false
}
