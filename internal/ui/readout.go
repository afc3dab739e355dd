package ui

// Readout is a corner block of text lines, refreshed every frame from Lines. It is styled by the
// theme's .readout rule.
type Readout struct {
	Lines   func() []string
	Visible bool
}

// NewReadout returns a visible readout that shows lines.
func NewReadout(lines func() []string) *Readout {
	return &Readout{Lines: lines, Visible: true}
}

func (r *Readout) draw(e *Engine) {
	if !r.Visible || r.Lines == nil {
		return
	}
	lines := r.Lines()
	if len(lines) == 0 {
		return
	}
	st := e.theme.Readout
	size := st.FontSize
	lineH := size + 4
	var w float32
	for _, l := range lines {
		if lw := e.measure(l, size); lw > w {
			w = lw
		}
	}
	x, y := st.Left, st.Top
	fill(rectOf(x, y, w+2*st.Padding, float32(len(lines))*lineH+2*st.Padding), st.Background)
	for i, l := range lines {
		e.drawText(l, x+st.Padding, y+st.Padding+float32(i)*lineH, size, st.Color)
	}
}
