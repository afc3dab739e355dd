package widget

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(x, y float32) Pointer { return Pointer{X: x, Y: y, Down: true, Pressed: true} }
func hold(x, y float32) Pointer  { return Pointer{X: x, Y: y, Down: true} }
func release(x, y float32) Pointer {
	return Pointer{X: x, Y: y}
}

func center(r Rect) (float32, float32) { return r.X + r.W/2, r.Y + r.H/2 }

func placed(p *Panel) *Panel {
	p.Place(1280, 720)
	return p
}

func TestSnap(t *testing.T) {
	assert.InDelta(t, 2.0, Snap(2.03, 0.1, 10, 0.1), 1e-6)
	assert.InDelta(t, 0.1, Snap(-3, 0.1, 10, 0.1), 1e-6)
	assert.InDelta(t, 10, Snap(42, 0.1, 10, 0.1), 1e-6)
	assert.InDelta(t, 0.015, Snap(0.0162, 0, 0.2, 0.005), 1e-6)
	assert.InDelta(t, 0.37, Snap(0.3712, 0, 1, 0), 1e-6)
}

func TestDecimals(t *testing.T) {
	assert.Equal(t, 1, Decimals(0.1))
	assert.Equal(t, 3, Decimals(0.005))
	assert.Equal(t, 0, Decimals(1))
	assert.Equal(t, 2, Decimals(0))
}

func TestPlaceDocksRight(t *testing.T) {
	p := placed(NewPanel("Controls", DefaultTheme()))
	assert.Equal(t, float32(260), p.Bounds.W)
	assert.Equal(t, float32(1280-260), p.Bounds.X)
	assert.Equal(t, float32(0), p.Bounds.Y)
}

func TestRowsStackDownward(t *testing.T) {
	p := NewPanel("Controls", DefaultTheme())
	p.AddColor("color", func() color.RGBA { return color.RGBA{} }, func(color.RGBA) {})
	p.AddSlider("width", 0.1, 10, 0.1, func() float32 { return 1 }, func(float32) {})
	p.AddButton("render", func() {})
	placed(p)

	rows := p.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, float32(RowHeight+PickerHeight), rows[0].Bounds.H)
	assert.Greater(t, rows[1].Bounds.Y, rows[0].Bounds.Y+rows[0].Bounds.H-1)
	assert.Greater(t, rows[2].Bounds.Y, rows[1].Bounds.Y)
	assert.Equal(t, rows[2].Bounds.W, rows[2].Field.W, "buttons span the row")
	assert.Less(t, rows[1].Field.W, rows[1].Bounds.W)
	for _, r := range rows {
		assert.True(t, p.Bounds.Contains(r.Bounds.X, r.Bounds.Y+r.Bounds.H-1))
	}
}

func TestSliderDragWritesSnappedValues(t *testing.T) {
	value := float32(1)
	var writes int
	p := NewPanel("Controls", DefaultTheme())
	p.AddSlider("width", 0, 10, 0.5, func() float32 { return value }, func(v float32) { value = v; writes++ })
	placed(p)
	f := p.Rows()[0].Field

	assert.True(t, p.Update(press(f.X+f.W*0.52, f.Y+1)))
	assert.InDelta(t, 5.0, value, 1e-6)
	assert.Equal(t, 1, writes)

	assert.True(t, p.Update(hold(f.X+f.W*0.51, f.Y+1)), "captured while held")
	assert.Equal(t, 1, writes, "same snapped value is not rewritten")

	p.Update(hold(f.X+f.W+500, f.Y+300))
	assert.InDelta(t, 10, value, 1e-6, "drag outside clamps")

	p.Update(release(0, 0))
	p.Update(hold(f.X, f.Y))
	assert.InDelta(t, 10, value, 1e-6, "no capture after release")
}

func TestSliderFraction(t *testing.T) {
	v := float32(0.05)
	s := NewPanel("", DefaultTheme()).AddSlider("speed", 0, 0.2, 0.005, func() float32 { return v }, func(float32) {})
	assert.InDelta(t, 0.25, s.Fraction(), 1e-6)
	assert.Equal(t, 3, s.Decimals())
}

func TestCheckboxToggles(t *testing.T) {
	on := false
	p := NewPanel("Controls", DefaultTheme())
	p.AddCheckbox("wireframe", func() bool { return on }, func(v bool) { on = v })
	placed(p)
	r := p.Rows()[0]

	p.Update(press(center(r.Label)))
	assert.True(t, on)
	p.Update(release(center(r.Label)))
	p.Update(press(center(r.Field)))
	assert.False(t, on)
}

func TestButtonClicks(t *testing.T) {
	clicks := 0
	p := NewPanel("Controls", DefaultTheme())
	p.AddButton("render", func() { clicks++ })
	placed(p)
	x, y := center(p.Rows()[0].Field)

	p.Update(press(x, y))
	p.Update(hold(x, y))
	p.Update(release(x, y))
	assert.Equal(t, 1, clicks)
}

func TestDropdownOpensAndChooses(t *testing.T) {
	shape := "cube"
	p := NewPanel("Controls", DefaultTheme())
	d := p.AddDropdown("shape", []string{"cube", "cylinder", "cone", "dodecahedron"},
		func() string { return shape }, func(v string) { shape = v })
	p.AddButton("render", func() { t.Fatal("button under open list must not fire") })
	placed(p)
	r := p.Rows()[0]

	assert.Equal(t, 0, d.Selected())
	p.Update(press(center(r.Field)))
	require.Equal(t, d, p.Open())
	p.Update(release(center(r.Field)))

	// Item 1 overlaps the button row below; the open list wins.
	assert.True(t, p.Update(press(center(d.ItemRect(r.Field, 1)))))
	assert.Equal(t, "cylinder", shape)
	assert.Nil(t, p.Open())
	assert.Equal(t, 1, d.Selected())
}

func TestDropdownClosesOnOutsideClick(t *testing.T) {
	shape := "cone"
	p := NewPanel("Controls", DefaultTheme())
	p.AddDropdown("shape", []string{"cube", "cone"}, func() string { return shape }, func(v string) { shape = v })
	placed(p)
	r := p.Rows()[0]

	p.Update(press(center(r.Field)))
	p.Update(release(0, 0))
	assert.False(t, p.Update(press(10, 700)))
	assert.Nil(t, p.Open())
	assert.Equal(t, "cone", shape)
}

func TestDropdownSelectedUnknown(t *testing.T) {
	d := NewPanel("", DefaultTheme()).AddDropdown("shape", []string{"cube"}, func() string { return "sphere" }, func(string) {})
	assert.Equal(t, -1, d.Selected())
}

func TestColorPickerSVAndHue(t *testing.T) {
	c := color.RGBA{0x44, 0xaa, 0x88, 255}
	p := NewPanel("Controls", DefaultTheme())
	cp := p.AddColor("color", func() color.RGBA { return c }, func(v color.RGBA) { c = v })
	placed(p)
	r := p.Rows()[0]

	h0, _, _ := cp.HSV()
	sv := cp.SVRect(r)

	// Top-right of the square: full saturation and value at the current hue.
	p.Update(press(sv.X+sv.W-0.01, sv.Y))
	p.Update(release(0, 0))
	h, s, v := RGBToHSV(c)
	assert.InDelta(t, h0, h, 0.01)
	assert.InDelta(t, 1, s, 0.01)
	assert.InDelta(t, 1, v, 0.01)

	// Bottom-left: black, but the picker keeps its hue.
	p.Update(press(sv.X, sv.Y+sv.H-0.01))
	p.Update(release(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c)
	h1, _, _ := cp.HSV()
	assert.InDelta(t, h0, h1, 0.01)

	// Hue strip drag.
	hr := cp.HueRect(r)
	p.Update(press(hr.X+1, hr.Y))
	p.Update(hold(hr.X+1, hr.Y+hr.H/3))
	h2, _, _ := cp.HSV()
	assert.InDelta(t, 1.0/3, h2, 0.02)
}

func TestHoverReportsPanelArea(t *testing.T) {
	p := placed(NewPanel("Controls", DefaultTheme()))
	assert.True(t, p.Update(Pointer{X: p.Bounds.X + 5, Y: p.Bounds.Y + 5}))
	assert.False(t, p.Update(Pointer{X: 5, Y: 5}))
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{
		{0x44, 0xaa, 0x88, 255},
		{0x88, 0x44, 0xaa, 255},
		{0xaa, 0x88, 0x44, 255},
		{0x22, 0x66, 0x99, 255},
		{255, 255, 255, 255},
		{0, 0, 0, 255},
	} {
		h, s, v := RGBToHSV(c)
		assert.Equal(t, c, HSVToRGB(h, s, v))
	}
}

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* comment */
.panel { background: #112233; width: 300px; left: 50%; }
body { color: #fff; }
#main { top: 12; }
.panel { width: 320; }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)

	st := ResolveProps(sheet.Props("panel", "main"))
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 255}, st.Background)
	assert.Equal(t, float32(320), st.Width)
	assert.Equal(t, float32(50), st.LeftPct)
	assert.Equal(t, float32(12), st.Top)
	assert.Equal(t, float32(-1), st.TopPct)
}

func TestParseCSSUnclosed(t *testing.T) {
	_, err := ParseCSS(".panel { width: 3px;")
	assert.Error(t, err)
}

func TestParseHexColorWithAlpha(t *testing.T) {
	c, ok := ParseHexColor("#1a1a1ae6")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x1a, 0x1a, 0x1a, 0xe6}, c)
}

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()
	assert.Equal(t, float32(260), th.Panel.Width)
	assert.True(t, th.Panel.HasBorder)
	assert.Equal(t, float32(14), th.Panel.FontSize)
	assert.Equal(t, float32(0), th.Readout.Left)
}
