package widget

import (
	_ "embed"
	"image/color"
	"strconv"
	"strings"

	"shape-demos/internal/material"
)

// DefaultCSS styles the panel when no stylesheet is given: a dark panel docked top-right.
//
//go:embed default.css
var DefaultCSS string

// Rule is a single CSS rule: one selector and raw property values.
type Rule struct {
	Selector string            // ".panel" or "#speed"
	Props    map[string]string // "background" -> "#1f1f1f"
}

// Stylesheet is an ordered list of rules; later rules win.
type Stylesheet struct {
	Rules []Rule
}

// Props merges the properties of every rule whose selector is "."+class or "#"+id.
func (s *Stylesheet) Props(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, r := range s.Rules {
		if (class != "" && r.Selector == "."+class) || (id != "" && r.Selector == "#"+id) {
			for k, v := range r.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// ComputedStyle holds resolved values for one element.
// LeftPct/TopPct are 0–100 for percentage positioning against the free screen space; -1 means
// use Left/Top as pixels.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      float32
	Height     float32
	Left       float32
	Top        float32
	LeftPct    float32
	TopPct     float32
	Padding    float32
	FontSize   float32
}

// DefaultComputedStyle is transparent with white 16px text and no size.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Color:    color.RGBA{255, 255, 255, 255},
		Border:   color.RGBA{A: 255},
		LeftPct:  -1,
		TopPct:   -1,
		Padding:  4,
		FontSize: 16,
	}
}

// ParseHexColor parses #RGB, #RRGGBB, or #RRGGBBAA.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{A: 255}, false
		}
		c, ok := material.ParseHex(s[:7])
		c.A = uint8(a)
		return c, ok
	}
	return material.ParseHex(s)
}

// ParsePx parses a number with an optional "px" suffix.
func ParsePx(s string) (float32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(n), true
}

// ParsePct parses "N%" with N in 0–100.
func ParsePct(s string) (float32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:len(s)-1], 32)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return float32(n), true
}

// ResolveProps builds a ComputedStyle from merged properties. Unparseable values are ignored.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}

// Theme is the resolved style for each part of a panel.
type Theme struct {
	Panel   ComputedStyle // .panel: frame, placement, width, text color
	Title   ComputedStyle // .title: header row
	Control ComputedStyle // .control: widget track (background) and fill (color)
	Hover   ComputedStyle // .hover: open dropdown items and pressed buttons
	Readout ComputedStyle // .readout: info text block
}

// NewTheme resolves a Theme from sheet. A nil sheet yields unstyled defaults.
func NewTheme(sheet *Stylesheet) Theme {
	return Theme{
		Panel:   ResolveProps(sheet.Props("panel", "")),
		Title:   ResolveProps(sheet.Props("title", "")),
		Control: ResolveProps(sheet.Props("control", "")),
		Hover:   ResolveProps(sheet.Props("hover", "")),
		Readout: ResolveProps(sheet.Props("readout", "")),
	}
}

// DefaultTheme parses DefaultCSS.
func DefaultTheme() Theme {
	sheet, err := ParseCSS(DefaultCSS)
	if err != nil {
		return NewTheme(nil)
	}
	return NewTheme(sheet)
}
