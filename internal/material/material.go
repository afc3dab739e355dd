package material

import (
	"fmt"
	"image/color"
	"strings"
)

// Shading selects the lighting model a material is drawn with.
type Shading int

const (
	// Standard is a metalness/roughness model (used by the customizer).
	Standard Shading = iota
	// Phong is a plain diffuse + specular model (used by the gallery).
	Phong
)

// defaultShininess matches the common Phong default exponent.
const defaultShininess = 30

// Material is the surface appearance shared by one or more meshes. Meshes hold a pointer to it,
// so mutating a field changes every mesh using it on the next frame without rebuilding geometry.
type Material struct {
	Shading   Shading
	Color     color.RGBA
	Opacity   float32 // 0–1; only applied when Transparent is true
	Metalness float32 // 0–1, Standard only
	Roughness float32 // 0–1, Standard only
	Shininess float32 // Phong only
	Wireframe bool
	// Transparent enables alpha blending with Opacity.
	Transparent bool
}

// NewStandard returns an opaque-looking, fully rough, non-metallic material with blending enabled
// so opacity can be changed later.
func NewStandard(c color.RGBA) *Material {
	return &Material{
		Shading:     Standard,
		Color:       c,
		Opacity:     1,
		Metalness:   0,
		Roughness:   1,
		Transparent: true,
	}
}

// NewPhong returns an opaque Phong material of the given color.
func NewPhong(c color.RGBA) *Material {
	return &Material{
		Shading:   Phong,
		Color:     c,
		Opacity:   1,
		Shininess: defaultShininess,
	}
}

// Tint returns the color to draw with: Color with alpha taken from Opacity when Transparent.
func (m *Material) Tint() color.RGBA {
	c := m.Color
	c.A = 255
	if m.Transparent {
		c.A = uint8(clamp01(m.Opacity)*255 + 0.5)
	}
	return c
}

// FromHex converts a 0xRRGGBB value to an opaque color.
func FromHex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#RGB", "#RRGGBB", or "0xRRGGBB" into an opaque color.
// Returns black and false on parse error.
func ParseHex(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	default:
		return color.RGBA{A: 255}, false
	}
	var out [3]uint8
	switch len(s) {
	case 3:
		for i := 0; i < 3; i++ {
			v, ok := hexNibble(s[i])
			if !ok {
				return color.RGBA{A: 255}, false
			}
			out[i] = v * 17
		}
	case 6:
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(s[2*i])
			lo, ok2 := hexNibble(s[2*i+1])
			if !ok1 || !ok2 {
				return color.RGBA{A: 255}, false
			}
			out[i] = hi<<4 | lo
		}
	default:
		return color.RGBA{A: 255}, false
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 255}, true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
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
