package material

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#44aa88", color.RGBA{0x44, 0xaa, 0x88, 255}, true},
		{"0x8844AA", color.RGBA{0x88, 0x44, 0xaa, 255}, true},
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{" #226699 ", color.RGBA{0x22, 0x66, 0x99, 255}, true},
		{"44aa88", color.RGBA{A: 255}, false},
		{"#44aa8", color.RGBA{A: 255}, false},
		{"#zzzzzz", color.RGBA{A: 255}, false},
	}
	for _, c := range cases {
		got, ok := ParseHex(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := FromHex(0xaa8844)
	assert.Equal(t, "#aa8844", Hex(c))
	back, ok := ParseHex(Hex(c))
	assert.True(t, ok)
	assert.Equal(t, c, back)
}

func TestTint(t *testing.T) {
	m := NewStandard(FromHex(0x44aa88))
	assert.Equal(t, uint8(255), m.Tint().A)

	m.Opacity = 0.5
	assert.Equal(t, uint8(128), m.Tint().A)

	m.Opacity = 2
	assert.Equal(t, uint8(255), m.Tint().A)

	p := NewPhong(FromHex(0x226699))
	p.Opacity = 0
	assert.Equal(t, uint8(255), p.Tint().A, "opacity ignored without blending")
}

func TestStandardDefaults(t *testing.T) {
	m := NewStandard(FromHex(0x44aa88))
	assert.Equal(t, Standard, m.Shading)
	assert.Equal(t, float32(0), m.Metalness)
	assert.Equal(t, float32(1), m.Roughness)
	assert.False(t, m.Wireframe)
	assert.True(t, m.Transparent)
}
