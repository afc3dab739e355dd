package scene

import (
	"image/color"

	"github.com/chewxy/math32"

	"shape-demos/internal/material"
)

// MaxLights is the number of point and directional lights the lit shader accepts.
const MaxLights = 4

const gamma = 2.2

// Linear converts an sRGB color channel triple to linear light.
func Linear(c color.RGBA) [3]float32 {
	return [3]float32{
		math32.Pow(float32(c.R)/255, gamma),
		math32.Pow(float32(c.G)/255, gamma),
		math32.Pow(float32(c.B)/255, gamma),
	}
}

// Radiance returns the light's linear color scaled by its intensity.
func (l Light) Radiance() [3]float32 {
	c := Linear(l.Color)
	return [3]float32{c[0] * l.Intensity, c[1] * l.Intensity, c[2] * l.Intensity}
}

// Ambient returns the summed radiance of the ambient lights.
func (s *Scene) Ambient() [3]float32 {
	var sum [3]float32
	for _, l := range s.Lights {
		if l.Kind != Ambient {
			continue
		}
		r := l.Radiance()
		sum = [3]float32{sum[0] + r[0], sum[1] + r[1], sum[2] + r[2]}
	}
	return sum
}

// DirectLights returns up to MaxLights point and directional lights in the order they were added.
func (s *Scene) DirectLights() []Light {
	out := make([]Light, 0, MaxLights)
	for _, l := range s.Lights {
		if l.Kind == Ambient {
			continue
		}
		if len(out) == MaxLights {
			break
		}
		out = append(out, l)
	}
	return out
}

// Shade returns the color of a flat face with the given world-space normal and center, lit by the
// scene and seen from the camera. It follows the lit shader: Lambert diffuse over pi, point lights
// falling off with the square of distance, and a Blinn-Phong highlight.
func (s *Scene) Shade(m *material.Material, point, normal [3]float32) color.RGBA {
	base := Linear(m.Color)
	n := normalize(normal)
	v := normalize(sub(s.Camera.Position, point))

	diffuseWeight := float32(1)
	specColor := [3]float32{0.0067, 0.0067, 0.0067}
	shininess := m.Shininess
	if m.Shading == material.Standard {
		diffuseWeight = 1 - m.Metalness
		for i := range specColor {
			specColor[i] = 0.04 + (base[i]-0.04)*m.Metalness
		}
		shininess = glossFromRoughness(m.Roughness)
	}

	amb := s.Ambient()
	var out [3]float32
	for i := range out {
		out[i] = base[i] * diffuseWeight * amb[i] / math32.Pi
	}
	for _, l := range s.DirectLights() {
		rad := l.Radiance()
		var dir [3]float32
		if l.Kind == Directional {
			dir = normalize(l.Position)
		} else {
			d := sub(l.Position, point)
			dist2 := math32.Max(dot(d, d), 0.01)
			dir = normalize(d)
			for i := range rad {
				rad[i] /= dist2
			}
		}
		ndl := dot(n, dir)
		if ndl <= 0 {
			continue
		}
		h := normalize(add(dir, v))
		sp := math32.Pow(math32.Max(dot(n, h), 0), shininess) * (shininess + 2) / 8
		for i := range out {
			out[i] += (base[i]*diffuseWeight/math32.Pi + specColor[i]*sp) * rad[i] * ndl
		}
	}

	tint := m.Tint()
	return color.RGBA{R: toSRGB(out[0]), G: toSRGB(out[1]), B: toSRGB(out[2]), A: tint.A}
}

// glossFromRoughness maps roughness 0–1 to a Blinn-Phong exponent.
func glossFromRoughness(r float32) float32 {
	a := math32.Max(r*r, 0.001)
	return math32.Min(math32.Max(2/(a*a)-2, 1), 256)
}

func toSRGB(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math32.Pow(v, 1/gamma)*255 + 0.5)
}

func add(a, b [3]float32) [3]float32 { return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func sub(a, b [3]float32) [3]float32 { return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func dot(a, b [3]float32) float32    { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func normalize(a [3]float32) [3]float32 {
	l := math32.Sqrt(dot(a, a))
	if l == 0 {
		return a
	}
	return [3]float32{a[0] / l, a[1] / l, a[2] / l}
}
