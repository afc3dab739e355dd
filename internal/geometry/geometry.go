package geometry

import "strings"

// Kind is one of the primitive shape generators a demo can build.
type Kind int

const (
	Unknown Kind = iota
	Box
	Cylinder
	Cone
	Dodecahedron
)

// kindNames maps shape identifiers (as shown in the gallery dropdown) to kinds.
// "box" is accepted as an alias for "cube".
var kindNames = map[string]Kind{
	"cube":         Box,
	"box":          Box,
	"cylinder":     Cylinder,
	"cone":         Cone,
	"dodecahedron": Dodecahedron,
}

// Kinds lists the selectable kinds in dropdown order.
var Kinds = []Kind{Box, Cylinder, Cone, Dodecahedron}

// String returns the shape identifier for k ("cube", "cylinder", ...). Unknown returns "unknown".
func (k Kind) String() string {
	switch k {
	case Box:
		return "cube"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Dodecahedron:
		return "dodecahedron"
	}
	return "unknown"
}

// ParseKind looks up a shape identifier. Matching is case-insensitive and ignores surrounding space.
// ok is false for identifiers that name no kind; the returned Kind is then Unknown.
func ParseKind(s string) (k Kind, ok bool) {
	k, ok = kindNames[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// Geometry describes a primitive shape by kind and dimensions. It is a comparable value so it can
// key mesh caches: two descriptors with equal fields produce the same mesh.
// Box uses Width/Height/Depth; Cylinder and Cone use Radius/Height/Segments; Dodecahedron uses Radius.
type Geometry struct {
	Kind     Kind
	Width    float32
	Height   float32
	Depth    float32
	Radius   float32
	Segments int
}

// NewBox returns a box centered at the origin with the given extents.
func NewBox(width, height, depth float32) Geometry {
	return Geometry{Kind: Box, Width: width, Height: height, Depth: depth}
}

// NewCylinder returns a capped cylinder along Y, centered at the origin.
func NewCylinder(radius, height float32, segments int) Geometry {
	return Geometry{Kind: Cylinder, Radius: radius, Height: height, Segments: segments}
}

// NewCone returns a cone along Y with its base at -height/2 and apex at +height/2.
func NewCone(radius, height float32, segments int) Geometry {
	return Geometry{Kind: Cone, Radius: radius, Height: height, Segments: segments}
}

// NewDodecahedron returns a regular dodecahedron whose vertices lie on a sphere of radius.
func NewDodecahedron(radius float32) Geometry {
	return Geometry{Kind: Dodecahedron, Radius: radius}
}

// Standard returns the fixed geometry the gallery uses for kind: a unit box, a 0.5×1 cylinder with
// 15 segments, a 0.5×1 cone with 16 segments, or a dodecahedron of radius 0.7.
// ok is false for Unknown.
func Standard(kind Kind) (g Geometry, ok bool) {
	switch kind {
	case Box:
		return NewBox(1, 1, 1), true
	case Cylinder:
		return NewCylinder(0.5, 1, 15), true
	case Cone:
		return NewCone(0.5, 1, 16), true
	case Dodecahedron:
		return NewDodecahedron(0.7), true
	}
	return Geometry{}, false
}

// Extents returns the axis-aligned size of the shape (before rotation).
func (g Geometry) Extents() [3]float32 {
	switch g.Kind {
	case Box:
		return [3]float32{g.Width, g.Height, g.Depth}
	case Cylinder, Cone:
		d := 2 * g.Radius
		return [3]float32{d, g.Height, d}
	case Dodecahedron:
		d := 2 * g.Radius
		return [3]float32{d, d, d}
	}
	return [3]float32{}
}
