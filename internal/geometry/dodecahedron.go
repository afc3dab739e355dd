package geometry

import (
	"sort"

	"github.com/chewxy/math32"
)

// Face is one pentagonal face of a dodecahedron, vertices in counter-clockwise order seen from outside.
type Face [5][3]float32

var phi = (1 + math32.Sqrt(5)) / 2

// dodecahedronVertices returns the 20 vertices of a regular dodecahedron on the unit sphere:
// (±1,±1,±1), (0,±1/φ,±φ), (±1/φ,±φ,0), (±φ,0,±1/φ), normalized.
func dodecahedronVertices() [][3]float32 {
	r := 1 / phi
	out := make([][3]float32, 0, 20)
	for _, x := range []float32{-1, 1} {
		for _, y := range []float32{-1, 1} {
			for _, z := range []float32{-1, 1} {
				out = append(out, [3]float32{x, y, z})
			}
		}
	}
	for _, a := range []float32{-1, 1} {
		for _, b := range []float32{-1, 1} {
			out = append(out,
				[3]float32{0, a * r, b * phi},
				[3]float32{a * r, b * phi, 0},
				[3]float32{a * phi, 0, b * r},
			)
		}
	}
	for i := range out {
		out[i] = normalize(out[i])
	}
	return out
}

// faceNormals are the directions of the 12 face centers. They are the vertices of the dual
// icosahedron: (0,±1,±φ), (±1,±φ,0), (±φ,0,±1), normalized.
func faceNormals() [][3]float32 {
	out := make([][3]float32, 0, 12)
	for _, a := range []float32{-1, 1} {
		for _, b := range []float32{-1, 1} {
			out = append(out,
				normalize([3]float32{0, a, b * phi}),
				normalize([3]float32{a, b * phi, 0}),
				normalize([3]float32{a * phi, 0, b}),
			)
		}
	}
	return out
}

// DodecahedronFaces returns the 12 pentagonal faces of a dodecahedron with circumradius radius.
// Each face is the five vertices closest to its face normal, sorted by angle around that normal.
func DodecahedronFaces(radius float32) []Face {
	verts := dodecahedronVertices()
	faces := make([]Face, 0, 12)
	for _, n := range faceNormals() {
		idx := make([]int, len(verts))
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool {
			return dot(verts[idx[a]], n) > dot(verts[idx[b]], n)
		})
		ring := idx[:5]

		// In-plane basis: u toward the first vertex, w = n × u. Angles increase counter-clockwise
		// when looking down -n, i.e. from outside the solid.
		u := normalize(sub(verts[ring[0]], scale(n, dot(verts[ring[0]], n))))
		w := cross(n, u)
		angle := func(i int) float32 {
			v := verts[i]
			return math32.Atan2(dot(v, w), dot(v, u))
		}
		sort.Slice(ring, func(a, b int) bool { return angle(ring[a]) < angle(ring[b]) })

		var f Face
		for k, i := range ring {
			f[k] = scale(verts[i], radius)
		}
		faces = append(faces, f)
	}
	return faces
}

// Triangles fans each face into three triangles, keeping the outward winding.
func (f Face) Triangles() [3][3][3]float32 {
	return [3][3][3]float32{
		{f[0], f[1], f[2]},
		{f[0], f[2], f[3]},
		{f[0], f[3], f[4]},
	}
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() [3]float32 {
	return normalize(cross(sub(f[1], f[0]), sub(f[2], f[0])))
}

func dot(a, b [3]float32) float32 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func sub(a, b [3]float32) [3]float32 { return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func scale(a [3]float32, s float32) [3]float32 { return [3]float32{a[0] * s, a[1] * s, a[2] * s} }

func normalize(a [3]float32) [3]float32 {
	l := math32.Sqrt(dot(a, a))
	if l == 0 {
		return a
	}
	return scale(a, 1/l)
}
