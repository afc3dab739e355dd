package scene

import (
	"image/color"

	"shape-demos/internal/geometry"
	"shape-demos/internal/material"
)

// Mesh is a renderable: a geometry drawn with a material at a position and rotation.
// Rotation is XYZ Euler angles in radians and is never wrapped.
type Mesh struct {
	ID       uint64
	Geometry geometry.Geometry
	Material *material.Material
	Position [3]float32
	Rotation [3]float32
}

// LightKind selects how a Light contributes to shading.
type LightKind int

const (
	Ambient LightKind = iota
	Point
	// Directional lights shine from Position toward the origin.
	Directional
)

// Light is one scene light. Intensity scales Color; Position is ignored for Ambient.
type Light struct {
	Kind      LightKind
	Color     color.RGBA
	Intensity float32
	Position  [3]float32
}

// Camera is a perspective camera. Fovy is the vertical field of view in degrees.
type Camera struct {
	Position [3]float32
	Target   [3]float32
	Up       [3]float32
	Fovy     float32
}

// Scene holds the camera, lights, and the active set of meshes. Only meshes attached with Add or
// Replace are drawn. The scene is owned by the main loop goroutine and is not safe for concurrent use.
type Scene struct {
	Camera Camera
	Lights []Light
	meshes []*Mesh
	nextID uint64
}

// New returns an empty scene with a camera at (0,0,5) looking at the origin, fovy 75°.
func New() *Scene {
	return &Scene{
		Camera: Camera{
			Position: [3]float32{0, 0, 5},
			Target:   [3]float32{0, 0, 0},
			Up:       [3]float32{0, 1, 0},
			Fovy:     75,
		},
	}
}

// NewMesh returns a mesh with a fresh ID. The mesh is not attached; call Add or Replace.
func (s *Scene) NewMesh(g geometry.Geometry, m *material.Material) *Mesh {
	s.nextID++
	return &Mesh{ID: s.nextID, Geometry: g, Material: m}
}

// AddLight appends a light.
func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// Add attaches meshes to the active set. Meshes already attached are not added twice.
func (s *Scene) Add(meshes ...*Mesh) {
	for _, m := range meshes {
		if m == nil || s.Contains(m) {
			continue
		}
		s.meshes = append(s.meshes, m)
	}
}

// Remove detaches m. It returns false if m was not attached.
func (s *Scene) Remove(m *Mesh) bool {
	for i, cur := range s.meshes {
		if cur == m {
			s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
			return true
		}
	}
	return false
}

// Clear detaches every mesh and returns the detached set.
func (s *Scene) Clear() []*Mesh {
	old := s.meshes
	s.meshes = nil
	return old
}

// Replace detaches every active mesh and then attaches next. The active set afterwards is exactly
// next, in order. It returns the detached meshes.
func (s *Scene) Replace(next []*Mesh) []*Mesh {
	old := s.Clear()
	s.Add(next...)
	return old
}

// Contains reports whether m is in the active set.
func (s *Scene) Contains(m *Mesh) bool {
	for _, cur := range s.meshes {
		if cur == m {
			return true
		}
	}
	return false
}

// Meshes returns the active set in draw order. The slice is owned by the scene; do not modify it.
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}

// Len returns the number of active meshes.
func (s *Scene) Len() int {
	return len(s.meshes)
}
