package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-demos/internal/geometry"
	"shape-demos/internal/material"
)

func TestNewMeshIsDetached(t *testing.T) {
	s := New()
	m := s.NewMesh(geometry.NewBox(1, 1, 1), material.NewPhong(material.FromHex(0x44aa88)))
	assert.NotZero(t, m.ID)
	assert.False(t, s.Contains(m))
	assert.Equal(t, 0, s.Len())
}

func TestAddIgnoresDuplicates(t *testing.T) {
	s := New()
	m := s.NewMesh(geometry.NewBox(1, 1, 1), nil)
	s.Add(m, m, nil)
	s.Add(m)
	assert.Equal(t, 1, s.Len())
}

func TestRemove(t *testing.T) {
	s := New()
	a := s.NewMesh(geometry.NewBox(1, 1, 1), nil)
	b := s.NewMesh(geometry.NewBox(2, 2, 2), nil)
	s.Add(a, b)

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	assert.Equal(t, []*Mesh{b}, s.Meshes())
}

func TestReplaceDetachesPreviousSet(t *testing.T) {
	s := New()
	first := []*Mesh{
		s.NewMesh(geometry.NewBox(1, 1, 1), nil),
		s.NewMesh(geometry.NewBox(1, 1, 1), nil),
	}
	s.Replace(first)
	require.Equal(t, 2, s.Len())

	second := []*Mesh{s.NewMesh(geometry.NewCone(0.5, 1, 16), nil)}
	removed := s.Replace(second)
	assert.Equal(t, first, removed)
	assert.Equal(t, second, s.Meshes())
	for _, m := range first {
		assert.False(t, s.Contains(m))
	}

	assert.Len(t, s.Replace(nil), 1)
	assert.Equal(t, 0, s.Len())
}

func TestIDsAreUnique(t *testing.T) {
	s := New()
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		m := s.NewMesh(geometry.NewBox(1, 1, 1), nil)
		assert.False(t, seen[m.ID])
		seen[m.ID] = true
	}
}
