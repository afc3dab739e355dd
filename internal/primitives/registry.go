package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-demos/internal/geometry"
	"shape-demos/internal/scene"
)

// Registry maps geometry descriptors to GPU meshes. Meshes are created on first Draw so that GPU
// resources are allocated after the window/OpenGL context exists, and unloaded by Prune once no
// active mesh uses them.
type Registry struct {
	cache  map[geometry.Geometry]rl.Mesh
	mtl    rl.Material
	hasMtl bool
	scene  *scene.Scene
	faces  map[float32][]geometry.Face
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[geometry.Geometry]rl.Mesh),
		faces: make(map[float32][]geometry.Face),
	}
}

// ensureMaterial creates the lit material shared by every mesh. The albedo color and the
// material uniforms are set per draw.
func (r *Registry) ensureMaterial() {
	if r.hasMtl {
		return
	}
	r.mtl = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
	}
	r.hasMtl = true
}

// ensureMesh returns the mesh for g, generating it if needed. ok is false for kinds that are not
// drawn from a GPU mesh.
func (r *Registry) ensureMesh(g geometry.Geometry) (rl.Mesh, bool) {
	if m, ok := r.cache[g]; ok {
		return m, true
	}
	var m rl.Mesh
	switch g.Kind {
	case geometry.Box:
		m = rl.GenMeshCube(g.Width, g.Height, g.Depth)
	case geometry.Cylinder:
		m = rl.GenMeshCylinder(g.Radius, g.Height, g.Segments)
	case geometry.Cone:
		m = rl.GenMeshCone(g.Radius, g.Height, g.Segments)
	default:
		return rl.Mesh{}, false
	}
	r.cache[g] = m
	return m, true
}

// SetView records the scene for this frame and uploads its camera and lights to the lit shader.
// Call once per frame before drawing meshes.
func (r *Registry) SetView(s *scene.Scene) {
	r.ensureMaterial()
	r.scene = s
	r.setLightUniforms(s)
}

// modelCenterOffset shifts a mesh in model space so the scene position is the primitive's center.
// raylib cylinders and cones have their base at Y=0 and top at Y=height.
func modelCenterOffset(g geometry.Geometry) [3]float32 {
	switch g.Kind {
	case geometry.Cylinder, geometry.Cone:
		return [3]float32{0, -g.Height / 2, 0}
	}
	return [3]float32{}
}

// transform builds the model matrix: center the mesh, rotate (XYZ Euler), then translate.
func transform(m *scene.Mesh) rl.Matrix {
	off := modelCenterOffset(m.Geometry)
	offsetM := rl.MatrixTranslate(off[0], off[1], off[2])
	rotM := rl.MatrixRotateXYZ(rl.NewVector3(m.Rotation[0], m.Rotation[1], m.Rotation[2]))
	transM := rl.MatrixTranslate(m.Position[0], m.Position[1], m.Position[2])
	return rl.MatrixMultiply(rl.MatrixMultiply(offsetM, rotM), transM)
}

// Draw draws one mesh with its material. Must be called between BeginMode3D and EndMode3D, after
// SetView. Unknown kinds are skipped.
func (r *Registry) Draw(m *scene.Mesh) {
	if m == nil || m.Material == nil {
		return
	}
	if m.Material.Wireframe {
		rl.EnableWireMode()
		defer rl.DisableWireMode()
	}
	if m.Geometry.Kind == geometry.Dodecahedron {
		r.drawFaces(m)
		return
	}
	mesh, ok := r.ensureMesh(m.Geometry)
	if !ok {
		return
	}
	r.ensureMaterial()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toColor(m.Material.Tint())
	}
	r.setMaterialUniforms(m.Material)
	rl.DrawMesh(mesh, r.mtl, transform(m))
}

// drawFaces draws a polyhedron from CPU-side faces, each shaded flat from the scene lights.
// raylib has no dodecahedron generator, and building an rl.Mesh from Go slices would hand Go
// pointers to C.
func (r *Registry) drawFaces(m *scene.Mesh) {
	faces, ok := r.faces[m.Geometry.Radius]
	if !ok {
		faces = geometry.DodecahedronFaces(m.Geometry.Radius)
		r.faces[m.Geometry.Radius] = faces
	}
	mat := transform(m)
	origin := rl.Vector3Transform(rl.Vector3{}, mat)
	for _, f := range faces {
		n := f.Normal()
		wn := rl.Vector3Subtract(rl.Vector3Transform(vec(n), mat), origin)
		var center rl.Vector3
		for _, v := range f {
			center = rl.Vector3Add(center, vec(v))
		}
		center = rl.Vector3Transform(rl.Vector3Scale(center, 1/float32(len(f))), mat)
		c := m.Material.Tint()
		if r.scene != nil {
			c = r.scene.Shade(m.Material, [3]float32{center.X, center.Y, center.Z}, [3]float32{wn.X, wn.Y, wn.Z})
		}
		col := toColor(c)
		for _, tri := range f.Triangles() {
			rl.DrawTriangle3D(
				rl.Vector3Transform(vec(tri[0]), mat),
				rl.Vector3Transform(vec(tri[1]), mat),
				rl.Vector3Transform(vec(tri[2]), mat),
				col)
		}
	}
}

func vec(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// Prune unloads cached meshes that no mesh in active uses.
func (r *Registry) Prune(active []*scene.Mesh) {
	if len(r.cache) == 0 {
		return
	}
	used := make(map[geometry.Geometry]bool, len(active))
	for _, m := range active {
		used[m.Geometry] = true
	}
	for g, mesh := range r.cache {
		if !used[g] {
			rl.UnloadMesh(&mesh)
			delete(r.cache, g)
		}
	}
}

// Len returns the number of cached GPU meshes.
func (r *Registry) Len() int {
	return len(r.cache)
}

// Unload releases every mesh and the shared material. The registry can be reused afterwards.
func (r *Registry) Unload() {
	r.Prune(nil)
	if r.hasMtl {
		rl.UnloadMaterial(r.mtl)
		r.hasMtl = false
	}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
