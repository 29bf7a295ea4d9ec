package scene

import "github.com/shadercoder/hanamaru-renderer/types"

// Face references three mesh vertices by index.
type Face struct {
	V0, V1, V2 int
}

// Mesh is an indexed triangle soup. It is owned by the scene, populated once
// during construction and shared read-only by every ray query afterwards; any
// geometry change requires rebuilding the BVH from scratch.
type Mesh struct {
	Vertexes []types.Vec3
	Faces    []Face
}

// The three vertex positions of a face.
func (m *Mesh) FaceVertexes(f Face) (v0, v1, v2 types.Vec3) {
	return m.Vertexes[f.V0], m.Vertexes[f.V1], m.Vertexes[f.V2]
}
