package cmd

import (
	"math"

	"github.com/shadercoder/hanamaru-renderer/scene"
	"github.com/shadercoder/hanamaru-renderer/types"
)

// Tessellate a unit UV-sphere into an indexed triangle mesh. Both commands
// use it so they can exercise the tree without pulling in any scene-file
// reading machinery.
func genSphereMesh(stacks, slices int) *scene.Mesh {
	mesh := &scene.Mesh{}

	for i := 0; i <= stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			phi := 2.0 * math.Pi * float64(j) / float64(slices)
			mesh.Vertexes = append(mesh.Vertexes, types.XYZ(
				math.Sin(theta)*math.Cos(phi),
				math.Cos(theta),
				math.Sin(theta)*math.Sin(phi),
			))
		}
	}

	ring := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*ring + j
			b := a + ring

			mesh.Faces = append(mesh.Faces,
				scene.Face{V0: a, V1: b, V2: a + 1},
				scene.Face{V0: a + 1, V1: b, V2: b + 1},
			)
		}
	}

	return mesh
}
