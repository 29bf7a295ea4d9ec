package scene

import (
	"sort"
	"time"

	"github.com/shadercoder/hanamaru-renderer/log"
)

// BvhNode is a node of a binary bounding volume hierarchy over mesh faces.
// A node either holds exactly two children and no faces (internal node) or
// holds face indexes and no children (leaf). The tree is immutable once
// built; there is deliberately no insert/remove API.
type BvhNode struct {
	Bounds Aabb

	Left  *BvhNode
	Right *BvhNode

	FaceIndexes []int
}

// Report whether this node is a leaf.
func (n *BvhNode) IsLeaf() bool {
	return n.Left == nil
}

type bvhStats struct {
	nodes    int
	leafs    int
	maxDepth int
}

type bvhBuilder struct {
	logger log.Logger
	mesh   *Mesh
	stats  bvhStats
}

// Build a BVH over every face of the mesh using recursive median splits.
// Building from an empty mesh is a caller error and yields a degenerate tree
// whose bounding volume rejects every ray.
func BuildBvh(mesh *Mesh) *BvhNode {
	builder := &bvhBuilder{
		logger: log.New("bvh"),
		mesh:   mesh,
	}

	faceIndexes := make([]int, len(mesh.Faces))
	for i := range faceIndexes {
		faceIndexes[i] = i
	}

	start := time.Now()
	root := builder.partition(faceIndexes, 0)
	builder.logger.Debugf(
		"tree build time: %d ms, faces: %d, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		len(mesh.Faces), builder.stats.maxDepth, builder.stats.nodes, builder.stats.leafs,
	)
	return root
}

// Partition a face-index subset into a subtree.
//
// The split axis is the one whose extent strictly exceeds both others,
// falling back to z on ties. Faces are ordered by the sum of their three
// vertex coordinates on that axis; the sum is a monotone proxy for the
// centroid so dividing by three would not change the ordering. The ordered
// list is split at its midpoint and both halves recurse.
func (b *bvhBuilder) partition(faceIndexes []int, depth int) *BvhNode {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}
	b.stats.nodes++

	node := &BvhNode{Bounds: NewAabb()}
	for _, faceIndex := range faceIndexes {
		v0, v1, v2 := b.mesh.FaceVertexes(b.mesh.Faces[faceIndex])
		node.Bounds.AddPoint(v0)
		node.Bounds.AddPoint(v1)
		node.Bounds.AddPoint(v2)
	}

	mid := len(faceIndexes) / 2
	if mid <= 2 {
		node.FaceIndexes = faceIndexes
		b.stats.leafs++
		return node
	}

	size := node.Bounds.Size()
	axis := 2
	if size[0] > size[1] && size[0] > size[2] {
		axis = 0
	} else if size[1] > size[0] && size[1] > size[2] {
		axis = 1
	}

	sort.Slice(faceIndexes, func(i, j int) bool {
		return b.axisSum(faceIndexes[i], axis) < b.axisSum(faceIndexes[j], axis)
	})

	node.Left = b.partition(faceIndexes[:mid], depth+1)
	node.Right = b.partition(faceIndexes[mid:], depth+1)
	return node
}

// Sum of the face's three vertex coordinates on the given axis.
func (b *bvhBuilder) axisSum(faceIndex, axis int) float64 {
	face := b.mesh.Faces[faceIndex]
	return b.mesh.Vertexes[face.V0][axis] +
		b.mesh.Vertexes[face.V1][axis] +
		b.mesh.Vertexes[face.V2][axis]
}

// Nearest-hit query against this subtree. A subtree is only entered when its
// bounding volume passes the slab test; at leaves every contained face is
// tested. Both children of an internal node are always visited, there is no
// near/far ordering and no early exit on the first hit. Returns whether this
// subtree tightened the accumulator; isect.Hit carries the accumulated truth
// for the whole query.
//
// Traversal is read-only over the mesh and the tree, so any number of
// concurrent queries may share them as long as each query owns its own
// accumulator.
func (n *BvhNode) Intersect(mesh *Mesh, ray *Ray, isect *Intersection) bool {
	if !n.Bounds.IntersectRay(ray) {
		return false
	}

	anyHit := false
	if n.IsLeaf() {
		for _, faceIndex := range n.FaceIndexes {
			v0, v1, v2 := mesh.FaceVertexes(mesh.Faces[faceIndex])
			if IntersectTriangle(v0, v1, v2, ray, isect) {
				anyHit = true
			}
		}
		return anyHit
	}

	if n.Left.Intersect(mesh, ray, isect) {
		anyHit = true
	}
	if n.Right.Intersect(mesh, ray, isect) {
		anyHit = true
	}
	return anyHit
}
