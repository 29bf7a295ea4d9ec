package scene

import (
	"math"

	"github.com/shadercoder/hanamaru-renderer/types"
)

// Aabb is an axis-aligned bounding box. A freshly created box uses the
// +Inf/-Inf corner sentinel so that adding any point expands it correctly;
// a box that never saw a point stays recognizably empty (Min > Max on every
// axis).
type Aabb struct {
	Min types.Vec3
	Max types.Vec3
}

// Create an empty box.
func NewAabb() Aabb {
	inf := math.Inf(1)
	return Aabb{
		Min: types.XYZ(inf, inf, inf),
		Max: types.XYZ(-inf, -inf, -inf),
	}
}

// Grow the box to contain a point.
func (b *Aabb) AddPoint(p types.Vec3) {
	b.Min = types.MinVec3(b.Min, p)
	b.Max = types.MaxVec3(b.Max, p)
}

// Grow the box to contain another box.
func (b *Aabb) Union(other Aabb) {
	b.Min = types.MinVec3(b.Min, other.Min)
	b.Max = types.MaxVec3(b.Max, other.Max)
}

// Report whether the box contains a point.
func (b *Aabb) Contains(p types.Vec3) bool {
	return b.Min[0] <= p[0] && p[0] <= b.Max[0] &&
		b.Min[1] <= p[1] && p[1] <= b.Max[1] &&
		b.Min[2] <= p[2] && p[2] <= b.Max[2]
}

// Box extents per axis.
func (b *Aabb) Size() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// Slab test. Intersects the per-axis [tNear, tFar] intervals and rejects when
// the running interval empties or ends behind the origin. Multiplying by the
// reciprocal direction makes an axis-parallel ray produce +/-Inf slab
// distances per IEEE-754, which the interval arithmetic handles without
// special cases. The result is only a "possible hit" used for pruning.
func (b *Aabb) IntersectRay(ray *Ray) bool {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		invDir := 1.0 / ray.Direction[axis]
		t0 := (b.Min[axis] - ray.Origin[axis]) * invDir
		t1 := (b.Max[axis] - ray.Origin[axis]) * invDir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tNear {
			tNear = t0
		}
		if t1 < tFar {
			tFar = t1
		}
		if tFar < tNear || tFar < 0 {
			return false
		}
	}

	return true
}
