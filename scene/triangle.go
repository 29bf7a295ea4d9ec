package scene

import "github.com/shadercoder/hanamaru-renderer/types"

// Determinant of the 3x3 matrix with columns a, b, c (the scalar triple
// product).
func det(a, b, c types.Vec3) float64 {
	return a.Dot(b.Cross(c))
}

// Ray/triangle test in the scalar-triple-product (Cramer) form. The hit is
// recorded into isect only when it is strictly nearer than the current best;
// ties keep the earlier hit. A denominator of exactly zero means the ray is
// parallel to the triangle plane and is rejected without an epsilon
// tolerance. The recorded normal is always the flat face normal, UVs are the
// barycentric weights.
func IntersectTriangle(v0, v1, v2 types.Vec3, ray *Ray, isect *Intersection) bool {
	rayInv := ray.Direction.Neg()
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	denominator := det(edge1, edge2, rayInv)
	if denominator == 0.0 {
		return false
	}
	denominatorInv := 1.0 / denominator

	d := ray.Origin.Sub(v0)

	u := det(d, edge2, rayInv) * denominatorInv
	if u < 0.0 || u > 1.0 {
		return false
	}

	v := det(edge1, d, rayInv) * denominatorInv
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	t := det(edge1, edge2, d) * denominatorInv
	if t <= 0.0 || t >= isect.Distance {
		return false
	}

	isect.Hit = true
	isect.Position = ray.At(t)
	isect.Normal = edge1.Cross(edge2).Normalize()
	isect.Distance = t
	isect.UV = types.XY(u, v)
	return true
}
