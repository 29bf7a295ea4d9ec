package scene

import (
	"math"

	"github.com/shadercoder/hanamaru-renderer/types"
)

// Intersectable is implemented by every scene element that can answer
// nearest-hit ray queries. Intersect records into isect only when it finds a
// strictly nearer hit than the accumulator's current best and reports whether
// it did. Implementations never allocate and never fail; degenerate math is
// rejected through sign checks.
type Intersectable interface {
	Intersect(ray *Ray, isect *Intersection) bool
	Material() *Material
}

// Sphere primitive.
type Sphere struct {
	Center types.Vec3
	Radius float64
	Mat    *Material
}

// Solve the ray/sphere quadratic keeping only the near root, the point where
// the ray enters the sphere. The far root is never computed, so rays whose
// origin lies inside the sphere report no hit; known limitation.
func (s *Sphere) Intersect(ray *Ray, isect *Intersection) bool {
	a := ray.Origin.Sub(s.Center)
	b := a.Dot(ray.Direction)
	c := a.Dot(a) - s.Radius*s.Radius
	d := b*b - c
	if d <= 0.0 {
		return false
	}

	t := -b - math.Sqrt(d)
	if t <= 0.0 || t >= isect.Distance {
		return false
	}

	isect.Hit = true
	isect.Position = ray.At(t)
	isect.Distance = t
	isect.Normal = isect.Position.Sub(s.Center).Normalize()
	return true
}

func (s *Sphere) Material() *Material {
	return s.Mat
}

// Plane is an infinite plane through Center with unit Normal. UV coordinates
// are produced by tiling the two position axes orthogonal to the vertical
// modulo 1, which is only meaningful while Normal points along the y axis;
// arbitrarily oriented planes get geometrically useless tiling.
type Plane struct {
	Center types.Vec3
	Normal types.Vec3
	Mat    *Material
}

func (p *Plane) Intersect(ray *Ray, isect *Intersection) bool {
	d := -p.Center.Dot(p.Normal)
	v := ray.Direction.Dot(p.Normal)
	t := -(ray.Origin.Dot(p.Normal) + d) / v
	// The positive form also rejects the NaN produced by a parallel ray whose
	// origin lies exactly on the plane.
	if !(t > 0.0 && t < isect.Distance) {
		return false
	}

	isect.Hit = true
	isect.Position = ray.At(t)
	isect.Normal = p.Normal
	isect.Distance = t
	isect.UV = types.XY(modulo(isect.Position[0], 1.0), modulo(isect.Position[2], 1.0))
	return true
}

func (p *Plane) Material() *Material {
	return p.Mat
}

// Floored modulo, result always in [0, b).
func modulo(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}

// MeshObject is a triangle mesh sealed behind its BVH.
type MeshObject struct {
	Mesh *Mesh
	Root *BvhNode
	Mat  *Material
}

// Build the BVH for a mesh and wrap both as a scene element. The mesh must
// not be mutated afterwards.
func NewMeshObject(mesh *Mesh, mat *Material) *MeshObject {
	return &MeshObject{
		Mesh: mesh,
		Root: BuildBvh(mesh),
		Mat:  mat,
	}
}

func (o *MeshObject) Intersect(ray *Ray, isect *Intersection) bool {
	return o.Root.Intersect(o.Mesh, ray, isect)
}

func (o *MeshObject) Material() *Material {
	return o.Mat
}
