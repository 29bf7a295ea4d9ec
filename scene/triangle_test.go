package scene

import (
	"math"
	"testing"

	"github.com/shadercoder/hanamaru-renderer/types"
)

func TestTriangleCentroidHit(t *testing.T) {
	v0 := types.XYZ(-1, 0, -1)
	v1 := types.XYZ(1, 0, -1)
	v2 := types.XYZ(0, 0, 1)
	centroid := v0.Add(v1).Add(v2).Div(3)

	// Aim at the centroid along the face normal from above.
	ray := &Ray{
		Origin:    centroid.Add(types.XYZ(0, 5, 0)),
		Direction: types.XYZ(0, -1, 0),
	}

	isect := NewIntersection()
	if !IntersectTriangle(v0, v1, v2, ray, &isect) {
		t.Fatal("expected centroid ray to hit the triangle")
	}
	if !isect.Hit {
		t.Fatal("expected accumulator hit flag to be set")
	}

	u, v := isect.UV[0], isect.UV[1]
	if u < 0 || v < 0 || u+v > 1 {
		t.Fatalf("expected valid barycentric coordinates; got u=%f v=%f", u, v)
	}
	if isect.Position.Sub(centroid).Len() > 1e-12 {
		t.Fatalf("expected hit position at centroid %v; got %v", centroid, isect.Position)
	}
	if math.Abs(isect.Distance-5.0) > 1e-12 {
		t.Fatalf("expected hit distance 5; got %f", isect.Distance)
	}
}

func TestTriangleFlatNormal(t *testing.T) {
	v0 := types.XYZ(0, 0, 0)
	v1 := types.XYZ(1, 0, 0)
	v2 := types.XYZ(0, 0, 1)

	ray := &Ray{Origin: types.XYZ(0.25, 3, 0.25), Direction: types.XYZ(0, -1, 0)}
	isect := NewIntersection()
	if !IntersectTriangle(v0, v1, v2, ray, &isect) {
		t.Fatal("expected hit")
	}

	// edge1 x edge2 = (1,0,0) x (0,0,1) = (0,-1,0).
	if isect.Normal.Sub(types.XYZ(0, -1, 0)).Len() > 1e-12 {
		t.Fatalf("expected flat face normal (0,-1,0); got %v", isect.Normal)
	}
}

func TestTriangleParallelRayRejected(t *testing.T) {
	v0 := types.XYZ(-1, 0, -1)
	v1 := types.XYZ(1, 0, -1)
	v2 := types.XYZ(0, 0, 1)

	// Ray in the triangle's plane: the determinant is exactly zero.
	ray := &Ray{Origin: types.XYZ(-5, 0, 0), Direction: types.XYZ(1, 0, 0)}
	isect := NewIntersection()
	if IntersectTriangle(v0, v1, v2, ray, &isect) {
		t.Fatal("expected in-plane ray to be rejected")
	}
	if isect.Hit {
		t.Fatal("expected accumulator to stay untouched")
	}
}

func TestTriangleOutsideBarycentrics(t *testing.T) {
	v0 := types.XYZ(-1, 0, -1)
	v1 := types.XYZ(1, 0, -1)
	v2 := types.XYZ(0, 0, 1)

	ray := &Ray{Origin: types.XYZ(5, 5, 5), Direction: types.XYZ(0, -1, 0)}
	isect := NewIntersection()
	if IntersectTriangle(v0, v1, v2, ray, &isect) {
		t.Fatal("expected ray missing the triangle interior to be rejected")
	}
}

func TestTriangleBehindOriginRejected(t *testing.T) {
	v0 := types.XYZ(-1, 0, -1)
	v1 := types.XYZ(1, 0, -1)
	v2 := types.XYZ(0, 0, 1)

	ray := &Ray{Origin: types.XYZ(0, -3, 0), Direction: types.XYZ(0, -1, 0)}
	isect := NewIntersection()
	if IntersectTriangle(v0, v1, v2, ray, &isect) {
		t.Fatal("expected triangle behind the ray origin to be rejected")
	}
}

func TestTriangleStrictNearerUpdate(t *testing.T) {
	v0 := types.XYZ(-1, 0, -1)
	v1 := types.XYZ(1, 0, -1)
	v2 := types.XYZ(0, 0, 1)

	ray := &Ray{Origin: types.XYZ(0, 5, 0), Direction: types.XYZ(0, -1, 0)}

	isect := NewIntersection()
	if !IntersectTriangle(v0, v1, v2, ray, &isect) {
		t.Fatal("expected first test to hit")
	}
	first := isect

	// Same triangle again: distance ties must keep the earlier hit.
	if IntersectTriangle(v0, v1, v2, ray, &isect) {
		t.Fatal("expected equal-distance retest to be rejected")
	}
	if isect != first {
		t.Fatal("expected accumulator to be unchanged by the tied retest")
	}

	// A strictly nearer triangle must tighten the record.
	n0 := types.XYZ(-1, 1, -1)
	n1 := types.XYZ(1, 1, -1)
	n2 := types.XYZ(0, 1, 1)
	if !IntersectTriangle(n0, n1, n2, ray, &isect) {
		t.Fatal("expected nearer triangle to replace the hit")
	}
	if isect.Distance >= first.Distance {
		t.Fatalf("expected distance to tighten below %f; got %f", first.Distance, isect.Distance)
	}
}

func TestTriangleUnnormalizedDirection(t *testing.T) {
	v0 := types.XYZ(-1, 0, -1)
	v1 := types.XYZ(1, 0, -1)
	v2 := types.XYZ(0, 0, 1)

	// Distance is parametric: doubling the direction halves t but the hit
	// position must stay put.
	ray := &Ray{Origin: types.XYZ(0, 4, 0), Direction: types.XYZ(0, -2, 0)}
	isect := NewIntersection()
	if !IntersectTriangle(v0, v1, v2, ray, &isect) {
		t.Fatal("expected hit with unnormalized direction")
	}
	if math.Abs(isect.Distance-2.0) > 1e-12 {
		t.Fatalf("expected parametric distance 2; got %f", isect.Distance)
	}
	if isect.Position.Sub(types.XYZ(0, 0, 0)).Len() > 1e-12 {
		t.Fatalf("expected hit position at origin; got %v", isect.Position)
	}
}
