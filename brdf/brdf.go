// Package brdf maps caller-supplied uniform random pairs to physically
// weighted directions for importance sampling. Every function is pure and
// holds no state, so concurrent callers need no coordination; randomness is
// always supplied per call.
package brdf

import (
	"math"

	"github.com/shadercoder/hanamaru-renderer/types"
)

// Threshold on the normal's x component that decides which helper up vector
// is safe to cross against.
const upEpsilon = 1e-6

// Basis derives a tangent/binormal pair that is orthonormal with the given
// unit normal. When the normal leans into the x axis the helper up vector is
// (0,1,0); otherwise the normal could be near-parallel to y, so (1,0,0) is
// used instead. Both sampling routines must go through here so their
// tie-break behavior cannot diverge.
func Basis(normal types.Vec3) (tangent, binormal types.Vec3) {
	up := types.XYZ(1, 0, 0)
	if math.Abs(normal[0]) > upEpsilon {
		up = types.XYZ(0, 1, 0)
	}
	tangent = up.Cross(normal).Normalize()
	// up and tangent are orthogonal unit vectors, no renormalization needed.
	binormal = normal.Cross(tangent)
	return tangent, binormal
}

// ImportanceSampleDiffuse maps two uniform draws in [0,1) to a direction on
// the hemisphere around normal with density cos(theta)/pi (inverse CDF of the
// cosine lobe). Monte-Carlo callers must divide by that density themselves.
func ImportanceSampleDiffuse(u1, u2 float64, normal types.Vec3) types.Vec3 {
	tangent, binormal := Basis(normal)

	phi := 2.0 * math.Pi * u1
	r := u2
	return tangent.Mul(math.Cos(phi)).
		Add(binormal.Mul(math.Sin(phi))).Mul(math.Sqrt(r)).
		Add(normal.Mul(math.Sqrt(1.0 - r)))
}

// ImportanceSampleGGX maps two uniform draws in [0,1) to a microfacet
// half-vector distributed per the GGX normal distribution, following the
// ImportanceSampleGGX formulation popularized by Unreal Engine 4 (alpha is
// the squared roughness). At roughness 0 the half-vector collapses to the
// normal (mirror limit); toward roughness 1 the lobe widens to cover most of
// the hemisphere.
func ImportanceSampleGGX(u1, u2 float64, normal types.Vec3, roughness float64) types.Vec3 {
	a := roughness * roughness

	phi := 2.0 * math.Pi * u1
	cosTheta := math.Sqrt((1.0 - u2) / (1.0 + (a*a-1.0)*u2))
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	h := types.XYZ(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)

	tangent, binormal := Basis(normal)

	// Tangent space to world space.
	return tangent.Mul(h[0]).Add(binormal.Mul(h[1])).Add(normal.Mul(h[2]))
}
