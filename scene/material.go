package scene

import "github.com/shadercoder/hanamaru-renderer/types"

type MaterialType uint8

const (
	DiffuseMaterial MaterialType = iota
	SpecularMaterial
	GGXMaterial
	EmissiveMaterial
)

func (t MaterialType) String() string {
	switch t {
	case DiffuseMaterial:
		return "diffuse"
	case SpecularMaterial:
		return "specular"
	case GGXMaterial:
		return "ggx"
	case EmissiveMaterial:
		return "emissive"
	}
	return "invalid"
}

// Material describes the surface attached to a scene element. The geometric
// core never interprets these fields; it only threads the pointer through to
// the accumulator once a query resolves so that the shading caller can pick
// it up.
type Material struct {
	Type MaterialType

	// Base surface color.
	Albedo types.Vec3

	// Emitted radiance (emissive surfaces only).
	Emission types.Vec3

	// GGX roughness in [0, 1].
	Roughness float64
}
