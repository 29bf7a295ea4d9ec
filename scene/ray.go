package scene

import (
	"math"

	"github.com/shadercoder/hanamaru-renderer/types"
)

// Ray defines an origin and a direction. Callers conventionally pass a
// normalized direction; the triangle and plane tests stay correct without it
// because the returned distance is parametric.
type Ray struct {
	Origin    types.Vec3
	Direction types.Vec3
}

// Point on the ray at parametric distance t.
func (r *Ray) At(t float64) types.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Intersection accumulates the nearest hit found so far during one ray query.
// Distance only ever decreases across successive primitive tests; Hit is the
// accumulated truth for the whole query. The Material slot is filled by the
// caller once the geometric query resolves, the core never reads it.
type Intersection struct {
	Hit      bool
	Position types.Vec3
	Distance float64
	Normal   types.Vec3
	UV       types.Vec2
	Material *Material
}

// Create an accumulator primed for a fresh query.
func NewIntersection() Intersection {
	return Intersection{Distance: math.Inf(1)}
}

// Reset the accumulator so it can be reused for another query.
func (i *Intersection) Reset() {
	*i = Intersection{Distance: math.Inf(1)}
}
