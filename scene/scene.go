package scene

// Scene is a read-only list of intersectable elements shared by all ray
// queries. Populate it during construction, then query from as many
// goroutines as needed; each query owns its accumulator exclusively.
type Scene struct {
	Elements []Intersectable
}

func NewScene() *Scene {
	return &Scene{Elements: make([]Intersectable, 0)}
}

// Add an element to the scene.
func (s *Scene) Add(element Intersectable) {
	s.Elements = append(s.Elements, element)
}

// Nearest-hit query across every element. The winning element's material is
// attached to the accumulator after the geometric search resolves; the
// material contents are opaque to this package.
func (s *Scene) Intersect(ray *Ray) Intersection {
	isect := NewIntersection()

	var nearest Intersectable
	for _, element := range s.Elements {
		if element.Intersect(ray, &isect) {
			nearest = element
		}
	}

	if isect.Hit {
		isect.Material = nearest.Material()
	}
	return isect
}
