package voronoi

import "fmt"

// DegenerateInputError reports input no triangulation can be built from:
// fewer than two sites, a non-finite coordinate, or two sites with identical
// coordinates. It is returned before any topology work begins.
type DegenerateInputError struct {
	Reason string
}

func (e DegenerateInputError) Error() string {
	return "degenerate input: " + e.Reason
}

// NumericalInstabilityError reports a triangular face whose circumcenter
// could not be computed reliably: both the trigonometric formula and the
// perpendicular-bisector fallback failed their conditioning guards. The
// affected cells are assembled without this vertex rather than given a
// wildly displaced point.
type NumericalInstabilityError struct {
	A, B, C Point
}

func (e NumericalInstabilityError) Error() string {
	return fmt.Sprintf("numerically unstable circumcenter for face %v, %v, %v", e.A, e.B, e.C)
}

// IncompleteDiagramError reports that one or more faces of a diagram have no
// Voronoi vertex because their circumcenter computation failed. The rest of
// the diagram is valid.
type IncompleteDiagramError struct {
	Faces []NumericalInstabilityError
}

func (e IncompleteDiagramError) Error() string {
	return fmt.Sprintf("diagram incomplete: %d of its faces have no circumcenter (first: %v)", len(e.Faces), e.Faces[0])
}
