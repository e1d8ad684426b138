package voronoi

import "math"

// Diagram is a Voronoi diagram: the planar dual of a Delaunay subdivision.
type Diagram struct {
	// Sites are the subdivision's sites, in subdivision order.
	Sites []Point
	// Vertices are the Voronoi vertices: one circumcenter per bounded face
	// of the subdivision, in face discovery order.
	Vertices []Point
	// Cells hold one cell per site, in site order.
	Cells []Cell
}

// Cell is the Voronoi region of one site: the part of the plane closer to
// that site than to any other.
type Cell struct {
	// Site indexes the cell's site in Diagram.Sites.
	Site int
	// Vertices are the cell's Voronoi vertices in counter-clockwise order
	// around the site. For a closed cell they form a closed polygon; for an
	// open cell they are the bounded chain between the two unbounded rays.
	Vertices []Point
	// Closed reports whether the cell is a closed polygon. Cells of
	// convex-hull sites are open.
	Closed bool
	// Rays are the unit directions of an open cell's two unbounded boundary
	// edges: Rays[0] leaves the first vertex, Rays[1] leaves the last. Both
	// are zero for closed cells and for cells with no vertices, which occur
	// only in fully collinear subdivisions.
	Rays [2]Vec2
}

const (
	// circumDenomGuard is the conditioning guard on the trigonometric
	// circumcenter formula's denominator Σ sin 2θ, which equals
	// 4·sin α·sin β·sin γ and vanishes only as the triangle degenerates.
	circumDenomGuard = 1e-9

	// circumCrossGuard is the relative conditioning guard on the bisector
	// fallback's cross product.
	circumCrossGuard = 1e-12
)

// Dual computes the Voronoi diagram of a Delaunay subdivision. The
// subdivision is read-only input; repeated calls yield identical diagrams.
//
// If a face fails both circumcenter conditioning guards, the affected cells
// are assembled without that vertex and an [IncompleteDiagramError] is
// returned alongside the partial diagram. A fully collinear subdivision has
// no bounded faces and yields a diagram with no vertices and no closed cells.
func Dual(s *Subdivision) (*Diagram, error) {
	d := &Diagram{Sites: s.Sites()}

	// leftFace[e] indexes the circumcenter of the face left of quarter-edge
	// e in d.Vertices; faceOuter marks the unbounded face, faceFailed a face
	// whose circumcenter computation failed.
	const (
		faceOuter  = -1
		faceFailed = -2
	)
	leftFace := make([]int32, len(s.next))
	for i := range leftFace {
		leftFace[i] = faceOuter
	}
	visited := make([]bool, len(s.next))

	// An arbitrary incident edge per site, for the ring walks below.
	siteEdge := make([]Edge, len(d.Sites))
	for i := range siteEdge {
		siteEdge[i] = NilEdge
	}

	var incomplete IncompleteDiagramError
	for e0 := range s.Edges() {
		for _, e := range [2]Edge{e0, e0.Sym()} {
			if o := s.Org(e); o >= 0 && siteEdge[o] == NilEdge {
				siteEdge[o] = e
			}
			if visited[e] {
				continue
			}

			// Each directed edge belongs to exactly one left-face cycle. A
			// bounded face closes in three Lnext steps and winds
			// counter-clockwise; anything else is the unbounded face.
			a, b, c := e, s.Lnext(e), s.Lnext(s.Lnext(e))
			pa, pb, pc := s.orgPt(a), s.orgPt(b), s.orgPt(c)
			if s.Lnext(c) != a || Orient(pa, pb, pc) != CounterClockwise {
				for f := a; ; {
					visited[f] = true
					if f = s.Lnext(f); f == a {
						break
					}
				}
				continue
			}

			idx := int32(faceFailed)
			center, err := circumcenter(pa, pb, pc)
			if err == nil {
				idx = int32(len(d.Vertices))
				d.Vertices = append(d.Vertices, center)
			} else {
				incomplete.Faces = append(incomplete.Faces, err.(NumericalInstabilityError))
			}
			for _, f := range [3]Edge{a, b, c} {
				visited[f] = true
				leftFace[f] = idx
			}
		}
	}

	d.Cells = make([]Cell, len(d.Sites))
	for i := range d.Cells {
		d.Cells[i] = s.assembleCell(d, leftFace, i, siteEdge[i])
	}

	if len(incomplete.Faces) > 0 {
		return d, incomplete
	}
	return d, nil
}

// assembleCell walks the rotation ring of site i's incident edges in
// counter-clockwise order, collecting the circumcenter of each edge's left
// face.
func (s *Subdivision) assembleCell(d *Diagram, leftFace []int32, i int, start Edge) Cell {
	cell := Cell{Site: i}
	if start == NilEdge {
		// Unreachable for subdivisions built by Triangulate: every site
		// has at least one incident edge.
		return cell
	}

	// An incident edge whose left face is unbounded, if the site is on the
	// convex hull.
	exterior := NilEdge
	for e := start; ; {
		if leftFace[e] == -1 {
			exterior = e
			break
		}
		if e = s.Onext(e); e == start {
			break
		}
	}

	if exterior == NilEdge {
		for e := start; ; {
			if idx := leftFace[e]; idx >= 0 {
				cell.Vertices = append(cell.Vertices, d.Vertices[idx])
			}
			if e = s.Onext(e); e == start {
				break
			}
		}
		cell.Closed = true
		return cell
	}

	// Open cell. The unbounded wedge lies between exterior and its onext
	// successor, so starting the walk there keeps the bounded chain
	// contiguous and counter-clockwise.
	first := s.Onext(exterior)
	for e := first; e != exterior; e = s.Onext(e) {
		if idx := leftFace[e]; idx >= 0 {
			cell.Vertices = append(cell.Vertices, d.Vertices[idx])
		}
	}
	if len(cell.Vertices) > 0 {
		// The unbounded boundary edges are the duals of the two hull edges
		// incident to the site: first (unbounded side on its right) and
		// exterior (unbounded side on its left). Their directions are the
		// outward perpendiculars.
		dirFirst := s.destPt(first).Sub(s.orgPt(first))
		dirExterior := s.destPt(exterior).Sub(s.orgPt(exterior))
		cell.Rays = [2]Vec2{
			dirFirst.Turn90().Negate().Normalize(),
			dirExterior.Turn90().Normalize(),
		}
	}
	return cell
}

// Bounds returns the smallest rectangle containing all sites and Voronoi
// vertices. Open cells extend beyond it along their rays.
func (d *Diagram) Bounds() Rect {
	if len(d.Sites) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(d.Sites[0], d.Sites[0])
	for _, pt := range d.Sites[1:] {
		r = r.UnionPoint(pt)
	}
	for _, pt := range d.Vertices {
		r = r.UnionPoint(pt)
	}
	return r
}

// circumcenter returns the center of the circle through a, b, and c. The
// primary method is the angle-weighted vertex mean O = Σ pᵢ·sin 2θᵢ / Σ sin 2θᵢ
// with the interior angles from the law of cosines; if its denominator is too
// small to trust, the intersection of two perpendicular bisectors is used
// instead. Failing both conditioning guards returns a
// NumericalInstabilityError rather than a displaced point.
func circumcenter(a, b, c Point) (Point, error) {
	alpha := triangleAngle(a, b, c)
	beta := triangleAngle(b, c, a)
	gamma := triangleAngle(c, a, b)

	wa := math.Sin(2 * alpha)
	wb := math.Sin(2 * beta)
	wc := math.Sin(2 * gamma)
	denom := wa + wb + wc
	if math.Abs(denom) > circumDenomGuard {
		return Pt(
			(a.X*wa+b.X*wb+c.X*wc)/denom,
			(a.Y*wa+b.Y*wb+c.Y*wc)/denom,
		), nil
	}
	return bisectorIntersection(a, b, c)
}

// triangleAngle returns the interior angle at a of the triangle abc, via the
// law of cosines on the opposite side lengths.
func triangleAngle(a, b, c Point) float64 {
	oppA := b.Distance(c)
	oppB := a.Distance(c)
	oppC := a.Distance(b)
	cos := (oppB*oppB + oppC*oppC - oppA*oppA) / (2 * oppB * oppC)
	// Round-off can push the quotient just past ±1, where Acos is NaN.
	return math.Acos(max(-1, min(1, cos)))
}

// bisectorIntersection computes the circumcenter as the intersection of the
// perpendicular bisectors of ab and bc.
func bisectorIntersection(a, b, c Point) (Point, error) {
	u := b.Sub(a)
	v := c.Sub(b)
	cross := u.Cross(v)
	if math.Abs(cross) <= circumCrossGuard*u.Hypot()*v.Hypot() {
		return Point{}, NumericalInstabilityError{A: a, B: b, C: c}
	}
	// Rotating both directions by 90° preserves their cross product, so the
	// bisector system m1 + t·u⊥ = m2 + s·v⊥ solves with the same divisor.
	m1 := a.Midpoint(b)
	m2 := b.Midpoint(c)
	t := m2.Sub(m1).Cross(v.Turn90()) / cross
	return m1.Translate(u.Turn90().Mul(t)), nil
}
