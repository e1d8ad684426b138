package voronoi

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Edge identifies one directed quarter-edge of a [Subdivision]. Each edge of
// the subdivision occupies a quad of four consecutive arena slots: the edge
// itself, its dual, its reverse, and its reversed dual, in rotation order.
// The two low bits of an Edge select the rotation within the quad, the
// remaining bits select the quad, so the edge algebra is plain index
// arithmetic and never touches the arena.
type Edge uint32

// NilEdge marks the absence of an edge.
const NilEdge Edge = ^Edge(0)

// Rot returns the edge rotated a quarter turn counter-clockwise: the dual
// edge directed from e's right face to its left face. Four rotations return
// to e.
func (e Edge) Rot() Edge {
	return e&^3 | (e+1)&3
}

// InvRot returns the edge rotated a quarter turn clockwise, undoing [Edge.Rot].
func (e Edge) InvRot() Edge {
	return e&^3 | (e+3)&3
}

// Sym returns the edge pointing in the opposite direction. Two applications
// return to e.
func (e Edge) Sym() Edge {
	return e ^ 2
}

// Quad returns the index of the quad the edge belongs to. Edges of the same
// quad are rotations of one another.
func (e Edge) Quad() int {
	return int(e >> 2)
}

func (e Edge) String() string {
	if e == NilEdge {
		return "nil edge"
	}
	return fmt.Sprintf("%d/%d", e>>2, e&3)
}

// Subdivision is a planar subdivision in quad-edge form: a set of edge quads
// linked through "next counter-clockwise around the origin" rings. All edge
// records live in one flat arena owned by the subdivision; a finished
// [Triangulate] result is a Delaunay triangulation of its sites.
//
// A Subdivision is not safe for concurrent mutation. Splice is the only
// operation that rewires rings, and it must not run concurrently with any
// other access.
type Subdivision struct {
	sites []Point
	next  []Edge  // onext link per quarter-edge
	orig  []int32 // site index per primal quarter-edge, -1 for duals and unset origins
	dead  []bool  // per quad, set when the quad has been deleted
	free  []Edge  // base quarter-edges of deleted quads, available for reuse
	alive int     // number of live quads
	entry Edge    // an edge on the convex hull whose origin is the leftmost site
}

// NewSubdivision returns an empty subdivision over the given sites. Edges
// refer to sites by index; the site slice is retained, not copied.
//
// Most callers want [Triangulate], which validates and sorts its input and
// builds the full Delaunay structure.
func NewSubdivision(sites []Point) *Subdivision {
	return &Subdivision{
		sites: sites,
		entry: NilEdge,
	}
}

// NumSites returns the number of sites.
func (s *Subdivision) NumSites() int {
	return len(s.sites)
}

// Site returns the site with the given index.
func (s *Subdivision) Site(i int) Point {
	return s.sites[i]
}

// Sites returns the subdivision's sites, ordered by x-coordinate with ties
// broken by y when the subdivision was built by [Triangulate]. The returned
// slice must not be modified.
func (s *Subdivision) Sites() []Point {
	return s.sites
}

// NumEdges returns the number of live edges. Each edge counts once, not once
// per direction.
func (s *Subdivision) NumEdges() int {
	return s.alive
}

// Org returns the index of the site at the edge's origin, or -1 if no origin
// has been set.
func (s *Subdivision) Org(e Edge) int {
	return int(s.orig[e])
}

// Dest returns the index of the site at the edge's destination, or -1 if no
// destination has been set.
func (s *Subdivision) Dest(e Edge) int {
	return int(s.orig[e.Sym()])
}

func (s *Subdivision) orgPt(e Edge) Point {
	return s.sites[s.orig[e]]
}

func (s *Subdivision) destPt(e Edge) Point {
	return s.sites[s.orig[e.Sym()]]
}

// Onext returns the next edge counter-clockwise around e's origin.
func (s *Subdivision) Onext(e Edge) Edge {
	return s.next[e]
}

// Oprev returns the next edge clockwise around e's origin.
func (s *Subdivision) Oprev(e Edge) Edge {
	return s.next[e.Rot()].Rot()
}

// Lnext returns the next edge counter-clockwise around e's left face,
// starting at e's destination.
func (s *Subdivision) Lnext(e Edge) Edge {
	return s.next[e.InvRot()].Rot()
}

// Lprev returns the next edge clockwise around e's left face.
func (s *Subdivision) Lprev(e Edge) Edge {
	return s.next[e].Sym()
}

// Rnext returns the next edge counter-clockwise around e's right face.
func (s *Subdivision) Rnext(e Edge) Edge {
	return s.next[e.Rot()].InvRot()
}

// Rprev returns the next edge clockwise around e's right face, starting at
// e's destination.
func (s *Subdivision) Rprev(e Edge) Edge {
	return s.next[e.Sym()]
}

// Dnext returns the next edge counter-clockwise around e's destination.
func (s *Subdivision) Dnext(e Edge) Edge {
	return s.next[e.Sym()].Sym()
}

// Dprev returns the next edge clockwise around e's destination.
func (s *Subdivision) Dprev(e Edge) Edge {
	return s.next[e.InvRot()].InvRot()
}

// MakeEdge allocates a new edge quad whose primal edge runs from site org to
// site dest. The new edge is its own origin and destination ring; its dual
// records form a loop, as a lone edge's left and right face are the same.
// Either site index may be -1 to leave the endpoint unset.
func (s *Subdivision) MakeEdge(org, dest int) Edge {
	var e Edge
	if n := len(s.free); n > 0 {
		e = s.free[n-1]
		s.free = s.free[:n-1]
		s.dead[e.Quad()] = false
	} else {
		e = Edge(len(s.next))
		s.next = append(s.next, 0, 0, 0, 0)
		s.orig = append(s.orig, -1, -1, -1, -1)
		s.dead = append(s.dead, false)
	}
	s.next[e] = e
	s.next[e.Rot()] = e.InvRot()
	s.next[e.Sym()] = e.Sym()
	s.next[e.InvRot()] = e.Rot()
	s.orig[e] = int32(org)
	s.orig[e.Rot()] = -1
	s.orig[e.Sym()] = int32(dest)
	s.orig[e.InvRot()] = -1
	s.alive++
	return e
}

// Splice is the single topological primitive of the quad-edge structure. It
// exchanges the onext links of a and b and of their duals, which either
// merges the origin rings of a and b into one ring or splits a shared ring in
// two, depending on whether the rings were distinct. Left-face rings change
// in tandem. After any splice every ring is again a single closed cycle.
func (s *Subdivision) Splice(a, b Edge) {
	if !s.live(a) || !s.live(b) {
		panic(fmt.Sprintf("voronoi: Splice(%v, %v): edge outside the live arena", a, b))
	}
	alpha := s.next[a].Rot()
	beta := s.next[b].Rot()
	s.next[a], s.next[b] = s.next[b], s.next[a]
	s.next[alpha], s.next[beta] = s.next[beta], s.next[alpha]
}

// Connect creates a new edge from a's destination to b's origin, splicing it
// into both rotation rings so that all three edges share the same left face.
func (s *Subdivision) Connect(a, b Edge) Edge {
	e := s.MakeEdge(s.Dest(a), s.Org(b))
	s.Splice(e, s.Lnext(a))
	s.Splice(e.Sym(), b)
	return e
}

// DeleteEdge unlinks e from both of its rotation rings and frees its quad.
// This may disconnect the subdivision into separate components.
func (s *Subdivision) DeleteEdge(e Edge) {
	if !s.live(e) {
		panic(fmt.Sprintf("voronoi: DeleteEdge(%v): edge outside the live arena", e))
	}
	s.Splice(e, s.Oprev(e))
	s.Splice(e.Sym(), s.Oprev(e.Sym()))
	base := e &^ 3
	s.dead[e.Quad()] = true
	s.free = append(s.free, base)
	s.alive--
}

func (s *Subdivision) live(e Edge) bool {
	return int(e) < len(s.next) && !s.dead[e.Quad()]
}

// Edges yields the primal quarter-edge of every live quad, in arena order.
// Each edge of the subdivision is yielded in one direction only; use
// [Edge.Sym] for the other.
func (s *Subdivision) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for q := range s.dead {
			if s.dead[q] {
				continue
			}
			if !yield(Edge(q << 2)) {
				return
			}
		}
	}
}

// ConvexHull returns the site indices on the convex hull in counter-clockwise
// order, starting at the leftmost site, by walking the unbounded face's
// boundary.
// For an all-collinear subdivision the walk traverses the chain out and back,
// so interior chain sites appear twice. The result is nil if the subdivision
// was not built by [Triangulate].
func (s *Subdivision) ConvexHull() []int {
	if s.entry == NilEdge {
		return nil
	}
	hull := []int{s.Org(s.entry)}
	for e := s.Rnext(s.entry); e != s.entry; e = s.Rnext(e) {
		hull = append(hull, s.Org(e))
	}
	return hull
}

// Validate checks the structural invariants of the subdivision: every onext
// link stays within the live arena, origin rings are closed cycles, and every
// edge on a ring shares the ring's origin. It returns nil if no issues were
// found. A correct implementation never fails this; it exists to diagnose
// bugs in code that manipulates the topology directly.
func (s *Subdivision) Validate() error {
	limit := 4 * s.alive
	for q := range s.dead {
		if s.dead[q] {
			continue
		}
		for r := 0; r < 4; r++ {
			e := Edge(q<<2 | r)
			n := s.next[e]
			if !s.live(n) {
				return errors.Errorf("edge %v: onext %v is outside the live arena", e, n)
			}
			if s.orig[n] != s.orig[e] {
				return errors.Errorf("edge %v: onext %v has origin %d, want %d", e, n, s.orig[n], s.orig[e])
			}
			steps := 0
			for ring := n; ring != e; ring = s.next[ring] {
				if steps++; steps > limit {
					return errors.Errorf("edge %v: origin ring does not close", e)
				}
				if !s.live(ring) {
					return errors.Errorf("edge %v: origin ring passes through dead edge %v", e, ring)
				}
			}
		}
	}
	return nil
}
