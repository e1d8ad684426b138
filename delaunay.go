package voronoi

import (
	"cmp"
	"fmt"
	"slices"
)

// Triangulate computes the Delaunay triangulation of the given sites using
// the divide-and-conquer algorithm of Guibas and Stolfi. The input slice is
// not modified; the resulting subdivision stores the sites sorted by
// x-coordinate with ties broken by y.
//
// At least two sites are required, all coordinates must be finite, and no two
// sites may coincide; otherwise a [DegenerateInputError] is returned before
// any topology is built. All-collinear input is accepted and produces a valid
// subdivision with no bounded faces.
func Triangulate(sites []Point) (*Subdivision, error) {
	if len(sites) < 2 {
		return nil, DegenerateInputError{
			Reason: fmt.Sprintf("need at least 2 sites, got %d", len(sites)),
		}
	}
	for _, pt := range sites {
		if pt.IsNaN() || pt.IsInf() {
			return nil, DegenerateInputError{
				Reason: fmt.Sprintf("non-finite site %v", pt),
			}
		}
	}

	sorted := slices.Clone(sites)
	slices.SortFunc(sorted, func(a, b Point) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, DegenerateInputError{
				Reason: fmt.Sprintf("duplicate site %v", sorted[i]),
			}
		}
	}

	s := NewSubdivision(sorted)
	le, _ := s.delaunay(0, len(sorted))
	s.entry = le
	return s, nil
}

// delaunay triangulates the sites in the index range [lo, hi), which holds at
// least two sites in sorted order. It returns the counter-clockwise convex
// hull edge out of the leftmost site and the clockwise hull edge out of the
// rightmost site.
func (s *Subdivision) delaunay(lo, hi int) (le, re Edge) {
	switch hi - lo {
	case 2:
		// A single edge connecting the two sites.
		a := s.MakeEdge(lo, lo+1)
		return a, a.Sym()
	case 3:
		// Two edges chaining the three sites, plus a closing edge if they
		// are not collinear.
		a := s.MakeEdge(lo, lo+1)
		b := s.MakeEdge(lo+1, lo+2)
		s.Splice(a.Sym(), b)

		s1, s2, s3 := s.sites[lo], s.sites[lo+1], s.sites[lo+2]
		switch {
		case Orient(s1, s2, s3) == CounterClockwise:
			s.Connect(b, a)
			return a, b.Sym()
		case Orient(s1, s3, s2) == CounterClockwise:
			c := s.Connect(b, a)
			return c.Sym(), c
		default:
			// The three sites are collinear; leave the chain open.
			return a, b.Sym()
		}
	}

	// Four or more sites: triangulate both halves, then merge.
	mid := lo + (hi-lo)/2
	ldo, ldi := s.delaunay(lo, mid)
	rdi, rdo := s.delaunay(mid, hi)

	// Descend to the lower common tangent of the two triangulations.
	for {
		if s.leftOf(s.Org(rdi), ldi) {
			ldi = s.Lnext(ldi)
		} else if s.rightOf(s.Org(ldi), rdi) {
			rdi = s.Rprev(rdi)
		} else {
			break
		}
	}

	// The first cross edge, from rdi's origin to ldi's origin.
	basel := s.Connect(rdi.Sym(), ldi)
	if s.Org(ldi) == s.Org(ldo) {
		ldo = basel.Sym()
	}
	if s.Org(rdi) == s.Org(rdo) {
		rdo = basel
	}

	for {
		// Locate the first left-side site the rising bubble will hit, and
		// delete left edges out of basel's destination that fail the circle
		// test.
		lcand := s.Onext(basel.Sym())
		if s.valid(lcand, basel) {
			for s.inCircle(s.Dest(basel), s.Org(basel), s.Dest(lcand), s.Dest(s.Onext(lcand))) {
				t := s.Onext(lcand)
				s.DeleteEdge(lcand)
				lcand = t
			}
		}

		// Symmetrically on the right side.
		rcand := s.Oprev(basel)
		if s.valid(rcand, basel) {
			for s.inCircle(s.Dest(basel), s.Org(basel), s.Dest(rcand), s.Dest(s.Oprev(rcand))) {
				t := s.Oprev(rcand)
				s.DeleteEdge(rcand)
				rcand = t
			}
		}

		// If neither candidate is valid, basel is the upper common tangent
		// and the merge is complete.
		lvalid := s.valid(lcand, basel)
		rvalid := s.valid(rcand, basel)
		if !lvalid && !rvalid {
			break
		}

		// Connect to whichever candidate's far endpoint is Delaunay-correct
		// against the other side, forming the next cross edge.
		if !lvalid || (rvalid && s.inCircle(s.Dest(lcand), s.Org(lcand), s.Org(rcand), s.Dest(rcand))) {
			basel = s.Connect(rcand, basel.Sym())
		} else {
			basel = s.Connect(basel.Sym(), lcand.Sym())
		}
	}

	return ldo, rdo
}

// leftOf reports whether site p lies strictly to the left of e.
func (s *Subdivision) leftOf(p int, e Edge) bool {
	return Orient(s.sites[p], s.orgPt(e), s.destPt(e)) == CounterClockwise
}

// rightOf reports whether site p lies strictly to the right of e.
func (s *Subdivision) rightOf(p int, e Edge) bool {
	return Orient(s.sites[p], s.destPt(e), s.orgPt(e)) == CounterClockwise
}

// valid reports whether a merge candidate still lies above basel. Collinear
// candidates are never valid.
func (s *Subdivision) valid(e, basel Edge) bool {
	return s.rightOf(s.Dest(e), basel)
}

func (s *Subdivision) inCircle(a, b, c, d int) bool {
	return InCircumcircle(s.sites[a], s.sites[b], s.sites[c], s.sites[d])
}
