package voronoi

import (
	"math"
	"math/big"
)

// This file contains the two geometric predicates every topological decision
// in the builder rests on. They are guaranteed to produce correct, consistent
// results: each determinant is evaluated in float64 and accepted only when its
// magnitude exceeds a conservative rounding-error bound, and re-evaluated in
// exact rational arithmetic otherwise. The error bounds are Shewchuk's "A"
// bounds for the orientation and in-circle determinants.

const (
	// dblEpsilon is the difference between 1.0 and the next larger
	// representable float64. This is the C DBL_EPSILON equivalent.
	dblEpsilon = 2.220446049250313e-16

	// orientErrBound bounds the rounding error of the float64 evaluation of
	// the orientation determinant, as a multiple of the sum of the magnitudes
	// of its two products. If |det| exceeds the bound, the computed sign is
	// the exact sign.
	orientErrBound = (3.0 + 16.0*dblEpsilon) * dblEpsilon

	// inCircleErrBound is the corresponding bound for the in-circle
	// determinant, as a multiple of its permanent.
	inCircleErrBound = (10.0 + 96.0*dblEpsilon) * dblEpsilon
)

// Orientation describes where a point lies relative to a directed line
// through two other points.
type Orientation int

const (
	// Clockwise means the point lies strictly to the right of the line.
	Clockwise Orientation = -1
	// Collinear means the three points lie exactly on one line.
	Collinear Orientation = 0
	// CounterClockwise means the point lies strictly to the left of the line.
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case Collinear:
		return "collinear"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "invalid orientation"
	}
}

// Orient reports the orientation of c relative to the directed line a→b:
// CounterClockwise if c lies strictly to its left, Clockwise if strictly to
// its right, and Collinear if the three points lie on one line. Equivalently,
// it is the sign of the 2×2 determinant (b−a)×(c−a), the doubled signed area
// of the triangle abc.
//
// The result is always the sign of the exact determinant; Collinear is an
// exact zero, not a tolerance band.
func Orient(a, b, c Point) Orientation {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	// When the two products have opposite signs (or one is zero) the
	// subtraction cannot cancel, and the float64 sign is exact.
	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return orientationOf(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return orientationOf(det)
		}
		detSum = -detLeft - detRight
	default:
		return orientationOf(det)
	}

	if d := math.Abs(det); d >= orientErrBound*detSum {
		return orientationOf(det)
	}
	return orientExact(a, b, c)
}

func orientationOf(det float64) Orientation {
	switch {
	case det > 0:
		return CounterClockwise
	case det < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// orientExact evaluates the orientation determinant in rational arithmetic.
// Every finite float64 is exactly representable as a big.Rat, so the result
// carries no rounding error at all.
func orientExact(a, b, c Point) Orientation {
	acx := new(big.Rat).Sub(ratFromFloat(a.X), ratFromFloat(c.X))
	bcy := new(big.Rat).Sub(ratFromFloat(b.Y), ratFromFloat(c.Y))
	acy := new(big.Rat).Sub(ratFromFloat(a.Y), ratFromFloat(c.Y))
	bcx := new(big.Rat).Sub(ratFromFloat(b.X), ratFromFloat(c.X))

	det := new(big.Rat).Sub(acx.Mul(acx, bcy), acy.Mul(acy, bcx))
	return Orientation(det.Sign())
}

// InCircumcircle reports whether d lies strictly inside the circle through a,
// b, and c, which must be given in counter-clockwise order. Points on the
// circle are not inside; if any two of the four points coincide, the result
// is false.
//
// The test is the sign of the 4×4 determinant obtained by lifting each point
// onto the paraboloid (x, y, x²+y²), evaluated relative to d. Like [Orient]
// it returns the sign of the exact determinant, falling back to rational
// arithmetic when the float64 result is uncertain.
func InCircumcircle(a, b, c, d Point) bool {
	if a == b || a == c || a == d || b == c || b == d || c == d {
		return false
	}

	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) +
		blift*(cdxady-adxcdy) +
		clift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	errBound := inCircleErrBound * permanent
	if det > errBound {
		return true
	}
	if -det > errBound {
		return false
	}
	return inCircumcircleExact(a, b, c, d) > 0
}

// inCircumcircleExact evaluates the lifted determinant in rational
// arithmetic, expanded along the row of d.
func inCircumcircleExact(a, b, c, d Point) int {
	adx := new(big.Rat).Sub(ratFromFloat(a.X), ratFromFloat(d.X))
	ady := new(big.Rat).Sub(ratFromFloat(a.Y), ratFromFloat(d.Y))
	bdx := new(big.Rat).Sub(ratFromFloat(b.X), ratFromFloat(d.X))
	bdy := new(big.Rat).Sub(ratFromFloat(b.Y), ratFromFloat(d.Y))
	cdx := new(big.Rat).Sub(ratFromFloat(c.X), ratFromFloat(d.X))
	cdy := new(big.Rat).Sub(ratFromFloat(c.Y), ratFromFloat(d.Y))

	alift := new(big.Rat).Add(
		new(big.Rat).Mul(adx, adx),
		new(big.Rat).Mul(ady, ady),
	)
	blift := new(big.Rat).Add(
		new(big.Rat).Mul(bdx, bdx),
		new(big.Rat).Mul(bdy, bdy),
	)
	clift := new(big.Rat).Add(
		new(big.Rat).Mul(cdx, cdx),
		new(big.Rat).Mul(cdy, cdy),
	)

	bcdet := new(big.Rat).Sub(
		new(big.Rat).Mul(bdx, cdy),
		new(big.Rat).Mul(cdx, bdy),
	)
	cadet := new(big.Rat).Sub(
		new(big.Rat).Mul(cdx, ady),
		new(big.Rat).Mul(adx, cdy),
	)
	abdet := new(big.Rat).Sub(
		new(big.Rat).Mul(adx, bdy),
		new(big.Rat).Mul(bdx, ady),
	)

	det := new(big.Rat).Add(
		new(big.Rat).Add(
			alift.Mul(alift, bcdet),
			blift.Mul(blift, cadet),
		),
		clift.Mul(clift, abdet),
	)
	return det.Sign()
}

func ratFromFloat(f float64) *big.Rat {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic("voronoi: non-finite coordinate in exact predicate")
	}
	return r
}
