package voronoi

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// signedArea returns the doubled signed area of a polygon; positive means
// counter-clockwise winding.
func signedArea(pts []Point) float64 {
	var area float64
	for i, pt := range pts {
		next := pts[(i+1)%len(pts)]
		area += pt.X*next.Y - next.X*pt.Y
	}
	return area
}

func TestDualTriangle(t *testing.T) {
	s, err := Triangulate([]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	d, err := Dual(s)
	if err != nil {
		t.Fatal(err)
	}

	diff(t, []Point{Pt(0.5, 0.5)}, d.Vertices, cmpopts.EquateApprox(0, 1e-12))
	if got := len(d.Cells); got != 3 {
		t.Fatalf("got %v cells, want 3", got)
	}
	for _, cell := range d.Cells {
		if cell.Closed {
			t.Errorf("cell of hull site %v is closed, want open", d.Sites[cell.Site])
		}
		diff(t, []Point{Pt(0.5, 0.5)}, cell.Vertices, cmpopts.EquateApprox(0, 1e-12))
	}

	// Sorted site order is (0,0), (0,1), (1,0). The cell of (0,0) opens
	// towards the third quadrant: down past the bisector with (1,0), left
	// past the bisector with (0,1).
	diff(t, [2]Vec2{Vec(0, -1), Vec(-1, 0)}, d.Cells[0].Rays, cmpopts.EquateApprox(0, 1e-12))
}

func TestDualUnitSquare(t *testing.T) {
	s, err := Triangulate([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	d, err := Dual(s)
	if err != nil {
		t.Fatal(err)
	}

	// Both faces of the square share one circumcenter.
	diff(t, []Point{Pt(0.5, 0.5), Pt(0.5, 0.5)}, d.Vertices, cmpopts.EquateApprox(0, 1e-12))
	for _, cell := range d.Cells {
		if cell.Closed {
			t.Errorf("cell of hull site %v is closed, want open", d.Sites[cell.Site])
		}
		for _, v := range cell.Vertices {
			diff(t, Pt(0.5, 0.5), v, cmpopts.EquateApprox(0, 1e-12))
		}
	}
}

func TestDualCollinear(t *testing.T) {
	s, err := Triangulate([]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	d, err := Dual(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(d.Vertices); got != 0 {
		t.Errorf("got %v Voronoi vertices, want 0", got)
	}
	for _, cell := range d.Cells {
		if cell.Closed {
			t.Errorf("cell of %v is closed, want open", d.Sites[cell.Site])
		}
		if len(cell.Vertices) != 0 {
			t.Errorf("cell of %v has vertices %v, want none", d.Sites[cell.Site], cell.Vertices)
		}
	}
}

func TestDualInteriorCellClosedCCW(t *testing.T) {
	var sites []Point
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			sites = append(sites, Pt(float64(x), float64(y)))
		}
	}
	s, err := Triangulate(sites)
	if err != nil {
		t.Fatal(err)
	}
	d, err := Dual(s)
	if err != nil {
		t.Fatal(err)
	}

	closed := 0
	for _, cell := range d.Cells {
		if !cell.Closed {
			continue
		}
		closed++
		if d.Sites[cell.Site] != Pt(1, 1) {
			t.Errorf("closed cell for %v, expected only the grid center", d.Sites[cell.Site])
		}
		if area := signedArea(cell.Vertices); area <= 0 {
			t.Errorf("closed cell winds clockwise (doubled area %v)", area)
		}
	}
	if closed != 1 {
		t.Errorf("got %v closed cells, want 1", closed)
	}
}

func TestDualIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 17))
	sites := make([]Point, 30)
	for i := range sites {
		sites[i] = Pt(rng.Float64()*10, rng.Float64()*10)
	}
	s, err := Triangulate(sites)
	if err != nil {
		t.Fatal(err)
	}

	d1, err := Dual(s)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Dual(s)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, d1, d2)
}

func TestDualOpenCellRaysPointOutward(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 23))
	sites := make([]Point, 20)
	for i := range sites {
		sites[i] = Pt(rng.Float64()*10, rng.Float64()*10)
	}
	s, err := Triangulate(sites)
	if err != nil {
		t.Fatal(err)
	}
	d, err := Dual(s)
	if err != nil {
		t.Fatal(err)
	}

	var centroid Point
	for _, site := range d.Sites {
		centroid.X += site.X / float64(len(d.Sites))
		centroid.Y += site.Y / float64(len(d.Sites))
	}
	for _, cell := range d.Cells {
		if cell.Closed || len(cell.Vertices) == 0 {
			continue
		}
		site := d.Sites[cell.Site]
		for i, ray := range cell.Rays {
			if got := ray.Hypot(); math.Abs(got-1) > 1e-12 {
				t.Errorf("ray %v of site %v has magnitude %v, want 1", i, site, got)
			}
			// Each ray is the outward normal of a hull edge incident to
			// the site, so it points away from the hull's interior.
			if ray.Dot(site.Sub(centroid)) <= 0 {
				t.Errorf("ray %v of site %v points into the diagram", i, site)
			}
		}
	}
}

func TestCircumcenterMethodsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(29, 31))
	for i := 0; i < 500; i++ {
		a := Pt(rng.Float64()*10, rng.Float64()*10)
		b := Pt(rng.Float64()*10, rng.Float64()*10)
		c := Pt(rng.Float64()*10, rng.Float64()*10)
		if Orient(a, b, c) == Collinear {
			continue
		}

		bisect, err := bisectorIntersection(a, b, c)
		if err != nil {
			continue // too thin for either method
		}
		center, err := circumcenter(a, b, c)
		if err != nil {
			t.Fatalf("circumcenter(%v, %v, %v): %v", a, b, c, err)
		}
		scale := max(1, bisect.Sub(Point{}).Hypot())
		if center.Distance(bisect) > 1e-6*scale {
			t.Errorf("circumcenter(%v, %v, %v): trigonometric %v and bisector %v disagree", a, b, c, center, bisect)
		}

		// The center is equidistant from all three vertices.
		ra, rb, rc := center.Distance(a), center.Distance(b), center.Distance(c)
		if math.Abs(ra-rb) > 1e-6*scale || math.Abs(ra-rc) > 1e-6*scale {
			t.Errorf("circumcenter(%v, %v, %v) = %v is not equidistant: %v %v %v", a, b, c, center, ra, rb, rc)
		}
	}
}

func TestCircumcenterDegenerate(t *testing.T) {
	_, err := circumcenter(Pt(0, 0), Pt(1, 1e-13), Pt(2, 0))
	var unstable NumericalInstabilityError
	if !errors.As(err, &unstable) {
		t.Errorf("got %v, want a NumericalInstabilityError", err)
	}
}

func TestDualIncompleteDiagram(t *testing.T) {
	// A sliver triangle thin enough to fail both circumcenter guards.
	s, err := Triangulate([]Point{Pt(0, 0), Pt(1, -1e-13), Pt(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	d, err := Dual(s)
	var incomplete IncompleteDiagramError
	if !errors.As(err, &incomplete) {
		t.Fatalf("got %v, want an IncompleteDiagramError", err)
	}
	if d == nil {
		t.Fatal("expected a partial diagram alongside the error")
	}
	if got := len(d.Vertices); got != 0 {
		t.Errorf("got %v Voronoi vertices, want 0", got)
	}
	if got := len(incomplete.Faces); got != 1 {
		t.Errorf("got %v failed faces, want 1", got)
	}
}
