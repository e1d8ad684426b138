// Command voronoi computes the Voronoi diagram of randomly placed sites and
// writes it as an SVG image.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"github.com/danlincoln/voronoi"
)

func main() {
	var (
		width      = flag.Int("width", 1920, "image width")
		height     = flag.Int("height", 1080, "image height")
		numSites   = flag.Int("sites", 10, "number of sites to use for the diagram")
		foreground = flag.String("foreground", "rgb(0,0,0)", "cell color")
		background = flag.String("background", "rgb(255,255,255)", "background color")
		line       = flag.String("line", "rgb(255,255,255)", "line color")
		lineWeight = flag.Int("line-weight", 1, "line width")
		seed       = flag.Uint64("seed", 0, "random seed; 0 derives one from the system")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.svg\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	err := run(flag.Arg(0), *width, *height, *numSites, *foreground, *background, *line, *lineWeight, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "voronoi:", err)
		os.Exit(1)
	}
}

func run(name string, width, height, numSites int, fg, bg, line string, weight int, seed uint64) error {
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	canvas := voronoi.Rect{X0: 0, Y0: 0, X1: float64(width), Y1: float64(height)}
	sites := randomSites(rng, canvas, numSites)
	// Four sites just outside the corners keep the visible cells tidy at the
	// image edges.
	pad := canvas.Inflate(5, 5)
	sites = append(sites,
		voronoi.Pt(pad.X0, pad.Y0),
		voronoi.Pt(pad.X0, pad.Y1),
		voronoi.Pt(pad.X1, pad.Y1),
		voronoi.Pt(pad.X1, pad.Y0),
	)

	sub, err := voronoi.Triangulate(sites)
	if err != nil {
		return err
	}
	diagram, err := voronoi.Dual(sub)
	if err != nil {
		var incomplete voronoi.IncompleteDiagramError
		if !errors.As(err, &incomplete) {
			return err
		}
		// Render what we have and say so.
		fmt.Fprintln(os.Stderr, "voronoi:", err)
	}

	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	render(f, diagram, width, height, fg, bg, line, weight, rng)
	return errors.Wrap(f.Close(), "write output")
}

// randomSites samples n distinct sites uniformly from r.
func randomSites(rng *rand.Rand, r voronoi.Rect, n int) []voronoi.Point {
	sites := make([]voronoi.Point, 0, n)
	seen := make(map[voronoi.Point]bool, n)
	for len(sites) < n {
		pt := voronoi.Pt(
			r.X0+rng.Float64()*r.Width(),
			r.Y0+rng.Float64()*r.Height(),
		)
		if seen[pt] {
			continue
		}
		seen[pt] = true
		sites = append(sites, pt)
	}
	return sites
}

func render(w io.Writer, d *voronoi.Diagram, width, height int, fg, bg, line string, weight int, rng *rand.Rand) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+bg)

	// Open cells are closed off far outside the image; the SVG viewport does
	// the clipping.
	reach := 2 * math.Hypot(float64(width), float64(height))
	for _, cell := range d.Cells {
		pts := cell.Vertices
		if len(pts) == 0 {
			continue
		}
		if !cell.Closed {
			first := pts[0].Translate(cell.Rays[0].Mul(reach))
			last := pts[len(pts)-1].Translate(cell.Rays[1].Mul(reach))
			pts = append(append([]voronoi.Point{first}, pts...), last)
		}
		xs := make([]int, len(pts))
		ys := make([]int, len(pts))
		for i, pt := range pts {
			xs[i] = int(math.Round(pt.X))
			ys[i] = int(math.Round(pt.Y))
		}
		style := fmt.Sprintf("fill:%s;fill-opacity:%.3f;stroke:%s;stroke-width:%d",
			fg, rng.Float64()/2, line, weight)
		canvas.Polygon(xs, ys, style)
	}
	canvas.End()
}
