// Package voronoi computes Delaunay triangulations of point sets in the plane
// and derives their dual Voronoi diagrams.
//
// # Quad-edges
//
// The triangulation is represented as a [Subdivision], a planar subdivision in
// the quad-edge form of Guibas and Stolfi. Every edge of the subdivision is
// stored as a quad of four directed quarter-edges: the edge itself, its
// reverse, and the two directions of its dual edge. All topology is expressed
// through a single O(1) rewiring primitive, [Subdivision.Splice].
// Quarter-edges are identified by plain [Edge] indices into a flat arena
// rather than by pointers, which keeps the cyclic ring structure free of
// aliasing hazards and makes edges cheap to store and compare.
//
// # Construction
//
// [Triangulate] builds the Delaunay triangulation with the divide-and-conquer
// algorithm from the same paper: sites are sorted by x (ties by y), halves are
// triangulated independently, and the two triangulations are merged along
// their common tangents. The subdivision is a valid Delaunay triangulation of
// the sites merged so far at every step, not just at the end.
//
// The geometric predicates [Orient] and [InCircumcircle] decide every
// topological choice the builder makes. Both evaluate their determinant in
// float64 first and accept the result only when its magnitude exceeds a
// conservative rounding-error bound; otherwise they re-evaluate in exact
// rational arithmetic. The sign they return is always the sign of the exact
// determinant, so the builder cannot be driven into an invalid subdivision by
// round-off on near-degenerate input.
//
// # The dual
//
// [Dual] walks the finished subdivision, computes the circumcenter of every
// triangular face, and assembles one Voronoi [Cell] per site by visiting the
// site's incident edges in counter-clockwise order. Sites on the convex hull
// get open cells: a bounded chain of vertices plus the directions of the two
// unbounded boundary rays. Clipping open cells to a finite canvas is left to
// the consumer; cmd/voronoi shows one way to do it when rendering to SVG.
//
// # Literature
//
//   - [Primitives for the Manipulation of General Subdivisions and the Computation of Voronoi Diagrams] by Guibas and Stolfi
//   - [Adaptive Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates] by Shewchuk
//
// [Primitives for the Manipulation of General Subdivisions and the Computation of Voronoi Diagrams]: https://doi.org/10.1145/282918.282923
// [Adaptive Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates]: https://doi.org/10.1007/PL00009321
package voronoi
