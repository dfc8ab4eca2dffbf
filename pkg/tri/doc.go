// Package tri addresses the primitives of a triangular tessellation of the
// plane with exact integer coordinates.
//
// Vertices, edge midpoints and triangle centroids share one fine lattice
// scaled by UnitLength, so a single Axial value can name any of them and
// Classify recovers which kind from residues alone:
//
//	vertex   (0, 0) mod 6
//	edge     (3, 0), (0, 3), (3, 3) mod 6
//	triangle (2, 2), (4, 4) mod 6
//
// Axial stores X and Y; Z is always -X-Y. Rotations by multiples of 60
// degrees are exact permutations of the three components, which is what keeps
// the Vertex, Edge and Triangle topology queries free of tolerances. The only
// lossy step is snapping a continuous AxialF (or a Euclidean Point through
// AtEuclid) to the lattice with VertexNear, EdgeNear and TriangleNear.
//
// All functions are pure and total: lookups outside a finite domain return a
// None sentinel or the zero vector rather than failing. The package keeps no
// mutable state, so every value is safe for concurrent use.
package tri
