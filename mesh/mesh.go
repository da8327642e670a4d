// Package mesh builds the triangle mesh of Boy's surface. A polar grid of
// complex parameters is pushed through the Bryant-Kusner evaluator once,
// then stitched: radial quad strips between consecutive rings, a half-turn
// Moebius join gluing the outer boundary ring to itself, and a fan closing
// the centre. The Moebius join is what turns the disk into an immersed
// projective plane.
package mesh

import (
	"gonum.org/v1/gonum/floats"
)

// Mesh is a triangle mesh with coordinates stored as parallel slices and
// 0-based face indices. Nothing mutates a Mesh after construction except
// the postprocess package, which operates on an explicit handle.
type Mesh struct {
	// Geometry, one entry per vertex
	X, Y, Z []float64

	// Faces are vertex index triples; winding is consistently outward
	Faces [][3]int

	// Mesh statistics
	NumVertices int
	NumFaces    int
}

// Vertex returns the coordinates of vertex i.
func (m *Mesh) Vertex(i int) (v [3]float64) {
	v[0], v[1], v[2] = m.X[i], m.Y[i], m.Z[i]
	return
}

// Bounds returns the axis-aligned bounding box over all vertices.
func (m *Mesh) Bounds() (min, max [3]float64) {
	for d, c := range [][]float64{m.X, m.Y, m.Z} {
		min[d] = floats.Min(c)
		max[d] = floats.Max(c)
	}
	return
}
