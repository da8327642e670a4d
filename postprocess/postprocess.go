// Package postprocess mirrors what a host modeling application does with a
// finished vertex/face list: pivot centering, display orientation, quad
// merging and smoothing-group assignment. Every operation takes an explicit
// mesh handle; there is no ambient selection state.
package postprocess

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/M6D6M6A/boys-surface/mesh"
)

// CenterPivot translates the mesh so its bounding-box centre sits at the
// world origin.
func CenterPivot(m *mesh.Mesh) {
	min, max := m.Bounds()
	for d, c := range [][]float64{m.X, m.Y, m.Z} {
		floats.AddConst(-0.5*(min[d]+max[d]), c)
	}
}

// RotateY rotates all vertices about the Y axis. The generator's natural
// orientation opens the umbrella along -X; -90 degrees turns it to face +Z
// for viewing.
func RotateY(m *mesh.Mesh, degrees float64) {
	var (
		th = degrees * math.Pi / 180
		c  = math.Cos(th)
		s  = math.Sin(th)
		n  = m.NumVertices
	)
	R := mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
	P := mat.NewDense(3, n, nil)
	P.SetRow(0, m.X)
	P.SetRow(1, m.Y)
	P.SetRow(2, m.Z)
	var out mat.Dense
	out.Mul(R, P)
	copy(m.X, out.RawRowView(0))
	copy(m.Y, out.RawRowView(1))
	copy(m.Z, out.RawRowView(2))
}
