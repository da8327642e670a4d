package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterValidation(t *testing.T) {
	{ // resolution below 2 is rejected
		_, err := NewBoysSurface(1, 2.0)
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
	{ // ratio*resolution odd or below 4 is rejected
		_, err := NewBoysSurface(10, 0.3) // n_phi = 3
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		_, err = NewBoysSurface(5, 1.0) // n_phi = 5, odd
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
	{ // valid combinations pass and record derived dimensions
		bs, err := NewBoysSurface(10, 1.0)
		assert.NoError(t, err)
		assert.Equal(t, 10, bs.NR)
		assert.Equal(t, 10, bs.NPhi)

		bs, err = NewBoysSurface(64, 2.0)
		assert.NoError(t, err)
		assert.Equal(t, 128, bs.NPhi)
	}
}

func TestOpposite(t *testing.T) {
	for _, nPhi := range []int{4, 6, 10, 128} {
		half := nPhi / 2
		for j := 0; j < nPhi; j++ {
			opp := Opposite(j, nPhi)
			assert.Equal(t, (j+half)%nPhi, opp)
			assert.NotEqual(t, j, opp)
			// Involution: pairing twice returns to the start
			assert.Equal(t, j, Opposite(opp, nPhi))
		}
	}
}

func TestBuildTopology(t *testing.T) {
	cases := []struct {
		resolution int
		ratio      float64
	}{
		{4, 1.5}, // the 19-vertex / 42-face example
		{2, 2.0}, // minimal: no radial strips at all
		{8, 2.0},
		{16, 1.0},
	}
	for _, tc := range cases {
		bs, err := NewBoysSurface(tc.resolution, tc.ratio)
		assert.NoError(t, err)
		m := bs.Build()
		var (
			nr   = bs.NR
			nPhi = bs.NPhi
		)
		{ // Count formulae
			assert.Equal(t, 1+(nr-1)*nPhi, m.NumVertices)
			assert.Equal(t, 2*(nr-1)*nPhi+nPhi, m.NumFaces)
			assert.Equal(t, m.NumVertices, len(m.X))
			assert.Equal(t, m.NumVertices, len(m.Y))
			assert.Equal(t, m.NumVertices, len(m.Z))
			assert.Equal(t, m.NumFaces, len(m.Faces))
		}
		{ // All face indices in range and pairwise distinct
			for _, f := range m.Faces {
				for _, v := range f {
					assert.True(t, v >= 0 && v < m.NumVertices)
				}
				assert.NotEqual(t, f[0], f[1])
				assert.NotEqual(t, f[1], f[2])
				assert.NotEqual(t, f[0], f[2])
			}
		}
		{ // Centre vertex sits at index 0 with its analytic position
			assert.Equal(t, [3]float64{0, 0, -2}, m.Vertex(0))
		}
		{ // Moebius faces pair each outer-ring vertex with its half-turn
			// opposite: faces 2*(nr-2)*nPhi .. +2*nPhi reference only the
			// outer ring, and each first triangle contains both j and
			// Opposite(j)
			outerStart := 1 + (nr-2)*nPhi
			mStart := 2 * (nr - 2) * nPhi
			for j := 0; j < nPhi; j++ {
				f := m.Faces[mStart+2*j]
				for _, v := range f {
					assert.True(t, v >= outerStart && v < outerStart+nPhi)
				}
				assert.Contains(t, f, outerStart+j)
				assert.Contains(t, f, outerStart+Opposite(j, nPhi))
			}
		}
	}
}

func TestBuildExampleScenario(t *testing.T) {
	// n_r=4, n_phi=6: 1 + 3*6 = 19 vertices; 24 + 12 + 6 = 42 faces
	bs, err := NewBoysSurface(4, 1.5)
	assert.NoError(t, err)
	assert.Equal(t, 6, bs.NPhi)
	m := bs.Build()
	assert.Equal(t, 19, m.NumVertices)
	assert.Equal(t, 42, m.NumFaces)
}

func TestBuildGeometry(t *testing.T) {
	bs, err := NewBoysSurface(12, 2.0)
	assert.NoError(t, err)
	m := bs.Build()
	{ // All coordinates finite
		for i := 0; i < m.NumVertices; i++ {
			v := m.Vertex(i)
			for _, c := range v {
				assert.False(t, math.IsNaN(c) || math.IsInf(c, 0))
			}
		}
	}
	{ // Bounds enclose every vertex
		min, max := m.Bounds()
		for i := 0; i < m.NumVertices; i++ {
			v := m.Vertex(i)
			for d := 0; d < 3; d++ {
				assert.True(t, v[d] >= min[d] && v[d] <= max[d])
			}
		}
	}
	{ // Parallel evaluation builds the identical mesh
		bsp, _ := NewBoysSurface(12, 2.0)
		bsp.Parallelism = 4
		mp := bsp.Build()
		assert.Equal(t, m.X, mp.X)
		assert.Equal(t, m.Y, mp.Y)
		assert.Equal(t, m.Z, mp.Z)
		assert.Equal(t, m.Faces, mp.Faces)
	}
}
