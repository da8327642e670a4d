package mesh

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/M6D6M6A/boys-surface/surface"
)

// ErrInvalidConfiguration is wrapped by every parameter validation error.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// BoysSurface holds the validated grid dimensions for one build.
//
// NR is the radial ring count and NPhi the vertex count per ring. NPhi is
// always even so that ring vertex j pairs exactly with its half-turn
// opposite during the Moebius join.
type BoysSurface struct {
	NR, NPhi int

	// Parallelism is the goroutine count for the evaluator pass.
	// Values <= 1 evaluate serially; results are identical either way.
	Parallelism int
}

// NewBoysSurface validates resolution and ratio and returns a builder.
// The angular vertex count is derived as round(ratio*resolution) and must
// be an even integer >= 4; resolution must be >= 2. Validation failures
// return an error wrapping ErrInvalidConfiguration before any allocation.
func NewBoysSurface(resolution int, ratio float64) (bs *BoysSurface, err error) {
	if resolution < 2 {
		err = fmt.Errorf("%w: resolution must be at least 2, got %d",
			ErrInvalidConfiguration, resolution)
		return
	}
	nPhi := ratio * float64(resolution)
	if nPhi < 4 || int(math.Round(nPhi))%2 != 0 {
		err = fmt.Errorf("%w: ratio * resolution must be an even integer >= 4, got %v",
			ErrInvalidConfiguration, nPhi)
		return
	}
	bs = &BoysSurface{
		NR:          resolution,
		NPhi:        int(math.Round(nPhi)),
		Parallelism: 1,
	}
	return
}

// Opposite returns the ring index diametrically opposite j on a ring of
// nPhi vertices. It is an involution: Opposite(Opposite(j)) == j.
func Opposite(j, nPhi int) int {
	return (j + nPhi/2) % nPhi
}

// Build generates the mesh. Vertex 0 is the centre point w=0; vertices
// 1..NPhi are the innermost ring, continuing ring-major outward to r=1.
func (bs *BoysSurface) Build() (m *Mesh) {
	var (
		ring = bs.NPhi
		half = ring / 2
		nr   = bs.NR
	)
	// Parameter grid: nr-1 radii in (0,1] (the r=0 sample is dropped and
	// handled as the single centre vertex below), ring angles in [0,2pi)
	// with no wrap duplicate since faces close the seam modulo ring.
	w := make([]complex128, (nr-1)*ring)
	for i := 0; i < nr-1; i++ {
		r := float64(i+1) / float64(nr-1)
		for j := 0; j < ring; j++ {
			phi := 2 * math.Pi * float64(j) / float64(ring)
			w[i*ring+j] = cmplx.Rect(r, phi)
		}
	}
	gx, gy, gz := surface.EvaluateParallel(w, bs.Parallelism)

	m = &Mesh{
		X: make([]float64, 1, 1+len(w)),
		Y: make([]float64, 1, 1+len(w)),
		Z: make([]float64, 1, 1+len(w)),
	}
	m.X[0], m.Y[0], m.Z[0] = surface.EvaluatePoint(0)
	m.X = append(m.X, gx...)
	m.Y = append(m.Y, gy...)
	m.Z = append(m.Z, gz...)

	var (
		centre         = 0
		firstRingStart = 1
		outerRingStart = firstRingStart + (nr-2)*ring
	)
	faces := make([][3]int, 0, 2*(nr-1)*ring+ring)

	// Radial strips: split each grid cell quad into two triangles. The
	// outermost ring is excluded here, the Moebius join closes it.
	for i := 0; i < nr-2; i++ {
		inner := firstRingStart + i*ring
		outer := inner + ring
		for j := 0; j < ring; j++ {
			a := inner + j
			b := outer + j
			c := outer + (j+1)%ring
			d := inner + (j+1)%ring
			faces = append(faces, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	// Moebius join: glue the outer ring to itself with a half-turn twist,
	// identifying (r=1, phi) with (r=1, phi+pi). The (an, b, a), (an, bn, b)
	// orientation keeps the twisted strip consistently wound.
	for j := 0; j < ring; j++ {
		a := outerRingStart + j
		an := outerRingStart + (j+1)%ring
		b := outerRingStart + Opposite(j, ring)
		bn := outerRingStart + (j+half+1)%ring
		faces = append(faces, [3]int{an, b, a}, [3]int{an, bn, b})
	}

	// Central fan: close the hole at w=0.
	for j := 0; j < ring; j++ {
		v2 := firstRingStart + j
		v3 := firstRingStart + (j+1)%ring
		faces = append(faces, [3]int{centre, v3, v2})
	}

	m.Faces = faces
	m.NumVertices = len(m.X)
	m.NumFaces = len(faces)
	return
}
