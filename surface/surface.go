// Package surface evaluates the Bryant-Kusner immersion of Boy's surface.
// The map takes a complex parameter w with |w| <= 1 to a point in R3; it is
// the Willmore-energy-minimizing parametrization of the real projective
// plane. Evaluation is a total function over the closed unit disk.
package surface

import (
	"math"
	"sync"

	"github.com/M6D6M6A/boys-surface/utils"
)

var sqrt5 = complex(math.Sqrt(5), 0)

// EvaluatePoint maps a single complex parameter w to Cartesian coordinates.
//
// The auxiliary functions g1, g2, g3 share the denominator
// w^6 + sqrt(5)*w^3 - 1, which has no roots inside the closed unit disk,
// so the map is finite everywhere on |w| <= 1. In particular w = 0 yields
// exactly (0, 0, -2).
func EvaluatePoint(w complex128) (x, y, z float64) {
	var (
		w3    = w * w * w
		w4    = w3 * w
		z6    = w3 * w3
		denom = z6 + sqrt5*w3 - 1
	)
	g1 := -1.5 * imag(w*(1-w4)/denom)
	g2 := -1.5 * real(w*(1+w4)/denom)
	g3 := imag((1+z6)/denom) - 0.5
	g := g1*g1 + g2*g2 + g3*g3
	x, y, z = g1/g, g2/g, g3/g
	return
}

// Evaluate maps a batch of complex parameters to coordinate slices of
// matching length.
func Evaluate(w []complex128) (x, y, z []float64) {
	x = make([]float64, len(w))
	y = make([]float64, len(w))
	z = make([]float64, len(w))
	for i, wi := range w {
		x[i], y[i], z[i] = EvaluatePoint(wi)
	}
	return
}

// EvaluateParallel is Evaluate split across nPar goroutines. Every grid
// point is independent, so the result is identical to the serial path.
func EvaluateParallel(w []complex128, nPar int) (x, y, z []float64) {
	if nPar <= 1 || len(w) < nPar {
		return Evaluate(w)
	}
	var (
		pm = utils.NewPartitionMap(nPar, len(w))
		wg = sync.WaitGroup{}
	)
	x = make([]float64, len(w))
	y = make([]float64, len(w))
	z = make([]float64, len(w))
	for np := 0; np < nPar; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			for i := kMin; i < kMax; i++ {
				x[i], y[i], z[i] = EvaluatePoint(w[i])
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
	return
}
