package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Bucket sizes balance to within one item and sum to the full range
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{1: 8}, getHisto(8, 8))
		assert.Equal(t, map[int]int{16: 8}, getHisto(128, 8))
		assert.Equal(t, map[int]int{16: 3, 17: 5}, getHisto(133, 8))
		for n := 8; n < 4096; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 8)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1]))
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Buckets are contiguous and cover [0, MaxIndex)
		pm := NewPartitionMap(4, 103)
		last := 0
		for np := 0; np < pm.ParallelDegree; np++ {
			kMin, kMax := pm.GetBucketRange(np)
			assert.Equal(t, last, kMin)
			assert.True(t, kMax > kMin)
			last = kMax
		}
		assert.Equal(t, pm.MaxIndex, last)
	}
}
