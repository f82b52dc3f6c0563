package nn

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// normalVector returns n independent draws from N(0, 1).
//
// src selects the random source; a nil source falls back to the
// global generator. Passing a fixed-seed source makes initialization
// reproducible, which the tests rely on.
func normalVector(n int, src rand.Source) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	v := make([]float64, n)
	for i := range v {
		v[i] = dist.Rand()
	}
	return v
}
