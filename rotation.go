package helio

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	o = []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
	return
}

// m33Mul returns a*b for two 3x3 matrices.
func m33Mul(a, b *mat64.Dense) *mat64.Dense {
	var out mat64.Dense
	out.Mul(a, b)
	return &out
}

// m33T returns the transpose of a 3x3 matrix as a new Dense.
func m33T(a *mat64.Dense) *mat64.Dense {
	var out mat64.Dense
	out.Clone(a.T())
	return &out
}
