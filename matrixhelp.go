package vasp

//A bunch of unexported helpers for the little 3x3 algebra the readers need.

import (
	"gonum.org/v1/gonum/mat"
)

//det3 returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func det3(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic("det3 only works on 3x3 matrices")
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//reciprocal returns the reciprocal basis of the given direct lattice, in
//units of 2*pi, i.e. the inverse of its transpose.
func reciprocal(a *mat.Dense) (*mat.Dense, error) {
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(a.T()); err != nil {
		return nil, err
	}
	return inv, nil
}

//matvec3 multiplies the 3x3 matrix A by the length-3 vector v.
func matvec3(A *mat.Dense, v []float64) []float64 {
	ret := make([]float64, 3)
	for i := 0; i < 3; i++ {
		ret[i] = A.At(i, 0)*v[0] + A.At(i, 1)*v[1] + A.At(i, 2)*v[2]
	}
	return ret
}
