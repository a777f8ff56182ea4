package vasp

import (
	"math"
	"testing"
)

func TestKpoints(Te *testing.T) {
	K, err := KpointsRead("test/IBZKPT")
	if err != nil {
		Te.Fatal(err)
	}
	if K.NKTot != 2 {
		Te.Error("wrong k-point count:", K.NKTot)
	}
	sum := 0.0
	for _, w := range K.KWghts {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-12 {
		Te.Error("weights don't add up to 1:", K.KWghts)
	}
	if K.Kpts.At(1, 0) != 0.5 {
		Te.Error("wrong k-point coordinates:", K.Kpts)
	}
	if K.NTet != 2 || K.VolT != 0.25 {
		Te.Error("wrong tetrahedron header:", K.NTet, K.VolT)
	}
	if K.ITet[0] != [5]int{6, 1, 1, 2, 2} || K.ITet[1] != [5]int{2, 1, 2, 2, 2} {
		Te.Error("wrong tetrahedra:", K.ITet)
	}
}

// A file that just stops after the k-point list is fine: tetrahedra are
// optional.
func TestKpointsNoTetrahedra(Te *testing.T) {
	K, err := KpointsRead("test/IBZKPT_notet")
	if err != nil {
		Te.Fatal(err)
	}
	if K.NTet != 0 || K.ITet != nil {
		Te.Error("expected no tetrahedra:", K.NTet, K.ITet)
	}
	sum := 0.0
	for _, w := range K.KWghts {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-12 {
		Te.Error("weights don't add up to 1:", K.KWghts)
	}
}
