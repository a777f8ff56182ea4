package vasp

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestPoscar(Te *testing.T) {
	P, err := PoscarRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	if len(P.ElNames) != 2 || P.ElNames[0] != "Fe" || P.ElNames[1] != "O" {
		Te.Error("wrong species:", P.ElNames)
	}
	if P.NIons[0] != 2 || P.NIons[1] != 4 || P.NQ != 6 {
		Te.Error("wrong ion counts:", P.NIons, P.NQ)
	}
	if P.ABrav.At(0, 0) != 4.0 || P.ABrav.At(1, 2) != 0.0 {
		Te.Error("wrong lattice:", P.ABrav)
	}
	//reciprocal of a 4 Angstrom cube is 0.25 on the diagonal
	if math.Abs(P.KptBasis.At(2, 2)-0.25) > 1e-12 {
		Te.Error("wrong reciprocal basis:", P.KptBasis)
	}
	total := 0
	for _, q := range P.QTypes {
		r, _ := q.Dims()
		total += r
	}
	if total != P.NQ {
		Te.Error("coordinate blocks don't add up to the ion count:", total, P.NQ)
	}
	if len(P.TypeOf) != 6 || P.TypeOf[1] != 0 || P.TypeOf[2] != 1 {
		Te.Error("wrong ion-to-species map:", P.TypeOf)
	}
	if P.QTypes[1].At(0, 0) != 0.25 {
		Te.Error("wrong O coordinates:", P.QTypes[1])
	}
}

// The old VASP 4 variant: no element names, a negative (volume) scale
// factor, and cartesian positions.
func TestPoscarOldFormat(Te *testing.T) {
	P, err := PoscarRead("test/POSCAR_old")
	if err != nil {
		Te.Fatal(err)
	}
	if P.ElNames[0] != "El0" || P.ElNames[1] != "El1" {
		Te.Error("wrong made-up species names:", P.ElNames)
	}
	//scale -8.0 on a unit-determinant lattice means each axis gets
	//the cube root of 8
	if math.Abs(P.ABrav.At(0, 0)-2.0) > 1e-12 {
		Te.Error("volume scale not resolved:", P.ABrav)
	}
	//the second Fe sits at cartesian (1,1,1) in a 2 Angstrom cube
	for j := 0; j < 3; j++ {
		if math.Abs(P.QTypes[0].At(1, j)-0.5) > 1e-12 {
			Te.Error("cartesian positions not converted:", P.QTypes[0])
		}
	}
}

func TestPoscarTruncated(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "POSCAR")
	short := "title\n1.0\n 1.0 0.0 0.0\n 0.0 1.0 0.0\n"
	if err := os.WriteFile(name, []byte(short), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err := PoscarRead(name)
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind() != UnexpectedEOF {
		Te.Error("expected an UnexpectedEOF error, got:", err)
	}
}
