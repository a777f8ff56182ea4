package vasp

import (
	"testing"
)

func TestEigenval(Te *testing.T) {
	E, err := EigenvalRead("test/EIGENVAL")
	if err != nil {
		Te.Fatal(err)
	}
	if E.NQ != 6 || E.ISpin != 1 || E.NElect != 48 || E.NKTot != 2 || E.NBand != 3 {
		Te.Error("wrong preamble:", E.NQ, E.ISpin, E.NElect, E.NKTot, E.NBand)
	}
	if E.KWghts[0] != 0.5 || E.Kpts.At(1, 0) != 0.5 {
		Te.Error("wrong duplicated k-point data:", E.KWghts, E.Kpts)
	}
	if E.Eigs[0].At(0, 0) != -5.123456 || E.Eigs[0].At(1, 2) != 7.123456 {
		Te.Error("wrong eigenvalues:", E.Eigs[0])
	}
	if E.Ferw[0].At(0, 2) != 0.0 || E.Ferw[0].At(1, 0) != 1.0 {
		Te.Error("wrong occupations:", E.Ferw[0])
	}
}

// With 2 spin channels every band line needs 5 fields; fewer marks a file
// written before the format change and has to be fatal.
func TestEigenvalShortBandLine(Te *testing.T) {
	_, err := EigenvalRead("test/EIGENVAL_spin2")
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind() != WrongFormat {
		Te.Error("expected a WrongFormat error, got:", err)
	}
}
