package vasp

import (
	"testing"
)

func TestReadData(Te *testing.T) {
	D, err := ReadData("test")
	if err != nil {
		Te.Fatal(err)
	}
	if D.Plocar == nil || D.Poscar == nil || D.Kpoints == nil || D.Eigenval == nil || D.Doscar == nil {
		Te.Fatal("some file was not read")
	}
	efermi, ok := D.EFermi()
	if !ok || efermi != 5.6423 {
		Te.Error("wrong Fermi level:", efermi, ok)
	}
	if len(D.Warnings) != 0 {
		Te.Error("unexpected warnings:", D.Warnings)
	}
}

// Without EIGENVAL and DOSCAR the ingestion still succeeds: eigenvalues stay
// on Plocar and the Fermi level comes from the LOCPROJ header, verbatim.
func TestFallbackToLocproj(Te *testing.T) {
	var seen []Warning
	opts := DefaultOptions()
	opts.Reporter(func(w Warning) { seen = append(seen, w) })
	D, err := New("test/nodoscar", opts)
	if err != nil {
		Te.Fatal(err)
	}
	if D.Eigenval != nil {
		Te.Error("EIGENVAL should be missing here")
	}
	efermi, ok := D.EFermi()
	if !ok || efermi != D.Plocar.EFermi || efermi != 5.6423 {
		Te.Error("Fermi level not adopted from LOCPROJ:", efermi, ok)
	}
	if len(D.Warnings) != 2 || len(seen) != len(D.Warnings) {
		Te.Error("wrong diagnostics:", D.Warnings, seen)
	}
}

// No DOSCAR and no Fermi level in LOCPROJ either: with one required, the
// whole ingestion has to fail.
func TestFermiUnobtainable(Te *testing.T) {
	_, err := New("test/nofermi", nil)
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind() != FermiUnobtainable {
		Te.Error("expected a FermiUnobtainable error, got:", err)
	}
}

// Same directory, Fermi level not required: the LOCPROJ spin count stands in
// for the channel count DOSCAR would have provided.
func TestFermiNotRequired(Te *testing.T) {
	opts := DefaultOptions()
	opts.EFermiRequired(false)
	D, err := New("test/nofermi", opts)
	if err != nil {
		Te.Fatal(err)
	}
	if _, ok := D.EFermi(); ok {
		Te.Error("there should be no Fermi level at all")
	}
	if D.Doscar.NCDij != D.Plocar.NSpin {
		Te.Error("channel-count stopgap not applied:", D.Doscar.NCDij)
	}
}

func TestDeferredRead(Te *testing.T) {
	opts := DefaultOptions()
	opts.ReadAll(false)
	D, err := New("test", opts)
	if err != nil {
		Te.Fatal(err)
	}
	if D.Plocar != nil {
		Te.Fatal("nothing should have been read yet")
	}
	if err := D.Read(); err != nil {
		Te.Fatal(err)
	}
	if D.Plocar == nil || D.Plocar.NProj != 2 {
		Te.Error("deferred read did not ingest the directory")
	}
}
