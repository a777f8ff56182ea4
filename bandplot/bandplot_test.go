package bandplot

import (
	"os"
	"path/filepath"
	"testing"

	vasp "github.com/rmera/govasp"
)

func TestBandPlot(Te *testing.T) {
	D, err := vasp.ReadData("../test")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "bands")
	if err := BandPlot(D, "test bands", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error("no plot written:", err)
	}
}
