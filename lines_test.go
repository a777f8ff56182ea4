package vasp

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func gzipFile(Te *testing.T, src, dst string) {
	data, err := os.ReadFile(src)
	if err != nil {
		Te.Fatal(err)
	}
	f, err := os.Create(dst)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	w := gzip.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
}

func zstdFile(Te *testing.T, src, dst string) {
	data, err := os.ReadFile(src)
	if err != nil {
		Te.Fatal(err)
	}
	f, err := os.Create(dst)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	w, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := w.Write(data); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
}

func TestLineSource(Te *testing.T) {
	src, err := OpenLines("test/DOSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	n := 0
	for {
		_, err := src.Next()
		if err != nil {
			if !IsEOF(err) {
				Te.Fatal(err)
			}
			break
		}
		n++
	}
	if n != 6 || src.LineNumber() != 6 {
		Te.Error("wrong line count:", n, src.LineNumber())
	}
	//once exhausted it stays exhausted
	if _, err := src.Next(); !IsEOF(err) {
		Te.Error("expected EOF again, got:", err)
	}
}

func TestCompressedSources(Te *testing.T) {
	dir := Te.TempDir()
	gz := filepath.Join(dir, "POSCAR.gz")
	gzipFile(Te, "test/POSCAR", gz)
	P, err := PoscarRead(gz)
	if err != nil {
		Te.Fatal(err)
	}
	if P.NQ != 6 {
		Te.Error("gzipped POSCAR read wrong:", P.NQ)
	}
	zst := filepath.Join(dir, "POSCAR.zst")
	zstdFile(Te, "test/POSCAR", zst)
	P, err = PoscarRead(zst)
	if err != nil {
		Te.Fatal(err)
	}
	if P.NQ != 6 {
		Te.Error("zstd POSCAR read wrong:", P.NQ)
	}
}

// A whole working directory of compressed files, found via the NAME.gz
// fallback of Data.path.
func TestCompressedDirectory(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"LOCPROJ", "POSCAR", "IBZKPT", "EIGENVAL", "DOSCAR"} {
		gzipFile(Te, filepath.Join("test", name), filepath.Join(dir, name+".gz"))
	}
	D, err := ReadData(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if D.Plocar.NProj != 2 || D.Poscar.NQ != 6 || D.Kpoints.NKTot != 2 {
		Te.Error("compressed directory read wrong")
	}
}
