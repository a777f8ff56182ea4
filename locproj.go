/*
 * locproj.go, part of govasp.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package vasp

import (
	"math"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// The 16 orbital labels VASP can print in a LOCPROJ header, in order. The
// index of a label encodes the (l, m) pair: l is the integer square root of
// the index, m the remainder after subtracting l*l.
var orbLabels = []string{"s", "py", "pz", "px", "dxy", "dyz", "dz2", "dxz", "dx2-y2",
	"fy(3x2-y2)", "fxyz", "fyz2", "fz3", "fxz2", "fz(x2-y2)", "fx(x2-3y2)"}

func lmToLM(lm int) (int, int) {
	l := int(math.Sqrt(float64(lm)))
	return l, lm - l*l
}

var isiteRE = regexp.MustCompile(`^ *ISITE`)

// Projector is the per-projector metadata from the LOCPROJ header: which ion
// the local orbital sits on and its angular character. In non-collinear
// calculations M is re-encoded to tell apart the two spinor components of
// consecutive records (2m for the first, 2m+1 for the second).
type Projector struct {
	ISite int    //1-based ion index
	Label string //orbital label as printed by VASP, e.g. "dxy"
	L     int    //orbital angular momentum
	M     int    //magnetic quantum number, possibly re-encoded (see above)
}

// Locproj holds everything read from a LOCPROJ file (VASP >= 5.4.2): the
// projector metadata, the complex projector coefficients, and the band
// eigenvalues and occupations the data block repeats for every record.
//
// Two derived spin counts coexist and are deliberately kept apart: NSpin is
// the spin dimension of the projector array (1 except for collinear
// spin-polarized runs), while NSpinBand is the spin dimension of Eigs and
// Ferw (2 exactly when the raw channel count is 2, else 1).
type Locproj struct {
	NCDij     int  //raw channel count from the header, before any folding
	NSpin     int  //spin channels of Plo
	NSpinBand int  //spin channels of Eigs and Ferw
	NCFlag    bool //non-collinear calculation (NCDij == 4)
	NKTot     int
	NBand     int
	NProj     int
	EFermi    float64
	HasEFermi bool //false when the header carries no parsable Fermi energy
	Projs     []Projector
	Eigs      []*mat.Dense  //per band spin, nktot x nband
	Ferw      []*mat.Dense  //occupations, same shape as Eigs
	Plo       [][]*mat.CDense //[projector][spin], each nktot x nband
}

// LocprojRead parses the LOCPROJ file given by filename. The header line
// fixes every array dimension upfront; each record of the data block then
// declares its own (spin, k-point, band) indices, which must match the
// reading position exactly. Any mismatch means the file is corrupted or from
// an incompatible VASP version, and no recovery is attempted.
func LocprojRead(filename string) (*Locproj, error) {
	src, err := OpenLines(filename)
	if err != nil {
		return nil, errDecorate(err, "LocprojRead")
	}
	defer src.Close()
	P := new(Locproj)
	line, err := src.MustNext()
	if err != nil {
		return nil, errDecorate(err, "LocprojRead")
	}
	//Only the header line may carry a '#' comment.
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	toks := strings.Fields(line)
	if len(toks) < 4 {
		return nil, parseError(WrongFormat, filename, src.LineNumber(), "header with %d fields, need 4", len(toks))
	}
	dims, err := src.parseInts(toks[:4])
	if err != nil {
		return nil, errDecorate(err, "LocprojRead")
	}
	P.NCDij, P.NKTot, P.NBand, P.NProj = dims[0], dims[1], dims[2], dims[3]
	//VASP 6 writes NCDij = 4 for non-collinear runs; the projector array
	//then has a single spin channel and consecutive pairs of projector
	//records are the two spinor components of one spatial orbital.
	P.NCFlag = P.NCDij == 4
	if P.NCDij < 4 {
		P.NSpin = P.NCDij
	} else {
		P.NSpin = 1
	}
	if P.NCDij == 2 {
		P.NSpinBand = 2
	} else {
		P.NSpinBand = 1
	}
	if len(toks) >= 5 {
		if efermi, err := src.parseFloat(toks[4]); err == nil {
			P.EFermi = efermi
			P.HasEFermi = true
		}
	}
	if err := P.readHeaderBlock(src); err != nil {
		return nil, errDecorate(err, "LocprojRead")
	}
	if err := P.readDataBlock(src); err != nil {
		return nil, errDecorate(err, "LocprojRead")
	}
	return P, nil
}

// readHeaderBlock consumes the ISITE metadata lines. The block starts at the
// first line matching the ISITE marker and ends at the first that does not;
// it must contain exactly NProj records.
func (P *Locproj) readHeaderBlock(src *LineSource) error {
	line := ""
	for !isiteRE.MatchString(line) {
		var err error
		line, err = src.MustNext()
		if err != nil {
			return err
		}
	}
	for isiteRE.MatchString(line) {
		if len(P.Projs) == P.NProj {
			return parseError(InconsistentRecord, src.Name(), src.LineNumber(),
				"more than the %d declared projectors in the header", P.NProj)
		}
		var pr Projector
		parts := strings.Split(line, ":")
		if len(parts) < 2 {
			return parseError(WrongFormat, src.Name(), src.LineNumber(), "malformed ISITE line")
		}
		sitetoks := strings.Fields(parts[1])
		if len(sitetoks) < 1 {
			return parseError(WrongFormat, src.Name(), src.LineNumber(), "malformed ISITE line")
		}
		var err error
		if pr.ISite, err = src.parseInt(sitetoks[0]); err != nil {
			return err
		}
		pr.Label = strings.TrimSpace(parts[len(parts)-1])
		lm := -1
		for i, lab := range orbLabels {
			if lab == pr.Label {
				lm = i
				break
			}
		}
		if lm < 0 {
			return parseError(UnrecognizedOrbital, src.Name(), src.LineNumber(), "%q", pr.Label)
		}
		pr.L, pr.M = lmToLM(lm)
		if P.NCFlag {
			if len(P.Projs)%2 == 0 {
				pr.M = 2 * pr.M
			} else {
				pr.M = 2*pr.M + 1
			}
		}
		P.Projs = append(P.Projs, pr)
		if line, err = src.Next(); err != nil {
			if !IsEOF(err) {
				return err
			}
			break //the data block check will catch the truncation
		}
	}
	if len(P.Projs) != P.NProj {
		return parseError(InconsistentRecord, src.Name(), src.LineNumber(),
			"%d projectors in the header, %d declared", len(P.Projs), P.NProj)
	}
	return nil
}

// readDataBlock consumes the per-(spin, k-point, band) records with the
// actual projector coefficients.
func (P *Locproj) readDataBlock(src *LineSource) error {
	P.Eigs = make([]*mat.Dense, P.NSpinBand)
	P.Ferw = make([]*mat.Dense, P.NSpinBand)
	for is := 0; is < P.NSpinBand; is++ {
		P.Eigs[is] = mat.NewDense(P.NKTot, P.NBand, nil)
		P.Ferw[is] = mat.NewDense(P.NKTot, P.NBand, nil)
	}
	P.Plo = make([][]*mat.CDense, P.NProj)
	for ip := range P.Plo {
		P.Plo[ip] = make([]*mat.CDense, P.NSpin)
		for is := 0; is < P.NSpin; is++ {
			P.Plo[ip][is] = mat.NewCDense(P.NKTot, P.NBand, nil)
		}
	}
	for ispin := 0; ispin < P.NSpin; ispin++ {
		for ik := 0; ik < P.NKTot; ik++ {
			for ib := 0; ib < P.NBand; ib++ {
				line, err := src.NextNonBlank()
				if err != nil {
					return err
				}
				toks := strings.Fields(line)
				if !strings.HasPrefix(toks[0], "orbital") || len(toks) < 6 {
					return parseError(WrongFormat, src.Name(), src.LineNumber(), "expected an orbital record, got %q", line)
				}
				idx, err := src.parseInts(toks[1:4])
				if err != nil {
					return err
				}
				if idx[0] != ispin+1 || idx[1] != ik+1 || idx[2] != ib+1 {
					return parseError(InconsistentRecord, src.Name(), src.LineNumber(),
						"record declares (spin %d, k %d, band %d), expected (%d, %d, %d)",
						idx[0], idx[1], idx[2], ispin+1, ik+1, ib+1)
				}
				eig, err := src.parseFloat(toks[4])
				if err != nil {
					return err
				}
				ferw, err := src.parseFloat(toks[5])
				if err != nil {
					return err
				}
				P.Eigs[ispin].Set(ik, ib, eig)
				P.Ferw[ispin].Set(ik, ib, ferw)
				for ip := 0; ip < P.NProj; ip++ {
					line, err = src.MustNext()
					if err != nil {
						return err
					}
					toks = strings.Fields(line)
					if len(toks) < 3 {
						return parseError(WrongFormat, src.Name(), src.LineNumber(), "coefficient line with %d fields, need 3", len(toks))
					}
					re, err := src.parseFloat(toks[1])
					if err != nil {
						return err
					}
					im, err := src.parseFloat(toks[2])
					if err != nil {
						return err
					}
					P.Plo[ip][ispin].Set(ik, ib, complex(re, im))
				}
			}
		}
	}
	return nil
}
