/*
 * eigenval.go, part of govasp.
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
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Eigenval holds the Kohn-Sham eigenvalues and occupations from an EIGENVAL
// file. The file duplicates the k-point list with weights; they are kept so
// callers can cross-check them against the IBZKPT ones.
type Eigenval struct {
	NQ     int //number of ions
	ISpin  int //spin channels, 1 or 2
	NElect int
	NKTot  int
	NBand  int
	Kpts   *mat.Dense
	KWghts []float64
	Eigs   []*mat.Dense //one nktot x nband matrix per spin channel
	Ferw   []*mat.Dense //occupations, same shape as Eigs
}

// EigenvalRead parses the EIGENVAL file given by filename. Only the ion and
// spin counts of the first preamble line and the electron/k-point/band
// counts of the sixth are used; the rest of the preamble is skipped. Each
// band line must carry the band index plus one eigenvalue and one occupation
// per spin channel; anything else marks a file from before the format change
// and is a fatal error.
func EigenvalRead(filename string) (*Eigenval, error) {
	src, err := OpenLines(filename)
	if err != nil {
		return nil, errDecorate(err, "EigenvalRead")
	}
	defer src.Close()
	E := new(Eigenval)
	line, err := src.MustNext()
	if err != nil {
		return nil, errDecorate(err, "EigenvalRead")
	}
	toks := strings.Fields(line)
	if len(toks) < 4 {
		return nil, parseError(WrongFormat, filename, src.LineNumber(), "preamble line with %d fields, need 4", len(toks))
	}
	if E.NQ, err = src.parseInt(toks[0]); err != nil {
		return nil, errDecorate(err, "EigenvalRead")
	}
	if E.ISpin, err = src.parseInt(toks[3]); err != nil {
		return nil, errDecorate(err, "EigenvalRead")
	}
	//Lines 2 to 5 (cell volume, temperature, ...) are required but unused.
	for i := 0; i < 4; i++ {
		if _, err = src.MustNext(); err != nil {
			return nil, errDecorate(err, "EigenvalRead")
		}
	}
	line, err = src.MustNext()
	if err != nil {
		return nil, errDecorate(err, "EigenvalRead")
	}
	toks = strings.Fields(line)
	if len(toks) < 3 {
		return nil, parseError(WrongFormat, filename, src.LineNumber(), "counts line with %d fields, need 3", len(toks))
	}
	if E.NElect, err = src.parseInt(toks[0]); err != nil {
		return nil, errDecorate(err, "EigenvalRead")
	}
	if E.NKTot, err = src.parseInt(toks[1]); err != nil {
		return nil, errDecorate(err, "EigenvalRead")
	}
	if E.NBand, err = src.parseInt(toks[2]); err != nil {
		return nil, errDecorate(err, "EigenvalRead")
	}
	E.Kpts = mat.NewDense(E.NKTot, 3, nil)
	E.KWghts = make([]float64, E.NKTot)
	E.Eigs = make([]*mat.Dense, E.ISpin)
	E.Ferw = make([]*mat.Dense, E.ISpin)
	for is := 0; is < E.ISpin; is++ {
		E.Eigs[is] = mat.NewDense(E.NKTot, E.NBand, nil)
		E.Ferw[is] = mat.NewDense(E.NKTot, E.NBand, nil)
	}
	for ik := 0; ik < E.NKTot; ik++ {
		if _, err = src.MustNext(); err != nil { //blank separator
			return nil, errDecorate(err, "EigenvalRead")
		}
		line, err = src.MustNext()
		if err != nil {
			return nil, errDecorate(err, "EigenvalRead")
		}
		toks = strings.Fields(line)
		if len(toks) < 4 {
			return nil, parseError(WrongFormat, filename, src.LineNumber(), "k-point line with %d fields, need 4", len(toks))
		}
		kp, err := src.parseFloats(toks[:4])
		if err != nil {
			return nil, errDecorate(err, "EigenvalRead")
		}
		E.Kpts.SetRow(ik, kp[:3])
		E.KWghts[ik] = kp[3]
		for ib := 0; ib < E.NBand; ib++ {
			line, err = src.MustNext()
			if err != nil {
				return nil, errDecorate(err, "EigenvalRead")
			}
			toks = strings.Fields(line)
			if len(toks) != 2*E.ISpin+1 {
				return nil, parseError(WrongFormat, filename, src.LineNumber(),
					"band line with %d fields, need %d; EIGENVAL probably from an old VASP version", len(toks), 2*E.ISpin+1)
			}
			vals, err := src.parseFloats(toks[1:])
			if err != nil {
				return nil, errDecorate(err, "EigenvalRead")
			}
			for is := 0; is < E.ISpin; is++ {
				E.Eigs[is].Set(ik, ib, vals[is])
				E.Ferw[is].Set(ik, ib, vals[E.ISpin+is])
			}
		}
	}
	return E, nil
}
