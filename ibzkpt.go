/*
 * ibzkpt.go, part of govasp.
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

// Kpoints holds the k-point set of the irreducible Brillouin zone read from
// IBZKPT, and, when the file carries them, the tetrahedra used for BZ
// integration. With no tetrahedron section NTet is 0 and ITet is nil.
type Kpoints struct {
	NKTot  int
	Kpts   *mat.Dense //nktot x 3, fractional coordinates
	KWghts []float64  //normalized so they add up to 1
	NTet   int
	ITet   [][5]int //multiplicity followed by the 4 vertex k-indices
	VolT   float64  //common tetrahedron volume
}

// KpointsRead parses the IBZKPT file given by filename. The weights are
// divided by the number of k-points, which is the file's own convention for
// making them add up to 1. The tetrahedron section is optional: running out
// of input anywhere inside it simply yields NTet = 0. This is the only place
// in the package where a short file is not an error.
func KpointsRead(filename string) (*Kpoints, error) {
	src, err := OpenLines(filename)
	if err != nil {
		return nil, errDecorate(err, "KpointsRead")
	}
	defer src.Close()
	K := new(Kpoints)
	if _, err = src.MustNext(); err != nil { //comment line
		return nil, errDecorate(err, "KpointsRead")
	}
	line, err := src.MustNext()
	if err != nil {
		return nil, errDecorate(err, "KpointsRead")
	}
	toks := strings.Fields(line)
	if len(toks) < 1 {
		return nil, parseError(WrongFormat, filename, src.LineNumber(), "missing k-point count")
	}
	K.NKTot, err = src.parseInt(toks[0])
	if err != nil {
		return nil, errDecorate(err, "KpointsRead")
	}
	if _, err = src.MustNext(); err != nil { //mode comment line
		return nil, errDecorate(err, "KpointsRead")
	}
	K.Kpts = mat.NewDense(K.NKTot, 3, nil)
	K.KWghts = make([]float64, K.NKTot)
	for ik := 0; ik < K.NKTot; ik++ {
		line, err = src.MustNext()
		if err != nil {
			return nil, errDecorate(err, "KpointsRead")
		}
		toks = strings.Fields(line)
		if len(toks) < 4 {
			return nil, parseError(WrongFormat, filename, src.LineNumber(), "k-point line with %d fields, need 4", len(toks))
		}
		coord, err := src.parseFloats(toks[:3])
		if err != nil {
			return nil, errDecorate(err, "KpointsRead")
		}
		K.Kpts.SetRow(ik, coord)
		K.KWghts[ik], err = src.parseFloat(toks[3])
		if err != nil {
			return nil, errDecorate(err, "KpointsRead")
		}
	}
	for ik := range K.KWghts {
		K.KWghts[ik] /= float64(K.NKTot)
	}
	//From here on everything is optional.
	if _, err = src.Next(); err != nil { //"Tetrahedra" label
		return K, noTetrahedra(K, err)
	}
	line, err = src.Next()
	if err != nil {
		return K, noTetrahedra(K, err)
	}
	toks = strings.Fields(line)
	if len(toks) < 2 {
		return nil, parseError(WrongFormat, filename, src.LineNumber(), "tetrahedron count line with %d fields, need 2", len(toks))
	}
	if K.NTet, err = src.parseInt(toks[0]); err != nil {
		return nil, errDecorate(err, "KpointsRead")
	}
	if K.VolT, err = src.parseFloat(toks[1]); err != nil {
		return nil, errDecorate(err, "KpointsRead")
	}
	K.ITet = make([][5]int, K.NTet)
	for it := 0; it < K.NTet; it++ {
		line, err = src.Next()
		if err != nil {
			return K, noTetrahedra(K, err)
		}
		toks = strings.Fields(line)
		if len(toks) < 5 {
			return nil, parseError(WrongFormat, filename, src.LineNumber(), "tetrahedron line with %d fields, need 5", len(toks))
		}
		v, err := src.parseInts(toks[:5])
		if err != nil {
			return nil, errDecorate(err, "KpointsRead")
		}
		copy(K.ITet[it][:], v)
	}
	return K, nil
}

// noTetrahedra resets K to its tetrahedron-free state if err was a plain end
// of input, and passes err through otherwise.
func noTetrahedra(K *Kpoints, err error) error {
	if !IsEOF(err) {
		return errDecorate(err, "KpointsRead")
	}
	K.NTet = 0
	K.ITet = nil
	return nil
}
