/*
 * poscar.go, part of govasp.
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
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Poscar holds the lattice geometry read from a POSCAR file: the (scaled)
// direct lattice, its reciprocal basis, and the ion positions grouped by
// species, always in fractional coordinates.
type Poscar struct {
	Title    string
	ABrav    *mat.Dense //3x3 direct lattice vectors, one per row, in Angstrom
	KptBasis *mat.Dense //reciprocal basis in units of 2*pi
	ElNames  []string   //one label per species
	NIons    []int      //ions per species, parallel to ElNames
	NTypes   int
	NQ       int          //total number of ions
	QTypes   []*mat.Dense //fractional ion coordinates, one nions x 3 block per species
	TypeOf   []int        //species index for each ion
}

// PoscarRead parses the POSCAR file given by filename. Both the old VASP 4
// convention (no element-name line) and the 5.x one are understood; missing
// element names become "El0", "El1" and so on. Cartesian ion positions are
// converted to fractional on the fly. A negative scale factor is taken as a
// target cell volume, per the format's convention.
func PoscarRead(filename string) (*Poscar, error) {
	src, err := OpenLines(filename)
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}
	defer src.Close()
	P := new(Poscar)
	P.Title, err = src.MustNext()
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}
	//The line after the title is the scale factor, then come the three
	//lattice vectors. Everything from here on may carry '!' or '#' comments.
	line, err := src.MustNext()
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}
	ascale, err := src.parseFloat(stripComment(line))
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}
	P.ABrav = mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		line, err := src.MustNext()
		if err != nil {
			return nil, errDecorate(err, "PoscarRead")
		}
		toks := strings.Fields(stripComment(line))
		if len(toks) != 3 {
			return nil, parseError(WrongFormat, filename, src.LineNumber(), "lattice vector with %d components", len(toks))
		}
		row, err := src.parseFloats(toks)
		if err != nil {
			return nil, errDecorate(err, "PoscarRead")
		}
		P.ABrav.SetRow(i, row)
	}
	//A negative scale is a volume scale; it can only be resolved once the
	//unscaled vectors are known.
	if ascale < 0 {
		ascale = math.Cbrt(-ascale / det3(P.ABrav))
	}
	P.ABrav.Scale(ascale, P.ABrav)
	//Depending on the VASP version there may be an extra line with element
	//names before the ion counts. A trial parse as integers decides.
	line, err = src.MustNext()
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}
	toks := strings.Fields(stripComment(line))
	if nions, err2 := src.parseInts(toks); err2 == nil {
		P.NIons = nions
		for i := range nions {
			P.ElNames = append(P.ElNames, fmt.Sprintf("El%d", i))
		}
	} else {
		P.ElNames = toks
		line, err = src.MustNext()
		if err != nil {
			return nil, errDecorate(err, "PoscarRead")
		}
		P.NIons, err = src.parseInts(strings.Fields(stripComment(line)))
		if err != nil {
			return nil, errDecorate(err, "PoscarRead")
		}
	}
	P.NTypes = len(P.NIons)
	for _, n := range P.NIons {
		P.NQ += n
	}
	//An optional "Selective dynamics" line is skipped if present.
	line, err = src.MustNext()
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}
	sline := stripComment(line)
	if len(sline) > 0 && (sline[0] == 's' || sline[0] == 'S') {
		line, err = src.MustNext()
		if err != nil {
			return nil, errDecorate(err, "PoscarRead")
		}
		sline = stripComment(line)
	}
	cartesian := len(sline) > 0 && strings.ContainsRune("ck", rune(strings.ToLower(sline)[0]))
	P.KptBasis, err = reciprocal(P.ABrav)
	if err != nil {
		return nil, parseError(WrongFormat, filename, 0, "singular lattice: %v", err)
	}
	P.QTypes = make([]*mat.Dense, 0, P.NTypes)
	for it := 0; it < P.NTypes; it++ {
		for i := 0; i < P.NIons[it]; i++ {
			P.TypeOf = append(P.TypeOf, it)
		}
		q := mat.NewDense(P.NIons[it], 3, nil)
		for iq := 0; iq < P.NIons[it]; iq++ {
			line, err = src.MustNext()
			if err != nil {
				return nil, errDecorate(err, "PoscarRead")
			}
			toks := strings.Fields(stripComment(line))
			if len(toks) < 3 {
				return nil, parseError(WrongFormat, filename, src.LineNumber(), "ion position with %d components", len(toks))
			}
			coord, err := src.parseFloats(toks[:3])
			if err != nil {
				return nil, errDecorate(err, "PoscarRead")
			}
			if cartesian {
				coord = matvec3(P.KptBasis, coord)
			}
			q.SetRow(iq, coord)
		}
		P.QTypes = append(P.QTypes, q)
	}
	return P, nil
}
