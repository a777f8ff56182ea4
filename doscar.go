/*
 * doscar.go, part of govasp.
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
)

// Doscar holds the little this package wants from a DOSCAR file: the Fermi
// level. NCDij is only filled by the ingestion fallback, as a stand-in spin
// channel count, when DOSCAR itself could not be read and the caller did not
// require a Fermi level.
type Doscar struct {
	EFermi    float64
	HasEFermi bool
	NCDij     int
}

// DoscarRead extracts the Fermi energy from the DOSCAR file given by
// filename: the fourth field of the sixth line. The first five lines are
// discarded.
func DoscarRead(filename string) (*Doscar, error) {
	src, err := OpenLines(filename)
	if err != nil {
		return nil, errDecorate(err, "DoscarRead")
	}
	defer src.Close()
	for i := 0; i < 5; i++ {
		if _, err = src.MustNext(); err != nil {
			return nil, errDecorate(err, "DoscarRead")
		}
	}
	line, err := src.MustNext()
	if err != nil {
		return nil, errDecorate(err, "DoscarRead")
	}
	toks := strings.Fields(line)
	if len(toks) < 4 {
		return nil, parseError(WrongFormat, filename, src.LineNumber(), "Fermi line with %d fields, need 4", len(toks))
	}
	D := new(Doscar)
	if D.EFermi, err = src.parseFloat(toks[3]); err != nil {
		return nil, errDecorate(err, "DoscarRead")
	}
	D.HasEFermi = true
	return D, nil
}
