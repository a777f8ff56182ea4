/*
 * vasp.go, part of govasp.
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
	"os"
	"strings"
)

// Warning is a non-fatal diagnostic produced while ingesting a directory,
// typically that an optional file was unusable and what was substituted.
type Warning struct {
	File    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("govasp: %s: %s", w.File, w.Message)
}

// Options modifies how a VASP directory is ingested.
type Options struct {
	readAll        bool
	efermiRequired bool
	reporter       func(Warning)
}

// DefaultOptions returns an Options with the default settings: everything is
// read eagerly, a Fermi level is required, and warnings are only collected,
// not reported anywhere.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.readAll = true
	ret.efermiRequired = true
	return ret
}

// ReadAll returns whether New reads the directory immediately, and sets the
// value to the one given, if any.
func (O *Options) ReadAll(v ...bool) bool {
	if len(v) > 0 {
		O.readAll = v[0]
	}
	return O.readAll
}

// EFermiRequired returns whether ingestion fails when no Fermi level can be
// obtained from any source, and sets the value to the one given, if any.
func (O *Options) EFermiRequired(v ...bool) bool {
	if len(v) > 0 {
		O.efermiRequired = v[0]
	}
	return O.efermiRequired
}

// Reporter sets a callback that gets each Warning as it is produced. The
// warnings are kept on the Data regardless.
func (O *Options) Reporter(f func(Warning)) {
	O.reporter = f
}

// Data aggregates everything this package reads from a VASP working
// directory. After a successful Read, Plocar, Poscar, Kpoints and Doscar are
// always set; Eigenval is nil when EIGENVAL was missing or truncated, in
// which case the equivalent fields of Plocar serve instead. A Data is built
// once per ingestion and not mutated afterwards.
type Data struct {
	Dir      string
	Plocar   *Locproj
	Poscar   *Poscar
	Kpoints  *Kpoints
	Eigenval *Eigenval
	Doscar   *Doscar
	Warnings []Warning
	opts     *Options
}

// New returns a Data bound to the given VASP working directory, reading it
// immediately unless the options say otherwise. A nil opts means
// DefaultOptions.
func New(dir string, opts *Options) (*Data, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}
	D := &Data{Dir: dir, opts: opts}
	if opts.ReadAll() {
		if err := D.Read(); err != nil {
			return nil, err
		}
	}
	return D, nil
}

// ReadData ingests the given VASP working directory with the default
// options.
func ReadData(dir string) (*Data, error) {
	return New(dir, nil)
}

// Read ingests the directory the Data is bound to. LOCPROJ, POSCAR and
// IBZKPT are mandatory and any problem with them aborts the ingestion.
// EIGENVAL and DOSCAR failures degrade to warnings: eigenvalues can be taken
// from LOCPROJ, and the Fermi level falls back to the LOCPROJ header value
// when one is required. With no Fermi level anywhere, Read fails only if the
// options require one; otherwise the spin-channel count of LOCPROJ is
// substituted for the one DOSCAR would have provided, a documented stopgap.
func (D *Data) Read() error {
	var err error
	D.Plocar, err = LocprojRead(D.path("LOCPROJ"))
	if err != nil {
		return errDecorate(err, "Read")
	}
	if !D.Plocar.HasEFermi {
		D.warn("LOCPROJ", "no parsable Fermi level in the header, will try DOSCAR")
	}
	D.Poscar, err = PoscarRead(D.path("POSCAR"))
	if err != nil {
		return errDecorate(err, "Read")
	}
	D.Kpoints, err = KpointsRead(D.path("IBZKPT"))
	if err != nil {
		return errDecorate(err, "Read")
	}
	D.Eigenval, err = EigenvalRead(D.path("EIGENVAL"))
	if err != nil {
		if !recoverable(err) {
			return errDecorate(err, "Read")
		}
		D.Eigenval = nil
		D.warn("EIGENVAL", "unreadable, eigenvalues and occupations will come from LOCPROJ")
	}
	D.Doscar, err = DoscarRead(D.path("DOSCAR"))
	if err == nil {
		return nil
	}
	if !recoverable(err) {
		return errDecorate(err, "Read")
	}
	D.Doscar = new(Doscar)
	if D.opts.EFermiRequired() {
		if !D.Plocar.HasEFermi {
			return &ParseError{kind: FermiUnobtainable, filename: "DOSCAR", critical: true,
				detail: "DOSCAR unreadable and no Fermi level in LOCPROJ"}
		}
		D.Doscar.EFermi = D.Plocar.EFermi
		D.Doscar.HasEFermi = true
		D.warn("DOSCAR", "unreadable, Fermi level taken from LOCPROJ")
		return nil
	}
	//TODO: find a way to determine the channel count without DOSCAR.
	D.Doscar.NCDij = D.Plocar.NSpin
	D.warn("DOSCAR", "unreadable, channel count taken from LOCPROJ")
	return nil
}

// EFermi returns the Fermi level after fallback resolution, and whether one
// is available at all.
func (D *Data) EFermi() (float64, bool) {
	if D.Doscar == nil || !D.Doscar.HasEFermi {
		return 0, false
	}
	return D.Doscar.EFermi, true
}

// path returns the location of the fixed-name file within the working
// directory, preferring the plain file but settling for a gzip- or
// zstd-compressed one.
func (D *Data) path(name string) string {
	base := D.Dir + name
	for _, p := range []string{base, base + ".gz", base + ".zst"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return base
}

func (D *Data) warn(file, msg string) {
	w := Warning{File: file, Message: msg}
	D.Warnings = append(D.Warnings, w)
	if D.opts.reporter != nil {
		D.opts.reporter(w)
	}
}

// recoverable tells apart the failures the fallback rules may absorb (the
// file could not be opened, or ended early) from grammar-internal ones,
// which desynchronize all later offsets and stay fatal everywhere.
func recoverable(err error) bool {
	pe, ok := err.(*ParseError)
	if !ok {
		return false
	}
	return pe.Kind() == UnableToOpen || pe.Kind() == UnexpectedEOF
}
