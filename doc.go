/*
 * doc.go, part of govasp.
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

/*Package vasp reads the text output of the VASP electronic-structure code
into validated, in-memory numeric data, ready for post-processing
(construction of local projectors, density-of-states analysis, symmetry
averaging).

Five files from a VASP working directory are understood:

	LOCPROJ   raw local projectors, plus band eigenvalues, occupations
	          and (in newer VASP) the Fermi level. Always required.
	POSCAR    lattice vectors, species and ion positions. Required.
	IBZKPT    k-points with weights, optionally tetrahedron topology
	          for Brillouin-zone integration. Required.
	EIGENVAL  band eigenvalues and occupations. Optional; LOCPROJ
	          carries equivalent data.
	DOSCAR    only the Fermi level is taken from it. Optional, with
	          fallback to the LOCPROJ value.

Each file is parsed by its own reader, all driven by ReadData (or by a
deferred Data.Read). Missing or truncated optional files degrade to
warnings; everything else, including any internal inconsistency of
LOCPROJ, aborts the ingestion with a descriptive error carrying file and
line context.

Matrices are gonum mat.Dense (mat.CDense for the complex projector
coefficients). Files compressed with gzip or zstd (POSCAR.gz and so on)
are read transparently.

The package itself never prints; diagnostics that VASP users expect to
see can be recovered from the Warnings field of Data or through a
reporter callback set on Options.*/
package vasp
