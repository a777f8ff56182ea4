/*
 * errors.go, part of govasp.
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

import "fmt"

// Error is the interface for errors returned by this library. The Decorate
// method allows the caller to add information to the error as it is passed up,
// without changing its type or wrapping it around something else. The
// decoration slice should contain the names of the functions in the calling
// stack, plus, for each, any relevant extra information in the format
// "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// Kinds of parse errors. Which file was being read, and where, travels in
// the ParseError itself.
const (
	UnableToOpen        = "Unable to open file"
	UnexpectedEOF       = "Unexpected end of input"
	MalformedToken      = "Malformed numeric token"
	InconsistentRecord  = "Inconsistent record indices"
	UnrecognizedOrbital = "Unrecognized orbital label"
	FermiUnobtainable   = "Fermi level unobtainable from any source"
	WrongFormat         = "Wrong format"
)

// ParseError is the concrete error for everything that can go wrong while
// reading a VASP file. It fulfills Error. A critical ParseError from a
// mandatory file aborts the whole ingestion; the orchestrator downgrades
// those of EIGENVAL and DOSCAR to warnings.
type ParseError struct {
	kind     string //one of the constants above
	detail   string //empty, or specifics about the offending token/record
	filename string
	line     int //1-based line where the problem was found, 0 if not applicable
	deco     []string
	critical bool
}

func (err *ParseError) Error() string {
	s := fmt.Sprintf("govasp: %s: %s", err.filename, err.kind)
	if err.line > 0 {
		s = fmt.Sprintf("%s (line %d)", s, err.line)
	}
	if err.detail != "" {
		s = s + ": " + err.detail
	}
	return s
}

// Decorate adds new information to the error. If given an empty string it
// just returns the current decoration.
func (err *ParseError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Kind returns which of the error-kind constants this error carries.
func (err *ParseError) Kind() string { return err.kind }

// FileName returns the file whose reading failed, or the empty string.
func (err *ParseError) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err *ParseError) Critical() bool { return err.critical }

func parseError(kind, filename string, line int, format string, a ...interface{}) *ParseError {
	return &ParseError{kind: kind, detail: fmt.Sprintf(format, a...), filename: filename, line: line, critical: true}
}

// EOFError marks the one non-exceptional end of input: exhausting a file is
// reported through it and upgraded to UnexpectedEOF by every reader except
// where the grammar makes the remaining section optional (the tetrahedron
// block of IBZKPT). The interface has a do-nothing method only so a type
// switch can single it out.
type EOFError interface {
	Error
	NormalEndOfLines()
}

type endOfLines struct {
	filename string
	deco     []string
}

func (err *endOfLines) NormalEndOfLines() {}

func (err *endOfLines) Error() string { return "EOF" }

func (err *endOfLines) FileName() string { return err.filename }

func (err *endOfLines) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// IsEOF returns whether err signals a plain end of input, as opposed to an
// actual reading problem.
func IsEOF(err error) bool {
	_, ok := err.(EOFError)
	return ok
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
