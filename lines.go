/*
 * lines.go, part of govasp.
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
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// LineSource is a lazy, forward-only sequence of lines over a text file.
// Every reader in this package consumes one. Files ending in .gz or .zst
// are decompressed on the fly. The underlying handle is released as soon as
// the sequence is exhausted, or by Close.
type LineSource struct {
	name   string
	f      *os.File
	z      io.ReadCloser //decompressor, nil for plain text
	s      *bufio.Scanner
	lineno int
	done   bool
}

// OpenLines opens name for line-by-line reading. The returned error, if any,
// is a *ParseError of kind UnableToOpen.
func OpenLines(name string) (*LineSource, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &ParseError{kind: UnableToOpen, detail: err.Error(), filename: name, critical: true}
	}
	L := &LineSource{name: name, f: f}
	var r io.Reader = f
	switch {
	case strings.HasSuffix(name, ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &ParseError{kind: UnableToOpen, detail: err.Error(), filename: name, critical: true}
		}
		L.z = g
		r = g
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &ParseError{kind: UnableToOpen, detail: err.Error(), filename: name, critical: true}
		}
		L.z = d.IOReadCloser()
		r = L.z
	}
	L.s = bufio.NewScanner(r)
	return L, nil
}

// Name returns the name of the underlying file.
func (L *LineSource) Name() string { return L.name }

// LineNumber returns the 1-based number of the last line returned by Next.
func (L *LineSource) LineNumber() int { return L.lineno }

// Next returns the next line of the file, without its trailing newline.
// When the file is exhausted it releases the file handle and returns an
// EOFError; any later call keeps returning it.
func (L *LineSource) Next() (string, error) {
	if L.done {
		return "", &endOfLines{filename: L.name}
	}
	if !L.s.Scan() {
		err := L.s.Err()
		L.Close()
		if err != nil {
			return "", &ParseError{kind: UnableToOpen, detail: err.Error(), filename: L.name, critical: true}
		}
		return "", &endOfLines{filename: L.name}
	}
	L.lineno++
	return L.s.Text(), nil
}

// MustNext is Next with end of input upgraded to a fatal UnexpectedEOF.
// It is what every reader uses outside optional sections.
func (L *LineSource) MustNext() (string, error) {
	line, err := L.Next()
	if err != nil {
		if IsEOF(err) {
			return "", parseError(UnexpectedEOF, L.name, L.lineno, "")
		}
		return "", err
	}
	return line, nil
}

// NextNonBlank skips blank lines and returns the first line with content,
// or a fatal UnexpectedEOF if none is left.
func (L *LineSource) NextNonBlank() (string, error) {
	for {
		line, err := L.MustNext()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

// Close releases the file handle. Calling it more than once is harmless.
func (L *LineSource) Close() {
	if L.done {
		return
	}
	if L.z != nil {
		L.z.Close()
	}
	L.f.Close()
	L.done = true
}

//Small token helpers shared by the readers.

// stripComment cuts line at the first '!' or '#' and trims the remainder.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '!'); i >= 0 {
		line = line[:i]
	}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func (L *LineSource) parseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, parseError(MalformedToken, L.name, L.lineno, "%q is not a number", tok)
	}
	return v, nil
}

func (L *LineSource) parseInt(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, parseError(MalformedToken, L.name, L.lineno, "%q is not an integer", tok)
	}
	return v, nil
}

func (L *LineSource) parseFloats(toks []string) ([]float64, error) {
	ret := make([]float64, len(toks))
	for i, t := range toks {
		v, err := L.parseFloat(t)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

func (L *LineSource) parseInts(toks []string) ([]int, error) {
	ret := make([]int, len(toks))
	for i, t := range toks {
		v, err := L.parseInt(t)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}
