// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmp

import (
	"github.com/golang/glog"
	"github.com/pgavlin/text"
)

// A symbol stands for one interned line. Symbol 0 is never assigned.
type symbol int32

// lineTable interns lines. lines[0] is a placeholder so that every real line
// gets a non-zero symbol.
type lineTable struct {
	lines []string
	index map[string]symbol
}

func newLineTable() *lineTable {
	return &lineTable{
		lines: []string{""},
		index: make(map[string]symbol),
	}
}

// splitLines splits s after every newline. A trailing line without a newline
// is kept; an empty trailing piece is not.
func splitLines(s string) []string {
	lines := text.Strings[string]{}.SplitAfter(s, "\n")
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// munge returns the symbols for the lines of t, interning lines not seen
// before.
func (t *lineTable) munge(s string) []symbol {
	lines := splitLines(s)
	syms := make([]symbol, len(lines))
	for i, line := range lines {
		sym, ok := t.index[line]
		if !ok {
			sym = symbol(len(t.lines))
			t.lines = append(t.lines, line)
			t.index[line] = sym
		}
		syms[i] = sym
	}
	return syms
}

// linesToSymbols reduces two texts to sequences of line symbols over a
// shared table.
func linesToSymbols(text1, text2 string) ([]symbol, []symbol, *lineTable) {
	t := newLineTable()
	syms1 := t.munge(text1)
	syms2 := t.munge(text2)
	return syms1, syms2, t
}

// symbolsToLines expands a script over line symbols back into text.
func (t *lineTable) symbolsToLines(diffs []edit[symbol]) []edit[byte] {
	out := make([]edit[byte], len(diffs))
	for i, d := range diffs {
		var n int
		for _, s := range d.text {
			n += len(t.lines[s])
		}
		buf := make([]byte, 0, n)
		for _, s := range d.text {
			buf = append(buf, t.lines[s]...)
		}
		out[i] = edit[byte]{d.op, buf}
	}
	return out
}

// lineMode diffs a and b a line at a time, then re-diffs each replaced block
// byte by byte. The result may be less than minimal.
func (r *run) lineMode(a, b []byte) []edit[byte] {
	syms1, syms2, t := linesToSymbols(string(a), string(b))
	glog.V(2).Infof("dmp: line mode over %d and %d lines, %d distinct", len(syms1), len(syms2), len(t.lines)-1)

	diffs := t.symbolsToLines(diffMain(r, syms1, syms2, nil))

	// Eliminate freak matches such as blank lines.
	diffs = cleanupSemantic(diffs)

	// Re-diff any replacement blocks, this time byte by byte. The trailing
	// empty equality flushes the last block.
	diffs = append(diffs, edit[byte]{Equal, nil})
	out := make([]edit[byte], 0, len(diffs))
	var deleted, inserted [][]byte
	for _, d := range diffs {
		switch d.op {
		case Delete:
			deleted = append(deleted, d.text)
			continue
		case Insert:
			inserted = append(inserted, d.text)
			continue
		}
		if len(deleted) > 0 && len(inserted) > 0 {
			out = append(out, diffMain(r, join(deleted...), join(inserted...), nil)...)
		} else {
			for _, s := range deleted {
				out = append(out, edit[byte]{Delete, s})
			}
			for _, s := range inserted {
				out = append(out, edit[byte]{Insert, s})
			}
		}
		deleted, inserted = deleted[:0], inserted[:0]
		if len(d.text) > 0 {
			out = append(out, d)
		}
	}
	return out
}
