// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmp

// This file exports some private declarations to tests.

func SemanticScore(one, two string) int {
	return semanticScore([]byte(one), []byte(two))
}

// LinesToSymbols returns the symbols of each text as plain integers along
// with the interned lines.
func LinesToSymbols(text1, text2 string) ([]int32, []int32, []string) {
	s1, s2, t := linesToSymbols(text1, text2)
	return symbolInts(s1), symbolInts(s2), t.lines
}

// SymbolsToLines expands a script whose Text fields hold one byte per line
// symbol.
func SymbolsToLines(diffs []Diff, lines []string) []Diff {
	t := &lineTable{lines: lines}
	edits := make([]edit[symbol], len(diffs))
	for i, d := range diffs {
		syms := make([]symbol, len(d.Text))
		for j := 0; j < len(d.Text); j++ {
			syms[j] = symbol(d.Text[j])
		}
		edits[i] = edit[symbol]{d.Op, syms}
	}
	return fromEdits(t.symbolsToLines(edits))
}

func symbolInts(syms []symbol) []int32 {
	out := make([]int32, len(syms))
	for i, s := range syms {
		out[i] = int32(s)
	}
	return out
}

// MergeSymbols runs the structural merge over a script of line symbols.
func MergeSymbols(ops []Op, runs [][]int32) ([]Op, [][]int32) {
	edits := make([]edit[symbol], len(ops))
	for i, op := range ops {
		syms := make([]symbol, len(runs[i]))
		for j, s := range runs[i] {
			syms[j] = symbol(s)
		}
		edits[i] = edit[symbol]{op, syms}
	}
	edits = cleanupMerge(edits)
	outOps := make([]Op, len(edits))
	outRuns := make([][]int32, len(edits))
	for i, e := range edits {
		outOps[i] = e.op
		outRuns[i] = symbolInts(e.text)
	}
	return outOps, outRuns
}
