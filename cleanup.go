// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmp

import (
	"slices"

	"github.com/pgavlin/dmp/affix"
)

// CommonPrefix returns the number of leading bytes shared by text1 and text2.
func CommonPrefix(text1, text2 string) int {
	return affix.PrefixText(text1, text2)
}

// CommonSuffix returns the number of trailing bytes shared by text1 and text2.
func CommonSuffix(text1, text2 string) int {
	return affix.SuffixText(text1, text2)
}

// CommonOverlap returns the length of the longest suffix of text1 that is
// also a prefix of text2.
func CommonOverlap(text1, text2 string) int {
	return affix.Overlap([]byte(text1), []byte(text2))
}

// CleanupMerge normalizes a script: runs of edits between equalities are
// merged into at most one deletion followed by one insertion, text common to
// both is factored out into the neighboring equalities, adjacent equalities
// are joined and empty operations are dropped. A single edit that can slide
// sideways to swallow one of its neighboring equalities does so.
func CleanupMerge(diffs []Diff) []Diff {
	return fromEdits(cleanupMerge(toEdits(diffs)))
}

func cleanupMerge[E comparable](diffs []edit[E]) []edit[E] {
	for {
		diffs = mergeRuns(diffs)
		var shifted bool
		if diffs, shifted = shiftEdits(diffs); !shifted {
			return diffs
		}
	}
}

// mergeRuns rebuilds diffs with each run of edits merged.
func mergeRuns[E comparable](diffs []edit[E]) []edit[E] {
	out := make([]edit[E], 0, len(diffs))

	// equal appends an equality, extending a trailing one if present.
	equal := func(text []E) {
		if len(text) == 0 {
			return
		}
		if n := len(out); n > 0 && out[n-1].op == Equal {
			out[n-1].text = join(out[n-1].text, text)
			return
		}
		out = append(out, edit[E]{Equal, text})
	}

	var deleted, inserted [][]E
	flush := func(next []E) {
		del, ins := join(deleted...), join(inserted...)
		deleted, inserted = deleted[:0], inserted[:0]
		if len(del) > 0 && len(ins) > 0 {
			// Factor out any common prefix.
			if n := affix.Prefix(ins, del); n > 0 {
				equal(ins[:n])
				ins, del = ins[n:], del[n:]
			}
			// Factor out any common suffix.
			if n := affix.Suffix(ins, del); n > 0 {
				next = join(ins[len(ins)-n:], next)
				ins, del = ins[:len(ins)-n], del[:len(del)-n]
			}
		}
		if len(del) > 0 {
			out = append(out, edit[E]{Delete, del})
		}
		if len(ins) > 0 {
			out = append(out, edit[E]{Insert, ins})
		}
		equal(next)
	}

	for _, d := range diffs {
		if len(d.text) == 0 {
			continue
		}
		switch d.op {
		case Delete:
			deleted = append(deleted, d.text)
		case Insert:
			inserted = append(inserted, d.text)
		default:
			flush(d.text)
		}
	}
	flush(nil)
	return out
}

// shiftEdits slides single edits surrounded by equalities sideways where that
// eliminates an equality:
//
//	A<ins>BA</ins>C -> <ins>AB</ins>AC
//
// It reports whether anything moved; if so the script needs merging again.
func shiftEdits[E comparable](diffs []edit[E]) ([]edit[E], bool) {
	changed := false
	// The first and last elements never need checking.
	for i := 1; i < len(diffs)-1; i++ {
		prev, cur, next := diffs[i-1], diffs[i], diffs[i+1]
		if prev.op != Equal || next.op != Equal {
			continue
		}
		switch {
		case affix.HasSuffix(cur.text, prev.text):
			// Shift the edit over the previous equality.
			diffs[i].text = join(prev.text, cur.text[:len(cur.text)-len(prev.text)])
			diffs[i+1].text = join(prev.text, next.text)
			diffs = slices.Delete(diffs, i-1, i)
			changed = true
		case affix.HasPrefix(cur.text, next.text):
			// Shift the edit over the next equality.
			diffs[i-1].text = join(prev.text, next.text)
			diffs[i].text = join(cur.text[len(next.text):], next.text)
			diffs = slices.Delete(diffs, i+1, i+2)
			changed = true
		}
	}
	return diffs, changed
}
