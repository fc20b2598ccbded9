// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmp

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/pgavlin/text"
)

// Edit represents a change to a section of a document.
// The text within the specified span should be replaced by the supplied new text.
type Edit[S text.Text] struct {
	Start, End int // byte offsets of the region to replace
	New        S
}

func (e Edit[S]) String() string {
	return fmt.Sprintf("{Start:%d,End:%d,New:%q}", e.Start, e.End, string(e.New))
}

// Edits converts a script into replacements of byte ranges of its first
// text. Each run of deletions and insertions between two equalities becomes
// one Edit. The result is sorted and non-overlapping.
func Edits(diffs []Diff) []Edit[string] {
	return offsetEdits(diffs, Text2(diffs))
}

// offsetEdits is Edits with the new text of each edit sliced from after,
// which must be the second text of diffs.
func offsetEdits[S text.Text](diffs []Diff, after S) []Edit[S] {
	var edits []Edit[S]
	pos1, pos2 := 0, 0
	for i := 0; i < len(diffs); {
		if diffs[i].Op == Equal {
			pos1 += len(diffs[i].Text)
			pos2 += len(diffs[i].Text)
			i++
			continue
		}
		start1, start2 := pos1, pos2
		for ; i < len(diffs) && diffs[i].Op != Equal; i++ {
			if diffs[i].Op == Delete {
				pos1 += len(diffs[i].Text)
			} else {
				pos2 += len(diffs[i].Text)
			}
		}
		edits = append(edits, Edit[S]{start1, pos1, after[start2:pos2]})
	}
	return edits
}

// Apply replaces the spans of src named by edits and returns the result.
// Edits need not be sorted; edits that start at the same offset keep the
// order they were given in.
//
// Apply fails if an edit lies outside src or two edits overlap.
func Apply[S text.Text](src S, edits []Edit[S]) (S, error) {
	edits, size, err := validate(src, edits)
	if err != nil {
		var zero S
		return zero, err
	}

	out := make([]byte, 0, size)
	last := 0
	for _, e := range edits {
		out = append(out, src[last:e.Start]...)
		out = append(out, e.New...)
		last = e.End
	}
	return S(append(out, src[last:]...)), nil
}

// validate returns edits in sorted order, along with the size of src once
// they are applied. It sorts a copy, never the caller's slice.
func validate[S text.Text](src S, edits []Edit[S]) ([]Edit[S], int, error) {
	if !slices.IsSortedFunc(edits, compareEdits[S]) {
		edits = slices.Clone(edits)
		SortEdits(edits)
	}

	size, last := len(src), 0
	for _, e := range edits {
		switch {
		case e.Start < 0 || e.End < e.Start || e.End > len(src):
			return nil, 0, fmt.Errorf("edit %v is out of bounds for %d bytes", e, len(src))
		case e.Start < last:
			return nil, 0, fmt.Errorf("edit %v overlaps a previous edit ending at %d", e, last)
		}
		size += len(e.New) - (e.End - e.Start)
		last = e.End
	}
	return edits, size, nil
}

// SortEdits orders edits by start offset, then by end offset. Insertions
// therefore sort before deletions at the same point, and the sort is stable
// so several insertions at one point keep their order.
func SortEdits[S text.Text](edits []Edit[S]) {
	slices.SortStableFunc(edits, compareEdits[S])
}

func compareEdits[S text.Text](a, b Edit[S]) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}

// LineEdits widens edits so that each one replaces whole lines of src.
// Edits that end up sharing a line are merged. Applying the result to src
// gives the same text as applying edits.
func LineEdits[S text.Text](src S, edits []Edit[S]) ([]Edit[S], error) {
	if text.UseStrings[S]() {
		return lineEdits[S, text.Strings[S]](src, edits)
	}
	return lineEdits[S, text.Bytes[S]](src, edits)
}

func lineEdits[S text.Text, A text.Algorithms[S]](src S, edits []Edit[S]) ([]Edit[S], error) {
	var alg A

	edits, _, err := validate(src, edits)
	if err != nil {
		return nil, err
	}
	if lineAligned(src, edits) {
		return edits, nil
	}

	widened := make([]Edit[S], 0, len(edits))
	cur := edits[0]
	for _, e := range edits[1:] {
		gap := src[cur.End:e.Start]
		if alg.IndexByte(gap, '\n') >= 0 {
			widened = append(widened, widenEdit[S, A](src, cur))
			cur = e
			continue
		}
		// Same line: fold e into cur.
		cur.New = alg.Join([]S{cur.New, gap, e.New}, S(""))
		cur.End = e.End
	}
	return append(widened, widenEdit[S, A](src, cur)), nil
}

// lineAligned reports whether every edit already starts and ends at the
// start of a line. An insertion at the end of src is never aligned.
func lineAligned[S text.Text](src S, edits []Edit[S]) bool {
	for _, e := range edits {
		if e.Start >= len(src) || !atLineStart(src, e.Start) || !atLineStart(src, e.End) {
			return false
		}
	}
	return true
}

func atLineStart[S text.Text](src S, i int) bool {
	return i == 0 || src[i-1] == '\n'
}

// widenEdit extends e left to the start of its first line and right past
// the newline ending its last line, or to the end of src.
func widenEdit[S text.Text, A text.Algorithms[S]](src S, e Edit[S]) Edit[S] {
	var alg A

	if start := alg.LastIndexByte(src[:e.Start], '\n') + 1; start < e.Start {
		e.New = alg.Concat(src[start:e.Start], e.New)
		e.Start = start
	}

	end := len(src)
	if nl := alg.IndexByte(src[e.End:], '\n'); nl >= 0 {
		end = e.End + nl + 1
	}
	e.New = alg.Concat(e.New, src[e.End:end])
	e.End = end
	return e
}
