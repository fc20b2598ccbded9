// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dmpcompat converts scripts to and from the types of
// github.com/sergi/go-diff/diffmatchpatch, so that its renderers and delta
// encoding can be used on the output of package dmp.
//
// go-diff counts lengths in runes where dmp counts bytes. The conversions
// themselves are exact; the delta encoding is only well defined for scripts
// whose operations do not split UTF-8 sequences.
package dmpcompat

import (
	"fmt"

	"github.com/pgavlin/dmp"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// ToDMP converts a script into go-diff's representation.
func ToDMP(diffs []dmp.Diff) []diffmatchpatch.Diff {
	if diffs == nil {
		return nil
	}
	out := make([]diffmatchpatch.Diff, len(diffs))
	for i, d := range diffs {
		out[i] = diffmatchpatch.Diff{Type: toOperation(d.Op), Text: d.Text}
	}
	return out
}

// FromDMP converts a go-diff script. It returns an error if the script holds
// an unknown operation.
func FromDMP(diffs []diffmatchpatch.Diff) ([]dmp.Diff, error) {
	if diffs == nil {
		return nil, nil
	}
	out := make([]dmp.Diff, len(diffs))
	for i, d := range diffs {
		op, err := fromOperation(d.Type)
		if err != nil {
			return nil, err
		}
		out[i] = dmp.Diff{Op: op, Text: d.Text}
	}
	return out, nil
}

func toOperation(op dmp.Op) diffmatchpatch.Operation {
	switch op {
	case dmp.Delete:
		return diffmatchpatch.DiffDelete
	case dmp.Insert:
		return diffmatchpatch.DiffInsert
	default:
		return diffmatchpatch.DiffEqual
	}
}

func fromOperation(op diffmatchpatch.Operation) (dmp.Op, error) {
	switch op {
	case diffmatchpatch.DiffDelete:
		return dmp.Delete, nil
	case diffmatchpatch.DiffInsert:
		return dmp.Insert, nil
	case diffmatchpatch.DiffEqual:
		return dmp.Equal, nil
	default:
		return 0, fmt.Errorf("unknown operation %v", op)
	}
}

// PrettyText renders a script for a terminal, coloring insertions green and
// deletions red.
func PrettyText(diffs []dmp.Diff) string {
	return diffmatchpatch.New().DiffPrettyText(ToDMP(diffs))
}

// PrettyHTML renders a script as HTML.
func PrettyHTML(diffs []dmp.Diff) string {
	return diffmatchpatch.New().DiffPrettyHtml(ToDMP(diffs))
}

// ToDelta encodes a script as a compact tab-separated delta, which together
// with the first text is enough to rebuild the script.
func ToDelta(diffs []dmp.Diff) string {
	return diffmatchpatch.New().DiffToDelta(ToDMP(diffs))
}

// FromDelta rebuilds the script encoded by ToDelta against text1.
func FromDelta(text1, delta string) ([]dmp.Diff, error) {
	diffs, err := diffmatchpatch.New().DiffFromDelta(text1, delta)
	if err != nil {
		return nil, fmt.Errorf("decoding delta: %w", err)
	}
	return FromDMP(diffs)
}
