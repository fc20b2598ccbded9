// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dmp computes minimal, human-legible edit scripts between two
// texts.
//
// A script is an ordered slice of Diff values. Concatenating the Text of
// every Delete and Equal operation reproduces the first text; concatenating
// the Text of every Insert and Equal operation reproduces the second:
//
//	[]Diff{{Delete, "Hello"}, {Insert, "Goodbye"}, {Equal, " world."}}
//
// means: delete "Hello", add "Goodbye" and keep " world.".
//
// Texts are treated as opaque sequences of bytes. All lengths and offsets
// are byte counts, and an operation may begin or end inside a multi-byte
// UTF-8 sequence.
package dmp

import (
	"fmt"
	"strings"
)

// Op identifies the kind of an edit operation.
type Op int8

const (
	// Delete removes text present only in the first input.
	Delete Op = -1
	// Equal keeps text present in both inputs.
	Equal Op = 0
	// Insert adds text present only in the second input.
	Insert Op = 1
)

func (op Op) String() string {
	switch op {
	case Delete:
		return "Delete"
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	default:
		return fmt.Sprintf("Op(%d)", int8(op))
	}
}

// Diff is a single operation of an edit script.
type Diff struct {
	Op   Op
	Text string
}

func (d Diff) String() string {
	return fmt.Sprintf("{%v,%q}", d.Op, d.Text)
}

// edit is the working form of a Diff. The engine runs over bytes for text
// and over symbols for interned lines; spans may alias the inputs, so they
// are never appended to in place.
type edit[E comparable] struct {
	op   Op
	text []E
}

// join returns the concatenation of parts in freshly allocated storage.
func join[E any](parts ...[]E) []E {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]E, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func toEdits(diffs []Diff) []edit[byte] {
	if len(diffs) == 0 {
		return nil
	}
	edits := make([]edit[byte], len(diffs))
	for i, d := range diffs {
		edits[i] = edit[byte]{d.Op, []byte(d.Text)}
	}
	return edits
}

func fromEdits(edits []edit[byte]) []Diff {
	if len(edits) == 0 {
		return nil
	}
	diffs := make([]Diff, len(edits))
	for i, e := range edits {
		diffs[i] = Diff{e.op, string(e.text)}
	}
	return diffs
}

// Text1 returns the first text of a script: its Equal and Delete text.
func Text1(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Op != Insert {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Text2 returns the second text of a script: its Equal and Insert text.
func Text2(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Op != Delete {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Levenshtein returns the number of inserted, deleted or substituted bytes
// described by a script. A deletion adjacent to an insertion counts as
// max(deleted, inserted) substitutions.
func Levenshtein(diffs []Diff) int {
	levenshtein := 0
	insertions, deletions := 0, 0
	for _, d := range diffs {
		switch d.Op {
		case Insert:
			insertions += len(d.Text)
		case Delete:
			deletions += len(d.Text)
		case Equal:
			// A deletion and an insertion is one substitution.
			levenshtein += max(insertions, deletions)
			insertions, deletions = 0, 0
		}
	}
	return levenshtein + max(insertions, deletions)
}

// XIndex maps loc, a byte offset into the first text of a script, to the
// equivalent offset in the second text. A location inside deleted text maps
// to the position where the deletion happened.
func XIndex(diffs []Diff, loc int) int {
	chars1, chars2 := 0, 0
	lastChars1, lastChars2 := 0, 0
	var last Diff
	for _, d := range diffs {
		if d.Op != Insert {
			chars1 += len(d.Text)
		}
		if d.Op != Delete {
			chars2 += len(d.Text)
		}
		if chars1 > loc {
			// Overshot the location.
			last = d
			break
		}
		lastChars1, lastChars2 = chars1, chars2
	}
	if last.Op == Delete {
		return lastChars2
	}
	return lastChars2 + (loc - lastChars1)
}
