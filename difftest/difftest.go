// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package difftest supplies a set of tests that will operate on any
// implementation of a diff algorithm as exposed by
// "github.com/pgavlin/dmp"
package difftest

import (
	"testing"

	"github.com/pgavlin/dmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCases pair two texts with, where the result is fixed, the script a
// minimal search without a timeout produces. Edits, when set, turn In into
// Out; LineEdits is the same change widened to whole lines, and is nil when
// Edits are already line aligned.
var TestCases = []struct {
	Name, In, Out    string
	Diffs            []dmp.Diff
	Edits, LineEdits []dmp.Edit[string]
	NoDiff           bool // only reconstruction is checked
}{{
	Name: "empty",
}, {
	Name:  "no_diff",
	In:    "gargantuan\n",
	Out:   "gargantuan\n",
	Diffs: []dmp.Diff{{Op: dmp.Equal, Text: "gargantuan\n"}},
}, {
	Name:  "insert_all",
	Out:   "abc",
	Diffs: []dmp.Diff{{Op: dmp.Insert, Text: "abc"}},
}, {
	Name:  "delete_all",
	In:    "abc",
	Diffs: []dmp.Diff{{Op: dmp.Delete, Text: "abc"}},
}, {
	Name:      "replace_all",
	In:        "fruit\n",
	Out:       "cheese\n",
	Diffs:     []dmp.Diff{{Op: dmp.Delete, Text: "fruit"}, {Op: dmp.Insert, Text: "cheese"}, {Op: dmp.Equal, Text: "\n"}},
	Edits:     []dmp.Edit[string]{{Start: 0, End: 5, New: "cheese"}},
	LineEdits: []dmp.Edit[string]{{Start: 0, End: 6, New: "cheese\n"}},
}, {
	Name:      "insert_rune",
	In:        "gord\n",
	Out:       "gourd\n",
	Diffs:     []dmp.Diff{{Op: dmp.Equal, Text: "go"}, {Op: dmp.Insert, Text: "u"}, {Op: dmp.Equal, Text: "rd\n"}},
	Edits:     []dmp.Edit[string]{{Start: 2, End: 2, New: "u"}},
	LineEdits: []dmp.Edit[string]{{Start: 0, End: 5, New: "gourd\n"}},
}, {
	Name:      "delete_rune",
	In:        "groat\n",
	Out:       "goat\n",
	Diffs:     []dmp.Diff{{Op: dmp.Equal, Text: "g"}, {Op: dmp.Delete, Text: "r"}, {Op: dmp.Equal, Text: "oat\n"}},
	Edits:     []dmp.Edit[string]{{Start: 1, End: 2}},
	LineEdits: []dmp.Edit[string]{{Start: 0, End: 6, New: "goat\n"}},
}, {
	Name:      "replace_rune",
	In:        "loud\n",
	Out:       "lord\n",
	Diffs:     []dmp.Diff{{Op: dmp.Equal, Text: "lo"}, {Op: dmp.Delete, Text: "u"}, {Op: dmp.Insert, Text: "r"}, {Op: dmp.Equal, Text: "d\n"}},
	Edits:     []dmp.Edit[string]{{Start: 2, End: 3, New: "r"}},
	LineEdits: []dmp.Edit[string]{{Start: 0, End: 5, New: "lord\n"}},
}, {
	Name: "replace_partials",
	In:   "blanket\n",
	Out:  "bunker\n",
	Edits: []dmp.Edit[string]{
		{Start: 1, End: 3, New: "u"},
		{Start: 6, End: 7, New: "r"},
	},
	LineEdits: []dmp.Edit[string]{{Start: 0, End: 8, New: "bunker\n"}},
	NoDiff:    true,
}, {
	Name:  "contained",
	In:    "1234",
	Out:   "12x34",
	Diffs: []dmp.Diff{{Op: dmp.Equal, Text: "12"}, {Op: dmp.Insert, Text: "x"}, {Op: dmp.Equal, Text: "34"}},
}, {
	Name:  "single_unit",
	In:    "a",
	Out:   "b",
	Diffs: []dmp.Diff{{Op: dmp.Delete, Text: "a"}, {Op: dmp.Insert, Text: "b"}},
}, {
	Name:  "simple_insert",
	In:    "abc",
	Out:   "ab123c",
	Diffs: []dmp.Diff{{Op: dmp.Equal, Text: "ab"}, {Op: dmp.Insert, Text: "123"}, {Op: dmp.Equal, Text: "c"}},
}, {
	Name:  "simple_delete",
	In:    "a123bc",
	Out:   "abc",
	Diffs: []dmp.Diff{{Op: dmp.Equal, Text: "a"}, {Op: dmp.Delete, Text: "123"}, {Op: dmp.Equal, Text: "bc"}},
}, {
	Name: "two_insertions",
	In:   "abc",
	Out:  "a123b456c",
	Diffs: []dmp.Diff{
		{Op: dmp.Equal, Text: "a"}, {Op: dmp.Insert, Text: "123"}, {Op: dmp.Equal, Text: "b"}, {Op: dmp.Insert, Text: "456"}, {Op: dmp.Equal, Text: "c"},
	},
}, {
	Name: "two_deletions",
	In:   "a123b456c",
	Out:  "abc",
	Diffs: []dmp.Diff{
		{Op: dmp.Equal, Text: "a"}, {Op: dmp.Delete, Text: "123"}, {Op: dmp.Equal, Text: "b"}, {Op: dmp.Delete, Text: "456"}, {Op: dmp.Equal, Text: "c"},
	},
}, {
	Name: "apples",
	In:   "Apples are a fruit.",
	Out:  "Bananas are also fruit.",
	Diffs: []dmp.Diff{
		{Op: dmp.Delete, Text: "Apple"}, {Op: dmp.Insert, Text: "Banana"}, {Op: dmp.Equal, Text: "s are a"}, {Op: dmp.Insert, Text: "lso"}, {Op: dmp.Equal, Text: " fruit."},
	},
}, {
	Name: "overlap",
	In:   "1ayb2",
	Out:  "abxab",
	Diffs: []dmp.Diff{
		{Op: dmp.Delete, Text: "1"}, {Op: dmp.Equal, Text: "a"}, {Op: dmp.Delete, Text: "y"}, {Op: dmp.Equal, Text: "b"}, {Op: dmp.Delete, Text: "2"}, {Op: dmp.Insert, Text: "xab"},
	},
}, {
	Name: "prefix_overlap",
	In:   "abcy",
	Out:  "xaxcxabc",
	Diffs: []dmp.Diff{
		{Op: dmp.Insert, Text: "xaxcx"}, {Op: dmp.Equal, Text: "abc"}, {Op: dmp.Delete, Text: "y"},
	},
}, {
	Name: "half_match_shape",
	In:   "ABCDa=bcd=efghijklmnopqrsEFGHIJKLMNOefg",
	Out:  "a-bcd-efghijklmnopqrs",
	Diffs: []dmp.Diff{
		{Op: dmp.Delete, Text: "ABCD"}, {Op: dmp.Equal, Text: "a"}, {Op: dmp.Delete, Text: "="}, {Op: dmp.Insert, Text: "-"}, {Op: dmp.Equal, Text: "bcd"},
		{Op: dmp.Delete, Text: "="}, {Op: dmp.Insert, Text: "-"}, {Op: dmp.Equal, Text: "efghijklmnopqrs"}, {Op: dmp.Delete, Text: "EFGHIJKLMNOefg"},
	},
}, {
	Name: "large_equality",
	In:   "a [[Pennsylvania]] and [[New",
	Out:  " and [[Pennsylvania]]",
	Diffs: []dmp.Diff{
		{Op: dmp.Insert, Text: " "}, {Op: dmp.Equal, Text: "a"}, {Op: dmp.Insert, Text: "nd"}, {Op: dmp.Equal, Text: " [[Pennsylvania]]"}, {Op: dmp.Delete, Text: " and [[New"},
	},
}, {
	Name:   "insert_line",
	In:     "1: one\n3: three\n",
	Out:    "1: one\n2: two\n3: three\n",
	Edits:  []dmp.Edit[string]{{Start: 7, End: 7, New: "2: two\n"}},
	NoDiff: true,
}, {
	Name:  "replace_no_newline",
	In:    "A",
	Out:   "B",
	Diffs: []dmp.Diff{{Op: dmp.Delete, Text: "A"}, {Op: dmp.Insert, Text: "B"}},
	Edits: []dmp.Edit[string]{{Start: 0, End: 1, New: "B"}},
}, {
	Name:      "add_end",
	In:        "A",
	Out:       "AB",
	Diffs:     []dmp.Diff{{Op: dmp.Equal, Text: "A"}, {Op: dmp.Insert, Text: "B"}},
	Edits:     []dmp.Edit[string]{{Start: 1, End: 1, New: "B"}},
	LineEdits: []dmp.Edit[string]{{Start: 0, End: 1, New: "AB"}},
}, {
	Name:      "add_newline",
	In:        "A",
	Out:       "A\n",
	Diffs:     []dmp.Diff{{Op: dmp.Equal, Text: "A"}, {Op: dmp.Insert, Text: "\n"}},
	Edits:     []dmp.Edit[string]{{Start: 1, End: 1, New: "\n"}},
	LineEdits: []dmp.Edit[string]{{Start: 0, End: 1, New: "A\n"}},
}, {
	Name: "delete_front",
	In:   "A\nB\nC\nA\nB\nB\nA\n",
	Out:  "C\nB\nA\nB\nA\nC\n",
	Edits: []dmp.Edit[string]{
		{Start: 0, End: 4},
		{Start: 6, End: 6, New: "B\n"},
		{Start: 10, End: 12},
		{Start: 14, End: 14, New: "C\n"},
	},
	LineEdits: []dmp.Edit[string]{
		{Start: 0, End: 6, New: "C\n"},
		{Start: 6, End: 8, New: "B\nA\n"},
		{Start: 10, End: 14, New: "A\n"},
		{Start: 14, End: 14, New: "C\n"},
	},
	NoDiff: true, // the engine finds a different delete/insert pattern
}, {
	Name:      "replace_last_line",
	In:        "A\nB\n",
	Out:       "A\nC\n\n",
	Diffs:     []dmp.Diff{{Op: dmp.Equal, Text: "A\n"}, {Op: dmp.Delete, Text: "B"}, {Op: dmp.Insert, Text: "C\n"}, {Op: dmp.Equal, Text: "\n"}},
	Edits:     []dmp.Edit[string]{{Start: 2, End: 3, New: "C\n"}},
	LineEdits: []dmp.Edit[string]{{Start: 2, End: 4, New: "C\n\n"}},
}, {
	Name: "multiple_replace",
	In:   "A\nB\nC\nD\nE\nF\nG\n",
	Out:  "A\nH\nI\nJ\nE\nF\nK\n",
	Edits: []dmp.Edit[string]{
		{Start: 2, End: 8, New: "H\nI\nJ\n"},
		{Start: 12, End: 14, New: "K\n"},
	},
	NoDiff: true,
}}

// Check fails t unless diffs is a well-formed script from a to b: its
// first and second texts reconstruct the inputs, it holds no empty
// operations, and no two neighbors share an operation.
func Check(t testing.TB, a, b string, diffs []dmp.Diff) {
	t.Helper()
	require.Equal(t, a, dmp.Text1(diffs), "first text")
	require.Equal(t, b, dmp.Text2(diffs), "second text")
	for i, d := range diffs {
		assert.NotEmpty(t, d.Text, "empty operation at %d in %v", i, diffs)
		if i > 0 {
			assert.NotEqual(t, diffs[i-1].Op, d.Op, "repeated operation at %d in %v", i, diffs)
		}
	}
}

// EditLength returns the number of bytes deleted or inserted by diffs.
func EditLength(diffs []dmp.Diff) int {
	n := 0
	for _, d := range diffs {
		if d.Op != dmp.Equal {
			n += len(d.Text)
		}
	}
	return n
}

// LCS returns the length of the longest common subsequence of a and b by
// dynamic programming. A shortest script between a and b has an edit length
// of len(a)+len(b)-2*LCS(a, b).
func LCS(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// DiffTest runs compute over TestCases. compute is expected to perform a
// minimal search without a timeout.
func DiffTest(t *testing.T, compute func(a, b string) ([]dmp.Diff, error)) {
	t.Helper()
	for _, test := range TestCases {
		t.Run(test.Name, func(t *testing.T) {
			diffs, err := compute(test.In, test.Out)
			require.NoError(t, err)
			Check(t, test.In, test.Out, diffs)
			if !test.NoDiff {
				assert.Equal(t, test.Diffs, diffs)
			}
			assert.Equal(t, len(test.In)+len(test.Out)-2*LCS(test.In, test.Out), EditLength(diffs))
		})
	}
}
