// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmp

import (
	"github.com/pgavlin/text"
)

var defaultDiffer = &Differ{cfg: DefaultConfig()}

// Text computes the differences between two texts using DefaultConfig, with
// line mode enabled. The result may split multi-byte UTF-8 sequences.
func Text[S1, S2 text.Text](before S1, after S2) ([]Diff, error) {
	if string(before) == string(after) {
		if len(before) == 0 {
			return nil, nil
		}
		return []Diff{{Equal, string(before)}}, nil // common case
	}
	return defaultDiffer.Main(string(before), string(after), true)
}

// TextEdits is Text, expressed as replacements of byte ranges of before.
// The new text of each edit is a slice of after.
func TextEdits[S1, S2 text.Text](before S1, after S2) ([]Edit[S2], error) {
	if string(before) == string(after) {
		return nil, nil
	}
	diffs, err := defaultDiffer.Main(string(before), string(after), true)
	if err != nil {
		return nil, err
	}
	return offsetEdits(diffs, after), nil
}
