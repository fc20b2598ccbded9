// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmp

import (
	"slices"

	"github.com/pgavlin/dmp/affix"
)

// CleanupSemantic reduces the number of edits by eliminating semantically
// trivial equalities, then aligns the remaining edits on natural boundaries
// and extracts overlaps between adjacent deletions and insertions.
func CleanupSemantic(diffs []Diff) []Diff {
	return fromEdits(cleanupSemantic(toEdits(diffs)))
}

// CleanupSemanticLossless slides each single edit surrounded by equalities
// to the position where its ends fall on the best boundaries, such as line
// breaks or word edges:
//
//	The c<ins>at c</ins>ame. -> The <ins>cat </ins>came.
func CleanupSemanticLossless(diffs []Diff) []Diff {
	return fromEdits(cleanupSemanticLossless(toEdits(diffs)))
}

// CleanupEfficiency reduces the number of edits by eliminating
// operationally trivial equalities: those short enough that keeping them
// costs more than d's edit cost.
func (d *Differ) CleanupEfficiency(diffs []Diff) []Diff {
	return fromEdits(cleanupEfficiency(toEdits(diffs), d.cfg.EditCost))
}

func cleanupSemantic(diffs []edit[byte]) []edit[byte] {
	changed := false
	// Indices of equalities that may yet be eliminated.
	var equalities []int
	var lastEquality []byte
	// Bytes changed before and after the last equality.
	var ins1, del1, ins2, del2 int
	for i := 0; i < len(diffs); i++ {
		if diffs[i].op == Equal {
			equalities = append(equalities, i)
			ins1, del1 = ins2, del2
			ins2, del2 = 0, 0
			lastEquality = diffs[i].text
			continue
		}

		if diffs[i].op == Insert {
			ins2 += len(diffs[i].text)
		} else {
			del2 += len(diffs[i].text)
		}

		// Eliminate an equality no longer than the edits on both sides of it.
		n := len(lastEquality)
		if n == 0 || n > max(ins1, del1) || n > max(ins2, del2) {
			continue
		}

		// Duplicate the equality as a deletion and turn the existing one into an
		// insertion.
		at := equalities[len(equalities)-1]
		diffs = slices.Insert(diffs, at, edit[byte]{Delete, lastEquality})
		diffs[at+1].op = Insert

		// Throw away the equality we just deleted, and step back to the one
		// before it, which may now be eliminable.
		equalities = equalities[:len(equalities)-1]
		if len(equalities) > 0 {
			equalities = equalities[:len(equalities)-1]
		}
		i = -1
		if len(equalities) > 0 {
			i = equalities[len(equalities)-1]
		}

		ins1, del1, ins2, del2 = 0, 0, 0, 0
		lastEquality = nil
		changed = true
	}

	if changed {
		diffs = cleanupMerge(diffs)
	}
	diffs = cleanupSemanticLossless(diffs)

	// Find overlaps between deletions and insertions:
	//
	//	<del>abcxxx</del><ins>xxxdef</ins> -> <del>abc</del>xxx<ins>def</ins>
	//	<del>xxxabc</del><ins>defxxx</ins> -> <ins>def</ins>xxx<del>abc</del>
	//
	// An overlap is only extracted if it is at least half as long as the
	// deletion or the insertion.
	for i := 1; i < len(diffs); i++ {
		if diffs[i-1].op != Delete || diffs[i].op != Insert {
			continue
		}
		deletion, insertion := diffs[i-1].text, diffs[i].text
		overlap1 := affix.Overlap(deletion, insertion)
		overlap2 := affix.Overlap(insertion, deletion)
		if overlap1 >= overlap2 {
			if 2*overlap1 >= len(deletion) || 2*overlap1 >= len(insertion) {
				diffs = slices.Insert(diffs, i, edit[byte]{Equal, insertion[:overlap1]})
				diffs[i-1].text = deletion[:len(deletion)-overlap1]
				diffs[i+1].text = insertion[overlap1:]
				i++
			}
		} else {
			if 2*overlap2 >= len(deletion) || 2*overlap2 >= len(insertion) {
				// Reverse overlap: swap the edits around the equality.
				diffs = slices.Insert(diffs, i, edit[byte]{Equal, deletion[:overlap2]})
				diffs[i-1] = edit[byte]{Insert, insertion[:len(insertion)-overlap2]}
				diffs[i+1] = edit[byte]{Delete, deletion[overlap2:]}
				i++
			}
		}
		i++
	}
	return diffs
}

func cleanupSemanticLossless(diffs []edit[byte]) []edit[byte] {
	// The first and last elements never need checking.
	for i := 1; i < len(diffs)-1; i++ {
		if diffs[i-1].op != Equal || diffs[i+1].op != Equal {
			continue
		}
		eq1, ed, eq2 := diffs[i-1].text, diffs[i].text, diffs[i+1].text

		// First, shift the edit as far left as possible.
		if n := affix.Suffix(eq1, ed); n > 0 {
			common := ed[len(ed)-n:]
			eq1 = eq1[:len(eq1)-n]
			ed = join(common, ed[:len(ed)-n])
			eq2 = join(common, eq2)
		}

		// Second, step right one byte at a time looking for the best fit.
		bestEq1, bestEd, bestEq2 := eq1, ed, eq2
		bestScore := semanticScore(eq1, ed) + semanticScore(ed, eq2)
		for len(ed) > 0 && len(eq2) > 0 && ed[0] == eq2[0] {
			eq1 = join(eq1, ed[:1])
			ed = join(ed[1:], eq2[:1])
			eq2 = eq2[1:]
			// The >= favors trailing over leading whitespace on edits.
			if score := semanticScore(eq1, ed) + semanticScore(ed, eq2); score >= bestScore {
				bestScore = score
				bestEq1, bestEd, bestEq2 = eq1, ed, eq2
			}
		}

		if len(diffs[i-1].text) == len(bestEq1) {
			continue
		}
		// An improvement: save it back to the script.
		diffs[i].text = bestEd
		if len(bestEq2) > 0 {
			diffs[i+1].text = bestEq2
		} else {
			diffs = slices.Delete(diffs, i+1, i+2)
		}
		if len(bestEq1) > 0 {
			diffs[i-1].text = bestEq1
		} else {
			diffs = slices.Delete(diffs, i-1, i)
			i--
		}
		if len(bestEq2) == 0 {
			i--
		}
	}
	return diffs
}

// semanticScore rates the boundary between one and two from 6 (best) to 0.
//
//	6: edge of the text
//	5: blank line
//	4: line break
//	3: end of sentence
//	2: whitespace
//	1: non-alphanumeric
//	0: inside a word
func semanticScore(one, two []byte) int {
	if len(one) == 0 || len(two) == 0 {
		return 6
	}

	c1, c2 := one[len(one)-1], two[0]
	nonAlnum1, nonAlnum2 := !isAlnum(c1), !isAlnum(c2)
	space1 := nonAlnum1 && isSpace(c1)
	space2 := nonAlnum2 && isSpace(c2)
	break1 := space1 && isLineBreak(c1)
	break2 := space2 && isLineBreak(c2)
	blank1 := break1 && blankLineEnd(one)
	blank2 := break2 && blankLineStart(two)

	switch {
	case blank1 || blank2:
		return 5
	case break1 || break2:
		return 4
	case nonAlnum1 && !space1 && space2:
		return 3
	case sentenceEnd(one) && !space2:
		return 3
	case space1 || space2:
		return 2
	case nonAlnum1 || nonAlnum2:
		return 1
	}
	return 0
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLineBreak(c byte) bool {
	return c == '\n' || c == '\r'
}

// sentenceEnd reports whether s ends in punctuation followed by a single
// space that is not a line break, as in "x. ".
func sentenceEnd(s []byte) bool {
	if len(s) < 2 {
		return false
	}
	c, p := s[len(s)-1], s[len(s)-2]
	return isSpace(c) && !isLineBreak(c) && !isAlnum(p) && !isSpace(p)
}

// blankLineEnd reports whether s ends with \n\r?\n.
func blankLineEnd(s []byte) bool {
	n := len(s)
	if n < 2 || s[n-1] != '\n' {
		return false
	}
	if s[n-2] == '\n' {
		return true
	}
	return n >= 3 && s[n-2] == '\r' && s[n-3] == '\n'
}

// blankLineStart reports whether s starts with \r?\n\r?\n.
func blankLineStart(s []byte) bool {
	if len(s) > 0 && s[0] == '\r' {
		s = s[1:]
	}
	if len(s) == 0 || s[0] != '\n' {
		return false
	}
	s = s[1:]
	if len(s) > 0 && s[0] == '\r' {
		s = s[1:]
	}
	return len(s) > 0 && s[0] == '\n'
}

func cleanupEfficiency(diffs []edit[byte], editCost int) []edit[byte] {
	changed := false
	// Indices of equalities that may yet be eliminated.
	var equalities []int
	var lastEquality []byte
	// Whether there is an insertion or deletion before or after the last
	// equality.
	var preIns, preDel, postIns, postDel bool
	for i := 0; i < len(diffs); i++ {
		if diffs[i].op == Equal {
			if len(diffs[i].text) < editCost && (postIns || postDel) {
				// Candidate found.
				equalities = append(equalities, i)
				preIns, preDel = postIns, postDel
				lastEquality = diffs[i].text
			} else {
				// Not a candidate, and can never become one.
				equalities = equalities[:0]
				lastEquality = nil
			}
			postIns, postDel = false, false
			continue
		}

		if diffs[i].op == Delete {
			postDel = true
		} else {
			postIns = true
		}

		// Five types to be split:
		//
		//	<ins>A</ins><del>B</del>XY<ins>C</ins><del>D</del>
		//	<ins>A</ins>X<ins>C</ins><del>D</del>
		//	<ins>A</ins><del>B</del>X<ins>C</ins>
		//	<ins>A</del>X<ins>C</ins><del>D</del>
		//	<ins>A</ins><del>B</del>X<del>C</del>
		sides := 0
		for _, b := range [...]bool{preIns, preDel, postIns, postDel} {
			if b {
				sides++
			}
		}
		n := len(lastEquality)
		if n == 0 || !(sides == 4 || 2*n < editCost && sides == 3) {
			continue
		}

		at := equalities[len(equalities)-1]
		diffs = slices.Insert(diffs, at, edit[byte]{Delete, lastEquality})
		diffs[at+1].op = Insert
		equalities = equalities[:len(equalities)-1]
		lastEquality = nil

		if preIns && preDel {
			// No changes made which could affect previous entry, keep going.
			postIns, postDel = true, true
			equalities = equalities[:0]
		} else {
			if len(equalities) > 0 {
				equalities = equalities[:len(equalities)-1]
			}
			i = -1
			if len(equalities) > 0 {
				i = equalities[len(equalities)-1]
			}
			postIns, postDel = false, false
		}
		changed = true
	}

	if changed {
		diffs = cleanupMerge(diffs)
	}
	return diffs
}
