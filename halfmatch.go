// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmp

import (
	"github.com/golang/glog"
	"github.com/pgavlin/dmp/affix"
)

// HalfMatch is a split of two texts around a common substring at least half
// as long as the longer text:
//
//	text1 == PrefixA + Common + SuffixA
//	text2 == PrefixB + Common + SuffixB
type HalfMatch struct {
	PrefixA, SuffixA string
	PrefixB, SuffixB string
	Common           string
}

// HalfMatch reports whether text1 and text2 share a substring at least half
// the length of the longer text, and if so how they split around it.
//
// The speedup can produce non-minimal diffs, so nothing is reported when
// d has no timeout.
func (d *Differ) HalfMatch(text1, text2 string) (HalfMatch, bool) {
	hm := halfMatch(d.cfg, []byte(text1), []byte(text2))
	if hm == nil {
		return HalfMatch{}, false
	}
	return HalfMatch{
		PrefixA: string(hm.prefixA),
		SuffixA: string(hm.suffixA),
		PrefixB: string(hm.prefixB),
		SuffixB: string(hm.suffixB),
		Common:  string(hm.common),
	}, true
}

type halfSplit[E comparable] struct {
	prefixA, suffixA []E
	prefixB, suffixB []E
	common           []E
}

func halfMatch[E comparable](cfg Config, a, b []E) *halfSplit[E] {
	if cfg.Timeout <= 0 {
		// Don't risk returning a non-optimal diff if we have unlimited time.
		return nil
	}

	long, short := a, b
	if len(a) <= len(b) {
		long, short = b, a
	}
	if len(long) < 4 || len(short)*2 < len(long) {
		return nil
	}

	// First check if the second quarter is the seed for a half-match, then
	// check the third quarter.
	hm1 := halfMatchAt(long, short, (len(long)+3)/4)
	hm2 := halfMatchAt(long, short, (len(long)+1)/2)

	var hm *halfSplit[E]
	switch {
	case hm1 == nil && hm2 == nil:
		return nil
	case hm2 == nil:
		hm = hm1
	case hm1 == nil:
		hm = hm2
	case len(hm1.common) > len(hm2.common):
		hm = hm1
	default:
		hm = hm2
	}

	// halfMatchAt splits long first; put the halves back in input order.
	if len(a) <= len(b) {
		hm.prefixA, hm.suffixA, hm.prefixB, hm.suffixB = hm.prefixB, hm.suffixB, hm.prefixA, hm.suffixA
	}
	glog.V(2).Infof("dmp: half-match of %d common elements in %d and %d", len(hm.common), len(a), len(b))
	return hm
}

// halfMatchAt looks for a substring of short that matches the quarter-length
// seed of long starting at i, extended as far as possible in both directions.
// The result is nil unless the match is at least half the length of long.
// In the result, the A halves come from long and the B halves from short.
func halfMatchAt[E comparable](long, short []E, i int) *halfSplit[E] {
	seed := long[i : i+len(long)/4]

	var best halfSplit[E]
	bestLen := 0
	for j := affix.Index(short, seed); j != -1; j = affix.IndexFrom(short, seed, j+1) {
		prefixLen := affix.Prefix(long[i:], short[j:])
		suffixLen := affix.Suffix(long[:i], short[:j])
		if n := suffixLen + prefixLen; n > bestLen {
			bestLen = n
			best = halfSplit[E]{
				prefixA: long[:i-suffixLen],
				suffixA: long[i+prefixLen:],
				prefixB: short[:j-suffixLen],
				suffixB: short[j+prefixLen:],
				common:  short[j-suffixLen : j+prefixLen],
			}
		}
	}
	if bestLen*2 < len(long) {
		return nil
	}
	return &best
}
