// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affix measures the shared leading and trailing runs of two
// sequences, and the overlap between the end of one and the start of the
// other.
//
// All lengths are in elements of the underlying sequence: bytes for text,
// symbols for interned lines.
package affix

import (
	"bytes"

	"github.com/pgavlin/text"
)

// Prefix returns the length of the longest common prefix of a and b.
func Prefix[E comparable](a, b []E) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// Suffix returns the length of the longest common suffix of a and b.
func Suffix[E comparable](a, b []E) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// PrefixText is Prefix for strings and byte slices.
func PrefixText[S1, S2 text.Text](a S1, b S2) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// SuffixText is Suffix for strings and byte slices.
func SuffixText[S1, S2 text.Text](a S1, b S2) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// HasPrefix reports whether s begins with prefix.
func HasPrefix[E comparable](s, prefix []E) bool {
	return len(s) >= len(prefix) && Prefix(s, prefix) == len(prefix)
}

// HasSuffix reports whether s ends with suffix.
func HasSuffix[E comparable](s, suffix []E) bool {
	return len(s) >= len(suffix) && Suffix(s, suffix) == len(suffix)
}

// Index returns the index of the first instance of sep in s, or -1 if sep
// is not present in s.
func Index[E comparable](s, sep []E) int {
	if bs, ok := any(s).([]byte); ok {
		return bytes.Index(bs, any(sep).([]byte))
	}
	n := len(sep)
	switch {
	case n == 0:
		return 0
	case n > len(s):
		return -1
	}
	first := sep[0]
	for i := 0; i+n <= len(s); i++ {
		if s[i] != first {
			continue
		}
		if Prefix(s[i+1:i+n], sep[1:]) == n-1 {
			return i
		}
	}
	return -1
}

// IndexFrom is Index, starting the search at s[from:]. The returned index is
// relative to s.
func IndexFrom[E comparable](s, sep []E, from int) int {
	if from > len(s) {
		return -1
	}
	i := Index(s[from:], sep)
	if i < 0 {
		return -1
	}
	return from + i
}

// Overlap returns the length of the longest suffix of a that is also a
// prefix of b.
//
// Overlap("123456xxx", "xxxabcd") == 3.
func Overlap[E comparable](a, b []E) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Only the last len(b) elements of a and the first len(a) elements of b
	// can take part in an overlap.
	switch {
	case len(a) > len(b):
		a = a[len(a)-len(b):]
	case len(a) < len(b):
		b = b[:len(a)]
	}
	n := len(a)
	if Prefix(a, b) == n {
		return n
	}

	// Start by looking for a single element match and grow the candidate
	// each time a longer match is found.
	best, length := 0, 1
	for length <= n {
		found := Index(b, a[n-length:])
		if found == -1 {
			return best
		}
		length += found
		if length > n {
			return best
		}
		if found == 0 || Prefix(a[n-length:], b[:length]) == length {
			best = length
			length++
		}
	}
	return best
}
