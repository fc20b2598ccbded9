// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmp

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang/glog"
	"github.com/pgavlin/dmp/affix"
	"github.com/pgavlin/dmp/myers"
)

// A Differ computes edit scripts under a fixed Config. It holds no mutable
// state, so one Differ may serve concurrent calls.
type Differ struct {
	cfg Config
}

// New returns a Differ for cfg.
func New(cfg Config) (*Differ, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Differ{cfg: cfg}, nil
}

// Config returns the configuration of d.
func (d *Differ) Config() Config {
	return d.cfg
}

// run is the state of a single top-level call.
type run struct {
	cfg      Config
	deadline time.Time
	depth    int
	err      error
}

func (d *Differ) newRun(deadline time.Time) *run {
	return &run{cfg: d.cfg, deadline: deadline}
}

// enter records one more level of nesting. It reports false, and sets the
// sticky error, once the configured depth is exceeded.
func (r *run) enter() bool {
	if r.err != nil {
		return false
	}
	r.depth++
	if limit := r.cfg.maxDepth(); r.depth > limit {
		r.err = fmt.Errorf("%w: nesting depth exceeds %d", ErrResourceLimit, limit)
		return false
	}
	return true
}

func (r *run) leave() {
	r.depth--
}

func (d *Differ) checkInput(text1, text2 string) error {
	if limit := d.cfg.MaxInputLen; limit > 0 && len(text1)+len(text2) > limit {
		return fmt.Errorf("%w: input length %d exceeds %d", ErrResourceLimit, len(text1)+len(text2), limit)
	}
	return nil
}

// Main computes an edit script from text1 to text2.
//
// If checkLines is true and both texts are long, a fast line-level diff is
// run first to find the changed regions, which are then diffed byte by
// byte. This is faster on large multi-line inputs but may be less minimal.
//
// Main only fails with an error wrapping ErrResourceLimit.
func (d *Differ) Main(text1, text2 string, checkLines bool) ([]Diff, error) {
	if err := d.checkInput(text1, text2); err != nil {
		return nil, err
	}

	var deadline time.Time
	if d.cfg.Timeout > 0 {
		deadline = time.Now().Add(d.cfg.Timeout)
	}
	r := d.newRun(deadline)

	var lines func(a, b []byte) []edit[byte]
	if checkLines {
		lines = r.lineMode
	}
	diffs := diffMain(r, []byte(text1), []byte(text2), lines)
	if r.err != nil {
		glog.Warningf("dmp: abandoning diff of %d and %d bytes: %v", len(text1), len(text2), r.err)
		return nil, r.err
	}
	return fromEdits(diffs), nil
}

// Bisect finds the middle snake of text1 and text2, splits the problem in
// two and diffs each half. A zero deadline never expires. If the deadline
// passes first, the script is a single deletion followed by a single
// insertion.
func (d *Differ) Bisect(text1, text2 string, deadline time.Time) ([]Diff, error) {
	if err := d.checkInput(text1, text2); err != nil {
		return nil, err
	}
	r := d.newRun(deadline)
	diffs := bisect(r, []byte(text1), []byte(text2))
	if r.err != nil {
		return nil, r.err
	}
	return fromEdits(diffs), nil
}

// replace is the script that deletes all of a and inserts all of b.
func replace[E comparable](a, b []E) []edit[E] {
	diffs := make([]edit[E], 0, 2)
	if len(a) > 0 {
		diffs = append(diffs, edit[E]{Delete, a})
	}
	if len(b) > 0 {
		diffs = append(diffs, edit[E]{Insert, b})
	}
	return diffs
}

// diffMain diffs a and b, trimming their common prefix and suffix first.
// lines, when non-nil, handles inputs big enough for line mode.
func diffMain[E comparable](r *run, a, b []E, lines func(a, b []E) []edit[E]) []edit[E] {
	if slices.Equal(a, b) {
		if len(a) == 0 {
			return nil
		}
		return []edit[E]{{Equal, a}}
	}
	if !r.enter() {
		return replace(a, b)
	}
	defer r.leave()

	// Trim off the common prefix and suffix.
	n := affix.Prefix(a, b)
	prefix := a[:n]
	a, b = a[n:], b[n:]

	n = affix.Suffix(a, b)
	suffix := a[len(a)-n:]
	a, b = a[:len(a)-n], b[:len(b)-n]

	diffs := compute(r, a, b, lines)

	// Restore the prefix and suffix.
	if len(prefix) > 0 {
		diffs = slices.Insert(diffs, 0, edit[E]{Equal, prefix})
	}
	if len(suffix) > 0 {
		diffs = append(diffs, edit[E]{Equal, suffix})
	}
	return cleanupMerge(diffs)
}

// compute diffs a and b, which share no common prefix or suffix.
func compute[E comparable](r *run, a, b []E, lines func(a, b []E) []edit[E]) []edit[E] {
	if len(a) == 0 {
		return []edit[E]{{Insert, b}}
	}
	if len(b) == 0 {
		return []edit[E]{{Delete, a}}
	}

	long, short := b, a
	if len(a) > len(b) {
		long, short = a, b
	}
	if i := affix.Index(long, short); i != -1 {
		// The shorter text is inside the longer text.
		op := Insert
		if len(a) > len(b) {
			op = Delete
		}
		return []edit[E]{
			{op, long[:i]},
			{Equal, short},
			{op, long[i+len(short):]},
		}
	}

	if len(short) == 1 {
		// After the containment check, a single element can't be an
		// equality.
		return []edit[E]{{Delete, a}, {Insert, b}}
	}

	if hm := halfMatch(r.cfg, a, b); hm != nil {
		// Send both pairs off for separate processing.
		diffs := diffMain(r, hm.prefixA, hm.prefixB, lines)
		diffs = append(diffs, edit[E]{Equal, hm.common})
		return append(diffs, diffMain(r, hm.suffixA, hm.suffixB, lines)...)
	}

	if lines != nil && len(a) > 100 && len(b) > 100 {
		return lines(a, b)
	}

	return bisect(r, a, b)
}

// bisect splits a and b at their middle snake and diffs the halves with
// line mode disabled.
func bisect[E comparable](r *run, a, b []E) []edit[E] {
	x, y, err := myers.MiddleSnake(a, b, r.deadline)
	if err != nil {
		if errors.Is(err, myers.ErrDeadline) {
			glog.V(1).Infof("dmp: deadline passed while bisecting %d and %d elements", len(a), len(b))
		}
		return replace(a, b)
	}
	diffs := diffMain(r, a[:x], b[:y], nil)
	return append(diffs, diffMain(r, a[x:], b[y:], nil)...)
}
