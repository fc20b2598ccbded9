// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package myers implements the Myers diff algorithm.
//
// Only the linear-space variant is provided: MiddleSnake runs the forward and
// reverse searches simultaneously and reports where they meet, leaving the
// caller to split both sequences there and recurse on each half.
package myers

import (
	"errors"
	"time"
)

// Sources:
// https://neil.fraser.name/writing/diff/myers.pdf
// https://blog.jcoglan.com/2017/04/25/the-myers-diff-algorithm-part-3/

var (
	// ErrDeadline is returned by MiddleSnake when the deadline passes before
	// the two searches meet.
	ErrDeadline = errors.New("myers: deadline exceeded")

	// ErrNoMiddleSnake is returned by MiddleSnake when the two sequences have
	// no element in common, so that every edit path has length len(a)+len(b).
	ErrNoMiddleSnake = errors.New("myers: no middle snake")
)

// MiddleSnake finds a point (x, y) on some shortest edit path from a to b,
// such that a[:x]/b[:y] and a[x:]/b[y:] can be diffed independently.
//
// The deadline is polled once per edit distance step; a zero deadline never
// expires.
func MiddleSnake[E comparable](a, b []E, deadline time.Time) (x, y int, err error) {
	M, N := len(a), len(b)
	maxD := (M + N + 1) / 2
	offset := maxD
	// Two extra cells keep the seed below in range for one-element inputs.
	length := 2*maxD + 2

	// vf[k+offset] and vr[k+offset] hold the furthest x reached on diagonal k
	// by the forward and reverse searches; -1 marks an unreached diagonal.
	// The reverse search works on the mirrored sequences, so its x counts
	// from the end of a.
	vf := make([]int, length)
	vr := make([]int, length)
	for i := range vf {
		vf[i] = -1
		vr[i] = -1
	}
	vf[offset+1] = 0
	vr[offset+1] = 0

	delta := M - N
	// If the total number of elements is odd, the forward path collides with
	// the reverse path; otherwise the reverse path detects the collision.
	front := delta%2 != 0

	// Offsets for the start and end of the k loops. They prune diagonals that
	// have run off the edit graph.
	var kfStart, kfEnd, krStart, krEnd int
	for d := 0; d < maxD; d++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return 0, 0, ErrDeadline
		}

		// Walk the forward path one step.
		for k := -d + kfStart; k <= d-kfEnd; k += 2 {
			kOffset := offset + k
			var x int
			if k == -d || (k != d && vf[kOffset-1] < vf[kOffset+1]) {
				x = vf[kOffset+1] // down
			} else {
				x = vf[kOffset-1] + 1 // right
			}
			y := x - k

			// Diagonal moves while we have equal contents.
			for x < M && y < N && a[x] == b[y] {
				x++
				y++
			}
			vf[kOffset] = x

			switch {
			case x > M:
				// Ran off the right of the graph.
				kfEnd += 2
			case y > N:
				// Ran off the bottom of the graph.
				kfStart += 2
			case front:
				rOffset := offset + delta - k
				if rOffset >= 0 && rOffset < length && vr[rOffset] != -1 {
					// Mirror the reverse x onto the forward coordinates.
					if x >= M-vr[rOffset] {
						return x, y, nil
					}
				}
			}
		}

		// Walk the reverse path one step.
		for k := -d + krStart; k <= d-krEnd; k += 2 {
			kOffset := offset + k
			var x int
			if k == -d || (k != d && vr[kOffset-1] < vr[kOffset+1]) {
				x = vr[kOffset+1]
			} else {
				x = vr[kOffset-1] + 1
			}
			y := x - k

			for x < M && y < N && a[M-x-1] == b[N-y-1] {
				x++
				y++
			}
			vr[kOffset] = x

			switch {
			case x > M:
				// Ran off the left of the graph.
				krEnd += 2
			case y > N:
				// Ran off the top of the graph.
				krStart += 2
			case !front:
				fOffset := offset + delta - k
				if fOffset >= 0 && fOffset < length && vf[fOffset] != -1 {
					fx := vf[fOffset]
					fy := offset + fx - fOffset
					if fx >= M-x {
						return fx, fy, nil
					}
				}
			}
		}
	}

	// The searches never met: there is no commonality at all.
	return 0, 0, ErrNoMiddleSnake
}
