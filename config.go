// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmp

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// ErrResourceLimit is returned when an input would exhaust the configured
// recursion depth or input size. It is never returned for a missed
// deadline: that only degrades the script.
var ErrResourceLimit = errors.New("dmp: resource limit exceeded")

// Defaults used by DefaultConfig.
const (
	DefaultTimeout  = time.Second
	DefaultEditCost = 4
	DefaultMaxDepth = 512
)

// Config tunes a Differ.
type Config struct {
	// How long to search for a minimal diff before settling for a coarser
	// one. Zero means no limit; an unlimited search also disables the
	// half-match heuristic, which can produce non-minimal scripts.
	Timeout time.Duration

	// The cost of an empty edit operation in terms of edit bytes, used by
	// CleanupEfficiency.
	EditCost int

	// How deeply the engine may nest while splitting the problem (half-match,
	// bisection and line-mode re-diffing each nest once). Zero means
	// DefaultMaxDepth.
	MaxDepth int

	// The largest combined length of the two inputs accepted by Main and
	// Bisect. Zero means no limit.
	MaxInputLen int
}

// DefaultConfig returns the configuration used by Text.
func DefaultConfig() Config {
	return Config{
		Timeout:  DefaultTimeout,
		EditCost: DefaultEditCost,
		MaxDepth: DefaultMaxDepth,
	}
}

// Validate reports the first field of c that holds an invalid value.
func (c Config) Validate() error {
	switch {
	case c.Timeout < 0:
		return fmt.Errorf("invalid timeout %v: must not be negative", c.Timeout)
	case c.EditCost < 0:
		return fmt.Errorf("invalid edit cost %d: must not be negative", c.EditCost)
	case c.MaxDepth < 0:
		return fmt.Errorf("invalid max depth %d: must not be negative", c.MaxDepth)
	case c.MaxInputLen < 0:
		return fmt.Errorf("invalid max input length %d: must not be negative", c.MaxInputLen)
	}
	return nil
}

func (c Config) maxDepth() int {
	if c.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

// CreateFlags registers flags on f that set the fields of c. The current
// values of c are used as the flag defaults.
func (c *Config) CreateFlags(f *flag.FlagSet) {
	f.DurationVar(
		&c.Timeout, "diff-timeout", c.Timeout, `
		How long to search for a minimal diff before settling for a coarser
		one. Zero means no limit.
		`)

	f.IntVar(
		&c.EditCost, "diff-edit-cost", c.EditCost, `
		The cost of an empty edit operation in terms of edit characters, used
		when cleaning up a diff for efficiency.
		`)

	f.IntVar(
		&c.MaxDepth, "diff-max-depth", c.MaxDepth, `
		How deeply the diff engine may nest while splitting the texts.
		Zero selects the built-in default.
		`)

	f.IntVar(
		&c.MaxInputLen, "diff-max-input", c.MaxInputLen, `
		The largest combined length in bytes of the two texts that will be
		diffed. Zero means no limit.
		`)
}
