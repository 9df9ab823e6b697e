// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for constructor parameter validation.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an unknown topology name.
var ErrConstructFailed = errors.New("builder: construction failed")
