// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// Pair samples two distinct indices from a provided range, never returning
// one denied pair of indices.
type Pair interface {
	// Sample returns two distinct indices in [0, length), ordered ascending.
	// The returned indices are never exactly the denied pair, in either
	// order.
	//
	// Sample panics if length < 3, if the denied indices are equal, or if
	// either denied index is outside [0, length). These are caller contract
	// violations, not recoverable conditions.
	Sample(length, denyA, denyB uint64) (uint64, uint64)

	Seed(int64)
	ClearSeed()
}

// NewUniformPair returns a sampler that selects every valid pair with equal
// probability. A draw that reproduces the denied pair is rejected and
// redrawn, so a single call may consume an unbounded number of draws from
// the underlying source.
func NewUniformPair() Pair {
	p := &uniformPair{}
	_ = p.u.Initialize(0)
	return p
}

// NewFastPair returns a sampler that never redraws. It performs a constant
// number of draws per call but does not select every valid pair with equal
// probability.
func NewFastPair() Pair {
	return &fastPair{
		rng:       globalRNG,
		seededRNG: newRNG(),
		w:         NewWeighted(),
	}
}

func validateDeny(length, denyA, denyB uint64) {
	switch {
	case length < 3:
		panic("not enough indices to pick from")
	case denyA == denyB:
		panic("denied indices must be distinct")
	case denyA >= length || denyB >= length:
		panic(fmt.Sprintf(
			"denied pair (%d, %d) is not fully contained in range [0, %d)",
			denyA,
			denyB,
			length,
		))
	}
}
