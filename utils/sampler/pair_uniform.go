// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

var _ Pair = (*uniformPair)(nil)

// uniformPair selects pairs by drawing two distinct indices uniformly and
// rejecting only a draw that reproduces the denied pair.
//
// Because the underlying draw is exactly uniform over all unordered pairs of
// distinct indices, conditioning on the draw not being the denied pair keeps
// the remaining pairs exactly uniform. The retry loop is intentionally
// uncapped; any cap would skew the distribution.
//
// The expected number of draws per call is 1 / (1 - 1/C(length, 2)).
type uniformPair struct {
	u uniformReplacer
}

func (s *uniformPair) Sample(length, denyA, denyB uint64) (uint64, uint64) {
	validateDeny(length, denyA, denyB)

	// Track the requested range directly so that the rng selection made by
	// Seed or ClearSeed survives across calls with different lengths.
	s.u.length = length

	for {
		indices, err := s.u.Sample(2)
		if err != nil {
			// Unreachable for any length validateDeny admits.
			panic(err)
		}

		a, b := indices[0], indices[1]
		if (a != denyA && a != denyB) || (b != denyA && b != denyB) {
			if a > b {
				a, b = b, a
			}
			return a, b
		}
	}
}

func (s *uniformPair) Seed(seed int64) {
	s.u.Seed(seed)
}

func (s *uniformPair) ClearSeed() {
	s.u.ClearSeed()
}
