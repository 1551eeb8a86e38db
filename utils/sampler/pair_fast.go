// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

var _ Pair = (*fastPair)(nil)

// fastPair selects pairs in a single pass with no retry loop.
//
// The first index is drawn unconditionally. The second index is drawn from a
// distribution that depends on whether the first landed on a denied index,
// which makes the joint distribution over pairs non-uniform. Callers that
// need exact uniformity should use uniformPair; callers that need bounded
// work per call should use this.
type fastPair struct {
	rng       *rng
	seededRNG *rng
	w         Weighted
}

func (s *fastPair) Sample(length, denyA, denyB uint64) (uint64, uint64) {
	validateDeny(length, denyA, denyB)

	a := s.rng.Uint64Inclusive(length - 1)

	var b uint64
	if a != denyA && a != denyB {
		// Draw from a range one smaller than the domain, shifting a
		// collision with [a] to the otherwise unreachable top value. This
		// yields b uniform over [0, length) excluding [a] without redrawing.
		b = s.rng.Uint64Inclusive(length - 2)
		if b == a {
			b = length - 1
		}
	} else {
		denyLow, denyHigh := denyA, denyB
		if denyLow > denyHigh {
			denyLow, denyHigh = denyHigh, denyLow
		}

		// [b] must avoid both denied indices. Split the domain into the
		// three ranges around them and pick one with probability
		// proportional to its width. A range of width 0 keeps weight 0 and
		// is never picked; it is not branch-skipped.
		starts := [3]uint64{0, denyLow + 1, denyHigh + 1}
		widths := []uint64{
			denyLow,
			denyHigh - denyLow - 1,
			length - denyHigh - 1,
		}
		if err := s.w.Initialize(widths); err != nil {
			// Unreachable: the widths sum to length - 2.
			panic(err)
		}

		// The widths sum to length - 2, so this draw always lands inside
		// the initialized distribution.
		idx, err := s.w.Sample(s.rng.Uint64Inclusive(length - 3))
		if err != nil {
			panic(err)
		}
		b = starts[idx] + s.rng.Uint64Inclusive(widths[idx]-1)
	}

	if a > b {
		a, b = b, a
	}
	return a, b
}

func (s *fastPair) Seed(seed int64) {
	s.rng = s.seededRNG
	s.rng.Seed(uint64(seed))
}

func (s *fastPair) ClearSeed() {
	s.rng = globalRNG
}
