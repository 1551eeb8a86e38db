// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var weightedSamplers = []struct {
	name       string
	newSampler func() Weighted
}{
	{
		name:       "heap",
		newSampler: func() Weighted { return &weightedHeap{} },
	},
	{
		name:       "linear",
		newSampler: func() Weighted { return &weightedLinear{} },
	},
	{
		name:       "uniform",
		newSampler: func() Weighted { return &weightedUniform{maxWeight: 1 << 10} },
	},
}

func TestWeightedInitializeOverflow(t *testing.T) {
	for _, s := range weightedSamplers {
		t.Run(s.name, func(t *testing.T) {
			w := s.newSampler()
			require.Error(t, w.Initialize([]uint64{1, math.MaxUint64}))
		})
	}
}

func TestWeightedOutOfRange(t *testing.T) {
	for _, s := range weightedSamplers {
		t.Run(s.name, func(t *testing.T) {
			w := s.newSampler()
			require.NoError(t, w.Initialize([]uint64{1}))

			_, err := w.Sample(1)
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestWeightedSingleton(t *testing.T) {
	for _, s := range weightedSamplers {
		t.Run(s.name, func(t *testing.T) {
			w := s.newSampler()
			require.NoError(t, w.Initialize([]uint64{1}))

			index, err := w.Sample(0)
			require.NoError(t, err)
			require.Zero(t, index)
		})
	}
}

// Every sample value must land on an index with probability exactly
// proportional to its weight, so iterating over the full value range must
// reproduce the weights.
func TestWeightedValueToIndexCounts(t *testing.T) {
	weights := []uint64{1, 1, 2, 3, 4}
	totalWeight := uint64(11)

	for _, s := range weightedSamplers {
		t.Run(s.name, func(t *testing.T) {
			w := s.newSampler()
			require.NoError(t, w.Initialize(weights))

			counts := make([]uint64, len(weights))
			for value := uint64(0); value < totalWeight; value++ {
				index, err := w.Sample(value)
				require.NoError(t, err)
				counts[index]++
			}
			require.Equal(t, weights, counts)
		})
	}
}

// Indices with weight 0 must never be sampled, including at the boundaries
// of the weight slice.
func TestWeightedZeroWeightNeverSampled(t *testing.T) {
	weights := []uint64{0, 3, 0, 2, 0}
	totalWeight := uint64(5)

	for _, s := range weightedSamplers {
		t.Run(s.name, func(t *testing.T) {
			w := s.newSampler()
			require.NoError(t, w.Initialize(weights))

			counts := make([]uint64, len(weights))
			for value := uint64(0); value < totalWeight; value++ {
				index, err := w.Sample(value)
				require.NoError(t, err)
				counts[index]++
			}
			require.Equal(t, weights, counts)
		})
	}
}

func TestWeightedInitializeReuse(t *testing.T) {
	for _, s := range weightedSamplers {
		t.Run(s.name, func(t *testing.T) {
			w := s.newSampler()
			require.NoError(t, w.Initialize([]uint64{2, 5, 1}))
			require.NoError(t, w.Initialize([]uint64{0, 1}))

			index, err := w.Sample(0)
			require.NoError(t, err)
			require.Equal(t, 1, index)

			_, err = w.Sample(1)
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}
