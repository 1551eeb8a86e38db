// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

var uniformSamplers = []struct {
	name       string
	newSampler func() Uniform
}{
	{
		name:       "replacer",
		newSampler: func() Uniform { return &uniformReplacer{} },
	},
	{
		name:       "resample",
		newSampler: func() Uniform { return &uniformResample{} },
	},
}

func TestUniformSampleMoreThanRange(t *testing.T) {
	for _, s := range uniformSamplers {
		t.Run(s.name, func(t *testing.T) {
			u := s.newSampler()
			require.NoError(t, u.Initialize(3))

			_, err := u.Sample(4)
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestUniformEmptyRange(t *testing.T) {
	for _, s := range uniformSamplers {
		t.Run(s.name, func(t *testing.T) {
			u := s.newSampler()
			require.NoError(t, u.Initialize(0))

			_, err := u.Next()
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestUniformSingleton(t *testing.T) {
	for _, s := range uniformSamplers {
		t.Run(s.name, func(t *testing.T) {
			u := s.newSampler()
			require.NoError(t, u.Initialize(1))

			val, err := u.Sample(1)
			require.NoError(t, err)
			require.Equal(t, []uint64{0}, val)
		})
	}
}

func TestUniformSampleIsPermutation(t *testing.T) {
	for _, s := range uniformSamplers {
		t.Run(s.name, func(t *testing.T) {
			u := s.newSampler()
			require.NoError(t, u.Initialize(5))

			val, err := u.Sample(5)
			require.NoError(t, err)

			slices.Sort(val)
			require.Equal(t, []uint64{0, 1, 2, 3, 4}, val)
		})
	}
}

func TestUniformSampleIsDistinct(t *testing.T) {
	for _, s := range uniformSamplers {
		t.Run(s.name, func(t *testing.T) {
			u := s.newSampler()
			require.NoError(t, u.Initialize(100))

			for i := 0; i < 10; i++ {
				val, err := u.Sample(7)
				require.NoError(t, err)

				seen := make(map[uint64]struct{}, len(val))
				for _, v := range val {
					require.Less(t, v, uint64(100))
					require.NotContains(t, seen, v)
					seen[v] = struct{}{}
				}
			}
		})
	}
}

func TestUniformNextExhaustsRange(t *testing.T) {
	for _, s := range uniformSamplers {
		t.Run(s.name, func(t *testing.T) {
			u := s.newSampler()
			require.NoError(t, u.Initialize(10))
			u.Reset()

			drawn := make([]uint64, 10)
			for i := range drawn {
				val, err := u.Next()
				require.NoError(t, err)
				drawn[i] = val
			}

			_, err := u.Next()
			require.ErrorIs(t, err, ErrOutOfRange)

			slices.Sort(drawn)
			require.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, drawn)
		})
	}
}

func TestUniformSeedDeterminism(t *testing.T) {
	for _, s := range uniformSamplers {
		for _, seed := range []int64{1, 7, 1337} {
			t.Run(fmt.Sprintf("%s seed %d", s.name, seed), func(t *testing.T) {
				u0 := s.newSampler()
				u1 := s.newSampler()
				require.NoError(t, u0.Initialize(1000))
				require.NoError(t, u1.Initialize(1000))

				u0.Seed(seed)
				u1.Seed(seed)
				for i := 0; i < 10; i++ {
					val0, err := u0.Sample(25)
					require.NoError(t, err)
					val1, err := u1.Sample(25)
					require.NoError(t, err)
					require.Equal(t, val0, val1)
				}
			})
		}
	}
}
