// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelRoundTrip(t *testing.T) {
	levels := []Level{Off, Fatal, Error, Warn, Info, Debug, Verbo}
	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			parsed, err := ToLevel(level.String())
			require.NoError(t, err)
			require.Equal(t, level, parsed)
		})
	}
}

func TestToLevelCaseInsensitive(t *testing.T) {
	parsed, err := ToLevel("info")
	require.NoError(t, err)
	require.Equal(t, Info, parsed)
}

func TestToLevelUnknown(t *testing.T) {
	_, err := ToLevel("trace2")
	require.Error(t, err)
}
