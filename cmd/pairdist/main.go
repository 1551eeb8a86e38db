// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// pairdist draws pairs from one of the samplers and prints the empirical
// distribution, to make the uniform/fast trade-off visible on real draws.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/indexpair/utils/logging"
	"github.com/ava-labs/indexpair/utils/sampler"
)

func main() {
	fs := pflag.NewFlagSet("pairdist", pflag.ExitOnError)
	length := fs.Uint64("length", 5, "number of indexable positions")
	denyA := fs.Uint64("deny-a", 0, "first denied index")
	denyB := fs.Uint64("deny-b", 2, "second denied index")
	trials := fs.Int("trials", 100000, "number of pairs to draw")
	seed := fs.Int64("seed", 0, "seed for the sampler; 0 leaves it unseeded")
	samplerName := fs.String("sampler", "uniform", `sampler to run ("uniform" or "fast")`)
	logLevelStr := fs.String("log-level", logging.Info.String(), "log level (off, fatal, error, warn, info, debug, verbo)")
	_ = fs.Parse(os.Args[1:])

	logLevel, err := logging.ToLevel(*logLevelStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.NewLogger("pairdist", logLevel, os.Stderr)
	defer log.Stop()

	var s sampler.Pair
	switch *samplerName {
	case "uniform":
		s = sampler.NewUniformPair()
	case "fast":
		s = sampler.NewFastPair()
	default:
		log.Fatal("unknown sampler",
			zap.String("sampler", *samplerName),
		)
	}
	if *seed != 0 {
		s.Seed(*seed)
	}

	// Sample panics on invalid length/deny combinations.
	defer func() {
		if r := recover(); r != nil {
			log.Fatal("invalid sampling parameters",
				zap.Any("reason", r),
			)
		}
	}()

	log.Info("sampling",
		zap.String("sampler", *samplerName),
		zap.Uint64("length", *length),
		zap.Uint64("denyA", *denyA),
		zap.Uint64("denyB", *denyB),
		zap.Int("trials", *trials),
	)

	counts := make(map[[2]uint64]int)
	start := time.Now()
	for i := 0; i < *trials; i++ {
		low, high := s.Sample(*length, *denyA, *denyB)
		counts[[2]uint64{low, high}]++
	}
	log.Info("sampling complete",
		zap.Int("distinctPairs", len(counts)),
		zap.Duration("duration", time.Since(start)),
	)

	pairs := maps.Keys(counts)
	slices.SortFunc(pairs, func(a, b [2]uint64) bool {
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})
	for _, pair := range pairs {
		count := counts[pair]
		fmt.Printf("(%d, %d)\t%d\t%.2f%%\n",
			pair[0],
			pair[1],
			count,
			100*float64(count)/float64(*trials),
		)
	}
}
