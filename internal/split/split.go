// Package split shuffles the lines of a file with a fixed seed and partitions
// them into train and test files.
//
// The shuffle is a Fisher-Yates pass from math/rand/v2 driven by a PCG
// generator, so a given seed and input always produce the same split.
package split

import (
	"fmt"
	"log/slog"

	"corpusprep/internal/fileutil"
	"corpusprep/internal/logging"
	"corpusprep/internal/randsrc"
)

const (
	DefaultSeed       = 42
	DefaultTrainRatio = 0.8
)

// Options configures a split.
type Options struct {
	Seed       uint64
	TrainRatio float64
}

// DefaultOptions returns seed 42 and an 80/20 split.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed, TrainRatio: DefaultTrainRatio}
}

// Result reports how many lines landed in each partition.
type Result struct {
	Total int
	Train int
	Test  int
}

// Shuffle permutes lines in place using a generator seeded with seed.
func Shuffle(lines []string, seed uint64) {
	rng := randsrc.Seeded(seed)
	rng.Shuffle(len(lines), func(i, j int) {
		lines[i], lines[j] = lines[j], lines[i]
	})
}

// Boundary returns the number of train lines for total lines at ratio,
// rounded down.
func Boundary(total int, ratio float64) int {
	return int(float64(total) * ratio)
}

// Partition splits lines at the ratio boundary. Both halves alias lines.
func Partition(lines []string, ratio float64) (train, test []string) {
	cut := Boundary(len(lines), ratio)
	return lines[:cut], lines[cut:]
}

// SplitFile reads src, shuffles its lines, and writes the train and test
// partitions. Each destination is truncated. A failed test write leaves the
// train file in place.
func SplitFile(src, trainPath, testPath string, opts Options, logger *slog.Logger) (Result, error) {
	if opts.TrainRatio < 0 || opts.TrainRatio > 1 {
		return Result{}, fmt.Errorf("train ratio must be between 0 and 1, got %v", opts.TrainRatio)
	}
	logger = logging.NewComponentLogger(logger, "split")

	lines, err := fileutil.ReadLines(src)
	if err != nil {
		return Result{}, err
	}

	Shuffle(lines, opts.Seed)
	train, test := Partition(lines, opts.TrainRatio)
	result := Result{Total: len(lines), Train: len(train), Test: len(test)}

	if err := fileutil.WriteLines(trainPath, train); err != nil {
		return result, err
	}
	if err := fileutil.WriteLines(testPath, test); err != nil {
		return result, err
	}

	logger.Info("split complete",
		logging.String("source", src),
		logging.Int("total", result.Total),
		logging.Int("train", result.Train),
		logging.Int("test", result.Test),
		logging.Uint64("seed", opts.Seed),
	)
	return result, nil
}
