// Command pearson computes the pairwise Pearson correlation matrix of a
// textual vector dataset and writes the flattened upper triangle, one
// coefficient per line.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shardmath/shardmath"
	"github.com/shardmath/shardmath/correlate"
	"github.com/shardmath/shardmath/dataset"
)

var (
	verbose bool
	packed  bool
	lenient bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "pearson <input> <output> [workers]",
		Short: "Compute the pairwise Pearson correlation matrix of a dataset",
		Long: `Reads a dataset of whitespace-separated numeric rows (one vector per
line), computes the Pearson correlation coefficient of every vector pair,
and writes the flattened upper triangle one coefficient per line.

With no worker count (or 1) the sequential reference path runs; otherwise
the computation is sharded across the given number of workers.`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&packed, "packed", false, "use the packed aligned fast path (parallel only)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "propagate NaN for zero-variance vectors instead of failing")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pearson:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := shardmath.NewTextLogger(slog.LevelInfo)
	if verbose {
		logger = shardmath.NewTextLogger(slog.LevelDebug)
	}

	workers := 1
	if len(args) == 3 {
		w, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid worker count %q: %w", args[2], err)
		}
		workers = w
	}

	batch, err := dataset.Read(args[0])
	if err != nil {
		return err
	}
	logger.WithBatch(batch.Len(), batch.Dim()).Info("dataset loaded", "path", args[0])

	opts := []correlate.Option{correlate.WithLogger(logger)}
	if packed {
		opts = append(opts, correlate.WithPacked())
	}
	if lenient {
		opts = append(opts, correlate.WithDegeneratePolicy(correlate.DegeneratePropagate))
	}

	start := time.Now()
	var coeffs []float64
	if workers > 1 {
		coeffs, err = correlate.CoefficientsParallel(batch, workers, opts...)
	} else {
		coeffs, err = correlate.Coefficients(batch, opts...)
	}
	if err != nil {
		return err
	}
	logger.WithWorkers(workers).Info("correlation computed", "pairs", len(coeffs), "elapsed", time.Since(start))

	return dataset.Write(args[1], coeffs)
}
