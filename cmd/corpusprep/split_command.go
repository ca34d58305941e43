package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"corpusprep/internal/history"
	"corpusprep/internal/split"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var seed uint64
	var trainRatio float64

	cmd := &cobra.Command{
		Use:   "split <source> <train> <test>",
		Short: "Shuffle a corpus and split it into train and test files",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			source, trainPath, testPath := args[0], args[1], args[2]

			opts := split.Options{Seed: cfg.Split.Seed, TrainRatio: cfg.Split.TrainRatio}
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}
			if cmd.Flags().Changed("train-ratio") {
				if trainRatio < 0 || trainRatio > 1 {
					return newUsageError(cmd, "train-ratio must be between 0 and 1, got %v", trainRatio)
				}
				opts.TrainRatio = trainRatio
			}

			return ctx.withRun(cmd, "split", []string{source}, []string{trainPath, testPath}, func(run *history.Run, logger *slog.Logger) error {
				result, err := split.SplitFile(source, trainPath, testPath, opts, logger)
				run.LinesIn = result.Total
				run.LinesOut = result.Train + result.Test
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Split %d lines: %d train (%s), %d test (%s)\n",
					result.Total, result.Train, trainPath, result.Test, testPath)
				return nil
			})
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", split.DefaultSeed, "Shuffle seed")
	cmd.Flags().Float64Var(&trainRatio, "train-ratio", split.DefaultTrainRatio, "Share of lines written to the train file")
	return cmd
}
