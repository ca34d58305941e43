package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"corpusprep/internal/gibberish"
	"corpusprep/internal/history"
	"corpusprep/internal/logging"
	"corpusprep/internal/randsrc"
)

func newGibberishCommand(ctx *commandContext) *cobra.Command {
	var seed uint64
	var separateBlocks bool

	cmd := &cobra.Command{
		Use:   "gibberish <num_tokens>",
		Short: "Write synthetic gibberish samples to stdout",
		Long: "Writes eight blocks of <num_tokens> lines each: pseudo-words, pseudo-word " +
			"sentences, then random tokens and sentences drawn from vowels, consonants " +
			"and printable ASCII.",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parsePositiveInt(cmd, "num_tokens", args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			seeded, seedValue := cfg.Gibberish.Seeded, cfg.Gibberish.Seed
			if cmd.Flags().Changed("seed") {
				seeded, seedValue = true, seed
			}
			opts := gibberish.WriteOptions{SeparateBlocks: cfg.Gibberish.SeparateBlocks}
			if cmd.Flags().Changed("separate-blocks") {
				opts.SeparateBlocks = separateBlocks
			}
			params := gibberish.Params{
				MeanWordLength:     cfg.Gibberish.MeanWordLength,
				StdWordLength:      cfg.Gibberish.StdWordLength,
				MeanSentenceLength: cfg.Gibberish.MeanSentenceLength,
			}

			return ctx.withRun(cmd, "gibberish", nil, nil, func(run *history.Run, logger *slog.Logger) error {
				run.Outputs = []string{"stdout"}
				gen := gibberish.New(randsrc.New(seeded, seedValue), params, nil)
				if err := gen.Write(cmd.OutOrStdout(), n, opts); err != nil {
					return err
				}
				run.LinesOut = gibberish.BlockCount * n
				logger.Debug("gibberish written",
					logging.Int("tokens", n),
					logging.Bool("seeded", seeded),
					logging.Uint64("seed", seedValue),
				)
				return nil
			})
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed the generator for reproducible output")
	cmd.Flags().BoolVar(&separateBlocks, "separate-blocks", false, "Insert a blank line between blocks")
	return cmd
}
