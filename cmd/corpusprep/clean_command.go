package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"corpusprep/internal/cleaner"
	"corpusprep/internal/history"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var headerRows int
	var column int
	var encoding string

	cmd := &cobra.Command{
		Use:   "clean [input] [output]",
		Short: "Extract and clean the text column of a CSV dump export",
		Long: "Reads a CSV export of the Enron MySQL dump, skips the preamble rows, " +
			"strips =<digits> size markers and surrounding apostrophes from the text " +
			"column, and writes one cleaned line per record.",
		Args: maxArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			input, output := cfg.Clean.Input, cfg.Clean.Output
			if len(args) > 0 {
				input = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}

			opts := cleaner.Options{
				HeaderRows: cfg.Clean.HeaderRows,
				Column:     cfg.Clean.Column,
				Encoding:   cfg.Clean.Encoding,
			}
			flags := cmd.Flags()
			if flags.Changed("header-rows") {
				opts.HeaderRows = headerRows
			}
			if flags.Changed("column") {
				opts.Column = column
			}
			if flags.Changed("encoding") {
				opts.Encoding = encoding
			}

			return ctx.withRun(cmd, "clean", []string{input}, []string{output}, func(run *history.Run, logger *slog.Logger) error {
				c, err := cleaner.New(opts, logger)
				if err != nil {
					return newUsageError(cmd, "%v", err)
				}
				stats, err := c.CleanFile(input, output)
				run.LinesIn = stats.Rows
				run.LinesOut = stats.Written
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %d of %d records into %s (%d skipped, %d malformed)\n",
					stats.Written, stats.Rows, output, stats.Skipped, stats.Malformed)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&headerRows, "header-rows", cleaner.DefaultHeaderRows, "Number of leading records to ignore")
	cmd.Flags().IntVar(&column, "column", cleaner.DefaultColumn, "Zero-based index of the text column")
	cmd.Flags().StringVar(&encoding, "encoding", cleaner.DefaultEncoding, "Input encoding (utf-8, latin1, windows-1252)")
	return cmd
}
