package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"corpusprep/internal/fileutil"
	"corpusprep/internal/history"
	"corpusprep/internal/logging"
	"corpusprep/internal/markov"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var goodPath string
	var badPath string

	cmd := &cobra.Command{
		Use:   "detect <ngram> <train> <input>",
		Short: "Print the lines of input that a Markov model accepts as text",
		Long: "Trains an n-gram Markov model on <train>, calibrates its threshold " +
			"against known good and bad samples, then prints every line of <input> " +
			"scoring above the threshold followed by a summary line.",
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parsePositiveInt(cmd, "ngram", args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			trainPath, inputPath := args[1], args[2]
			if !cmd.Flags().Changed("good") {
				goodPath = cfg.Detect.GoodPath
			}
			if !cmd.Flags().Changed("bad") {
				badPath = cfg.Detect.BadPath
			}

			inputs := []string{trainPath, goodPath, badPath, inputPath}
			return ctx.withRun(cmd, "detect", inputs, nil, func(run *history.Run, logger *slog.Logger) error {
				run.Outputs = []string{"stdout"}
				logger = logging.NewComponentLogger(logger, "detect")

				model, err := trainModel(trainPath, n)
				if err != nil {
					return err
				}
				threshold, err := calibrateModel(model, goodPath, badPath)
				if err != nil {
					return err
				}
				logger.Info("model calibrated",
					logging.Int("ngram", n),
					logging.Float64("threshold", threshold),
				)

				in, err := fileutil.Open(inputPath)
				if err != nil {
					return err
				}
				defer in.Close()

				out := cmd.OutOrStdout()
				summary, err := markov.Detect(in, out, model, logger)
				run.LinesIn = summary.Total
				run.LinesOut = summary.Good
				if err != nil {
					return err
				}
				fmt.Fprintln(out, summary.String())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&goodPath, "good", "", "Known valid text used to calibrate the threshold")
	cmd.Flags().StringVar(&badPath, "bad", "", "Known gibberish used to calibrate the threshold")
	return cmd
}

func trainModel(path string, n int) (*markov.Model, error) {
	f, err := fileutil.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	model, err := markov.Train(f, n)
	if err != nil {
		return nil, fmt.Errorf("train model from %s: %w", path, err)
	}
	return model, nil
}

func calibrateModel(model *markov.Model, goodPath, badPath string) (float64, error) {
	good, err := fileutil.Open(goodPath)
	if err != nil {
		return 0, err
	}
	defer good.Close()
	bad, err := fileutil.Open(badPath)
	if err != nil {
		return 0, err
	}
	defer bad.Close()
	return model.Calibrate(good, bad)
}
