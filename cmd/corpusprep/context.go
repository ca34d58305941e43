package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"corpusprep/internal/config"
	"corpusprep/internal/fileutil"
	"corpusprep/internal/history"
	"corpusprep/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
				cfg.Logging.Level = strings.ToLower(level)
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// withRun wraps one tool invocation. Outputs stay locked while fn runs, and
// the finished run is written to the history store when it is enabled. A
// history failure is logged and never changes the tool's result.
func (c *commandContext) withRun(cmd *cobra.Command, tool string, inputs, outputs []string, fn func(*history.Run, *slog.Logger) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	release, err := fileutil.LockOutputs(cfg.LockDir(), outputs...)
	if err != nil {
		return err
	}
	defer release()

	run := history.NewRun(tool)
	run.Inputs = inputs
	run.Outputs = outputs
	logger = logger.With(logging.String(logging.FieldRunID, run.ID))

	runErr := fn(&run, logger)
	run.Finish(runErr)
	logger.Debug("run finished", logging.Args(
		logging.String("tool", tool),
		logging.Any("outputs", outputs),
		logging.Duration("duration", run.Duration),
		logging.Bool("ok", run.Succeeded()),
	)...)

	if cfg.History.Enabled {
		if err := recordRun(cmd.Context(), cfg, run); err != nil {
			logger.Warn("run history unavailable",
				logging.String(logging.FieldPath, cfg.HistoryPath()),
				logging.Error(err),
			)
		}
	}
	return runErr
}

func recordRun(ctx context.Context, cfg *config.Config, run history.Run) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := history.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(ctx, run)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
