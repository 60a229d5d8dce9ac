package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"pvrank/internal/artifact"
	"pvrank/internal/config"
	"pvrank/internal/failure"
	"pvrank/internal/logging"
	"pvrank/internal/prepare"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = failure.Wrap(failure.ErrConfiguration, "config", "load", "", err)
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = failure.Wrap(failure.ErrConfiguration, "config", "ensure directories", "", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		var level string
		if c.logLevelFlag != nil {
			level = *c.logLevelFlag
		}
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg, level)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// loadResult returns the persisted lookup tables, preparing them first when no
// artifact exists yet or when refresh is set.
func (c *commandContext) loadResult(ctx context.Context, refresh bool) (artifact.Result, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return artifact.Result{}, err
	}
	if !refresh {
		result, err := artifact.Read(cfg.Paths.OutputPath)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, failure.ErrSourceUnavailable) {
			return artifact.Result{}, err
		}
		c.loggerValue().Debug("no prepared artifact; preparing", logging.String(logging.FieldPath, cfg.Paths.OutputPath))
	}
	return prepare.New(cfg, c.loggerValue()).Prepare(ctx)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
