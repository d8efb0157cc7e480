package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"foldersort/internal/config"
	"foldersort/internal/logging"
	"foldersort/internal/organizer"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = organizer.Wrap(organizer.ErrConfiguration, "config", "load", c.configPath(), err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// newLogger builds a logger writing to out. Command-line log flags win over
// the config file and environment.
func (c *commandContext) newLogger(out io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	effective := *cfg
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		effective.Logging.Level = *c.logLevelFlag
	}
	if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
		effective.Logging.Format = *c.logFormatFlag
	}
	return logging.NewFromConfig(&effective, out)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
