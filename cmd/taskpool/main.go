package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/antonioclim/taskpool/internal/config"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

func main() {
	root := &cobra.Command{
		Use:          "taskpool",
		Short:        "Fixed-size worker pool with observable futures",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newRunCommand())
	root.AddCommand(newReportCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, config file, environment and the command-line
// overrides, then installs the global logger.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("log-level") || cmd.InheritedFlags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") || cmd.InheritedFlags().Changed("log-format") {
		cfg.LogFormat = logFormat
	}

	if err := initLogger(cfg); err != nil {
		return nil, err
	}
	zap.S().Named("main").Debugw("configuration loaded", "config", cfg.DebugMap())
	return cfg, nil
}

func initLogger(cfg *config.Configuration) error {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var zcfg zap.Config
	if cfg.LogFormat == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
