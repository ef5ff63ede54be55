// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/webqa/internal/config"
	"github.com/jeranaias/webqa/internal/logging"
	"github.com/jeranaias/webqa/internal/search"
)

// Build information, set by Execute.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// options are the global flags.
type options struct {
	configPath      string
	delay           time.Duration
	verbose         bool
	simulateFailure bool
}

// app carries state shared by the commands of one invocation.
type app struct {
	opts       options
	delaySet   bool
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

// Execute runs the root command with os.Args.
func Execute(version string) error {
	if version != "" {
		Version = version
	}
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree, so tests can run commands in parallel.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "webqa",
		Short: "Ask questions, get answers with sources",
		Long: `webqa is a terminal chat that answers questions from a simulated web search.

Running webqa with no command opens the full-screen chat.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "config file (default is ~/.webqa/config.toml)")
	flags.DurationVar(&a.opts.delay, "delay", 0, "simulated search latency, e.g. 500ms (overrides config)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&a.opts.simulateFailure, "simulate-failure", false, "make every search fail")

	root.AddCommand(
		newTUICommand(a),
		newAskCommand(a),
		newREPLCommand(a),
		newRulesCommand(),
		newConfigCommand(a),
		newVersionCommand(),
	)
	return root
}

// =============================================================================
// SETUP
// =============================================================================

// setup loads .env, the config file and flag overrides, then opens the log.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnvFile(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	path, err := a.configFile()
	if err != nil {
		return err
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.delaySet = cmd.Flags().Changed("delay")
	if err := a.applyFlags(cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, a.opts.verbose)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}

	a.configPath = path
	a.cfg = cfg
	a.logger = logger

	logger.Info("webqa starting",
		zap.String("command", cmd.Name()),
		zap.String("version", Version),
		zap.String("config", path),
		zap.Int("delay_ms", cfg.Search.DelayMS),
	)
	return nil
}

// configFile is --config, or ~/.webqa/config.toml.
func (a *app) configFile() (string, error) {
	if a.opts.configPath != "" {
		return a.opts.configPath, nil
	}
	return config.ConfigPath()
}

// applyFlags lays the global flags over a loaded config. Flags beat the
// file, including on reload.
func (a *app) applyFlags(cfg *config.Config) error {
	if a.delaySet {
		cfg.Search.DelayMS = int(a.opts.delay / time.Millisecond)
	}
	if a.opts.simulateFailure {
		cfg.Search.SimulateFailure = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// provider builds the search stack for the startup config.
func (a *app) provider() search.Provider {
	return a.providerFor(a.cfg)
}

// providerFor builds the search stack described by cfg: the mock (or
// failing) resolver, an optional rate limit and logging.
func (a *app) providerFor(cfg *config.Config) search.Provider {
	delay := cfg.SearchDelay()

	var p search.Provider = search.NewMockResolver(search.WithDelay(delay))
	if cfg.Search.SimulateFailure {
		p = search.FailingProvider{Delay: delay}
	}
	p = search.Throttle(p, search.NewLimiter(cfg.Search.RatePerSecond, cfg.Search.Burst))
	return search.WithLogging(p, a.logger)
}
