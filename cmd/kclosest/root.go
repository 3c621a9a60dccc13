package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ken/kclosest/internal/config"
	"github.com/ken/kclosest/internal/logging"
	"github.com/ken/kclosest/pkg/selector"
)

const (
	appName    = "kclosest"
	appVersion = "0.1.0"
)

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	configFile string
	logLevel   string
	logFormat  string
	pivot      string
	seed       int64
}

// NewRootCommand creates the kclosest command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Find the K points closest to the origin",
		Long: `kclosest selects the K points nearest to the origin from a set of 2D
integer points using quickselect, without sorting the whole set.

Points are read from a YAML file of [x, y] pairs or given as x,y arguments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "kclosest.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.pivot, "pivot", "", "Pivot strategy: midpoint or random (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Seed for the random pivot (overrides config)")

	rootCmd.AddCommand(newSelectCommand(opts))
	rootCmd.AddCommand(newRandomCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadConfig reads the config file and applies any flags the user set
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if flags.Changed("pivot") {
		cfg.Selector.Pivot = o.pivot
	}
	if flags.Changed("seed") {
		cfg.Selector.Seed = o.seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newSelector builds the logger and Selector described by cfg
func newSelector(cmd *cobra.Command, cfg *config.Config) (*selector.Selector, *slog.Logger, error) {
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	selOpts, err := cfg.SelectorOptions()
	if err != nil {
		return nil, nil, err
	}
	selOpts = append(selOpts, selector.WithLogger(logger))

	return selector.New(selOpts...), logger, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	}
}
