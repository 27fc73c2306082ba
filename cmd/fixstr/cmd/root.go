// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration loading and exit codes
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwlog "github.com/msto63/fixstr/foundation/core/log"
	"github.com/msto63/fixstr/pkg/core/config"
	"github.com/msto63/fixstr/pkg/core/logging"
)

// rootOptions holds the persistent flags and the state prepared for every
// subcommand
type rootOptions struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCmd builds the complete command tree
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "fixstr",
		Short: "fixstr - Fixed-length string toolkit",
		Long: `fixstr transforms fixed-length byte sequences the way character
arrays behave: the length never changes and vacated positions are
filled with zero bytes.

Commands:
  lower   - lowercase ASCII letters
  left    - keep the first n bytes, zero the rest
  right   - rotate left so that start becomes the first byte
  pipe    - chain several transforms
  argc    - count comma-separated arguments
  find    - find documents below one or more directories
  tui     - interactive playground`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newLowerCmd(),
		newLeftCmd(),
		newRightCmd(),
		newPipeCmd(opts),
		newArgcCmd(),
		newFindCmd(opts),
		newTUICmd(opts),
		newVersionCmd(),
	)

	return rootCmd, opts
}

// Execute runs the command tree until it finishes or the process is
// interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// run executes args and reports a failure on stderr
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd, opts := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		opts.reportError(stderr, err)
	}
	return err
}

// ExitCode maps err to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return mdwerror.CodeCanceled.ExitCode()
	}
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Code().ExitCode()
	}
	return 1
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	level := cfg.General.LogLevel
	if o.verbose {
		level = "debug"
	}

	o.cfg = cfg
	o.logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName: "fixstr",
		Level:       level,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
		RunID:       logging.NewRunID(),
	})

	cmd.SetContext(logging.WithLogger(cmd.Context(), o.logger))
	o.logger.Debug("command started", mdwlog.Field("command", cmd.CommandPath()))
	return nil
}

// loadConfig reads --config, then FIXSTR_CONFIG and the default locations.
// Without any config file the defaults apply.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfgFile != "" {
		return config.Load(o.cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if err == nil {
		return cfg, nil
	}
	if mdwerror.HasCode(err, mdwerror.CodeMissingConfig) && os.Getenv(config.EnvConfig) == "" {
		cfg = config.Default()
		cfg.ApplyEnv()
		return cfg, cfg.Validate()
	}
	return nil, err
}

// reportError prints err for the user. With --verbose the structured
// record with code, operation and details follows.
func (o *rootOptions) reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if !o.verbose {
		return
	}

	logger := o.logger
	if logger == nil {
		// setup failed before the configured logger existed
		cfg := logging.DefaultLoggerConfig("fixstr")
		cfg.Output = w
		logger = logging.NewLogger(cfg)
	}
	logger.WithLevel(mdwlog.LevelTrace).LogError(err)
}
