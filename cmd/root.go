/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenvars.
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	generatecmd "bennypowers.dev/tokenvars/cmd/generate"
	"bennypowers.dev/tokenvars/cmd/list"
	"bennypowers.dev/tokenvars/cmd/version"
	"bennypowers.dev/tokenvars/generate"
	"bennypowers.dev/tokenvars/internal/logger"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitInput  = 2
	ExitOutput = 3
)

// EnvPrefix prefixes environment variables that override flags, e.g. TOKENVARS_OUT_DIR.
const EnvPrefix = "TOKENVARS"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tokenvars [input]",
		Short: "Turn design tokens into style-sheet variables",
		Long: `tokenvars flattens a nested design tokens document into style-sheet variable
declarations. Run without a subcommand it behaves like "tokenvars generate".`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              generatecmd.Run,
	}

	c.PersistentFlags().String("config", "", "Config file (default .config/tokenvars.{yaml,yml,json})")
	c.PersistentFlags().BoolP("quiet", "q", false, "Only log errors")
	c.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	c.MarkFlagsMutuallyExclusive("quiet", "verbose")

	generatecmd.AddFlags(c)

	c.AddCommand(generatecmd.Cmd)
	c.AddCommand(list.Cmd)
	c.AddCommand(version.Cmd)
	return c
}

// setup binds the running command's flags and the environment into viper
// and configures logging.
func setup(cmd *cobra.Command, _ []string) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	switch {
	case viper.GetBool("quiet"):
		logger.SetLevel(slog.LevelError)
	case viper.GetBool("verbose"):
		logger.SetLevel(slog.LevelDebug)
	}
	return nil
}

// Execute runs the root command with a context canceled on interrupt.
// Errors are logged before being returned.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error("%v", err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, generate.ErrInput):
		return ExitInput
	case errors.Is(err, generate.ErrOutput):
		return ExitOutput
	default:
		return ExitError
	}
}
