// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     cmd
// Description: lower, left, right and pipe commands
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/fixstr/foundation/core/errors"
	mdwlog "github.com/msto63/fixstr/foundation/core/log"
	"github.com/msto63/fixstr/foundation/utils/fixstr"
	"github.com/msto63/fixstr/pkg/core/logging"
)

// rawSentinel replaces zero bytes in --raw output
const rawSentinel = `\0`

// seqOptions are the flags shared by all transform commands
type seqOptions struct {
	literal bool
	raw     bool
}

func (o *seqOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.literal, "literal", true, "append the terminating zero byte like a character literal")
	cmd.Flags().BoolVar(&o.raw, "raw", false, `print all bytes, zero bytes as \0`)
}

func (o *seqOptions) source(text string) fixstr.Seq {
	if o.literal {
		return fixstr.Literal(text)
	}
	return fixstr.FromString(text)
}

func (o *seqOptions) print(w io.Writer, s fixstr.Seq) {
	if o.raw {
		fmt.Fprintln(w, fixstr.Render(s, rawSentinel))
		return
	}
	fmt.Fprintln(w, s.String())
}

// parseCount parses a non-negative integer argument
func parseCount(op, value string) (uint, error) {
	n, err := strconv.ParseUint(value, 10, 0)
	if err != nil {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleFixstr, op, value, "a non-negative integer")
	}
	return uint(n), nil
}

func newLowerCmd() *cobra.Command {
	opts := &seqOptions{}
	cmd := &cobra.Command{
		Use:   "lower <text>",
		Short: "Lowercase the ASCII letters of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := opts.source(args[0])
			logging.FromContext(cmd.Context()).Debug("lower", mdwlog.Field("len", src.Len()))
			opts.print(cmd.OutOrStdout(), fixstr.ToLower(src))
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func newLeftCmd() *cobra.Command {
	opts := &seqOptions{}
	cmd := &cobra.Command{
		Use:   "left <text> <n>",
		Short: "Keep the first n bytes and zero the rest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount("left", args[1])
			if err != nil {
				return err
			}
			src := opts.source(args[0])
			logging.FromContext(cmd.Context()).Debug("left", mdwlog.Fields{"len": src.Len(), "n": n})
			opts.print(cmd.OutOrStdout(), fixstr.Left(src, n))
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func newRightCmd() *cobra.Command {
	opts := &seqOptions{}
	cmd := &cobra.Command{
		Use:   "right <text> <start>",
		Short: "Rotate text left so that position start comes first",
		Long: `Rotate text left so that position start comes first. The start
position is taken modulo the length, the terminator included when
--literal is set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseCount("right", args[1])
			if err != nil {
				return err
			}
			src := opts.source(args[0])
			logging.FromContext(cmd.Context()).Debug("right", mdwlog.Fields{"len": src.Len(), "start": start})
			opts.print(cmd.OutOrStdout(), fixstr.Right(src, start))
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func newPipeCmd(root *rootOptions) *cobra.Command {
	opts := &seqOptions{}
	var steps []string

	cmd := &cobra.Command{
		Use:   "pipe <text>",
		Short: "Run a chain of transforms",
		Long: `Run a chain of transforms from left to right. Steps are given as
"lower", "left=<n>" or "right=<start>". Without --step the
default_steps of the [transform] config section are used.`,
		Example: `  fixstr pipe "Hello World" --step lower --step right=6 --raw`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := steps
			if len(specs) == 0 {
				specs = root.cfg.Transform.DefaultSteps
			}

			pipeline, err := fixstr.ParsePipeline(specs)
			if err != nil {
				return err
			}

			root.logger.Debug("pipe", mdwlog.Field("steps", specs))
			opts.print(cmd.OutOrStdout(), pipeline(opts.source(args[0])))
			return nil
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringArrayVarP(&steps, "step", "s", nil, "transform step, repeatable")
	return cmd
}
