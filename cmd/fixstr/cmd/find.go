// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     cmd
// Description: find command for the document finder
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/foundation/utils/filex"
	"github.com/msto63/fixstr/internal/finder"
)

type findOptions struct {
	extensions []string
	ignore     []string
	maxDepth   int
	watch      bool
	json       bool
}

func newFindCmd(root *rootOptions) *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find [roots...]",
		Short: "Find documents below one or more directories",
		Long: `Find documents below one or more directories. Without roots the
roots of the [finder] config section are scanned.

With --watch the command keeps running after the scan and reports
files that are created or written until it is interrupted.`,
		Example: `  fixstr find ~/Documents --ext pdf --ext txt
  fixstr find . --max-depth 2 --json
  fixstr find /data --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := finder.Overrides{
				Extensions: opts.extensions,
			}
			if cmd.Flags().Changed("ignore") {
				overrides.IgnoreDirs = opts.ignore
			}
			if cmd.Flags().Changed("max-depth") {
				overrides.MaxDepth = &opts.maxDepth
			}

			svc, err := finder.NewService(finder.Config{
				App:       root.cfg,
				Overrides: overrides,
				Logger:    root.logger,
			})
			if err != nil {
				return err
			}

			report := reporter(cmd.OutOrStdout(), opts.json)
			ctx := cmd.Context()
			roots := svc.Roots(args)

			if opts.watch {
				return svc.FindAndWatch(ctx, finder.Sink(report), roots...)
			}

			matches, err := svc.Find(ctx, roots...)
			if err != nil {
				return err
			}
			for _, m := range matches {
				if err := report(m); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&opts.extensions, "ext", "e", nil, "file extensions to report (default from config)")
	cmd.Flags().StringSliceVar(&opts.ignore, "ignore", nil, "directory names to skip (default from config)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "maximum directory depth, 0 for unlimited")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "keep watching for new documents")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print one JSON object per match")

	return cmd
}

// reporter returns the function that prints one match
func reporter(w io.Writer, asJSON bool) func(filex.Match) error {
	if asJSON {
		enc := json.NewEncoder(w)
		return func(m filex.Match) error {
			return enc.Encode(m)
		}
	}
	return func(m filex.Match) error {
		_, err := fmt.Fprintf(w, "found document at: %s\n", m.Path)
		return err
	}
}
