package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/foundation/utils/argx"
)

func newArgcCmd() *cobra.Command {
	var split bool

	cmd := &cobra.Command{
		Use:   "argc <text>",
		Short: "Count the comma-separated arguments of text",
		Long: `Count the comma-separated arguments of text. Every comma counts,
quoted ones too; write a comma that must not separate as \x2c.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !split {
				fmt.Fprintln(out, argx.CountArgs(args[0]))
				return nil
			}

			parts := argx.SplitArgs(args[0])
			fmt.Fprintln(out, argx.Count(parts...))
			for i, p := range parts {
				fmt.Fprintf(out, "%d: %s\n", i+1, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&split, "split", false, "also print every argument")
	return cmd
}
