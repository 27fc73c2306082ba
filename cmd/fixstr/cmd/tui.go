package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/internal/tui/playground"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	cfg := playground.DefaultConfig()
	var noTerminator bool

	cmd := &cobra.Command{
		Use:     "tui [text]",
		Aliases: []string{"playground"},
		Short:   "Start the interactive transform playground",
		Long: `Start the interactive transform playground.

Keys:
  ctrl+up/ctrl+down     change n of left
  shift+up/shift+down   change start of right
  tab                   toggle the terminating zero byte
  esc                   quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			cfg.Literal = !noTerminator
			cfg.Steps = root.cfg.Transform.DefaultSteps
			return playground.Run(cfg)
		},
	}

	cmd.Flags().UintVarP(&cfg.N, "n", "n", cfg.N, "initial n of left")
	cmd.Flags().UintVar(&cfg.Start, "start", cfg.Start, "initial start of right")
	cmd.Flags().BoolVar(&noTerminator, "no-terminator", false, "start without the terminating zero byte")
	return cmd
}
