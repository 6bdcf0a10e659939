package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jigsaw/render"
)

func newRenderCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Print the merged picture with sea monsters marked 'O'",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.settings(cmd, args)
			if err != nil {
				return err
			}
			res, err := run(cmd, cfg, newLogger(cmd, cfg.Verbose))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Text(res.Detection.Image, res.Covered()))

			return nil
		},
	}
}
