package main

import "github.com/spf13/cobra"

func newViewCmd(c *cli) *cobra.Command {
	var (
		ellipse bool
		pause   string
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open an interactive window",
		Long: `Opens an ebiten window showing the universe stretched horizontally.

Keys:
  space   pause or resume
  N       single step
  R       reset with the same seed
  S       reset with a new seed
  E       toggle the elliptical mask
  B       toggle the active bounds overlay
  Q, Esc  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("ellipse") {
				c.cfg.View.Ellipse = ellipse
			}
			if flags.Changed("pause") {
				c.cfg.View.Pause = pause
			}
			return c.view()
		},
	}
	cmd.Flags().BoolVar(&ellipse, "ellipse", true, "mask cells outside the inscribed ellipse")
	cmd.Flags().StringVar(&pause, "pause", "", "delay between steps, e.g. 300ms")
	return cmd
}
