package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"phase-ca/pkg/core"
)

func newParamsCmd(c *cli) *cobra.Command {
	var (
		asYAML   bool
		savePath string
	)
	cmd := &cobra.Command{
		Use:   "params [key...]",
		Short: "Print the effective parameters",
		Long: `Prints the parameter snapshot of a freshly seeded sim built from the
effective configuration. With keys, only those values are printed, one per
line. With --yaml the whole configuration is printed in the format accepted
by --config, and --save writes it to a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if savePath != "" {
				if err := c.cfg.Save(savePath); err != nil {
					return err
				}
				c.logger.Info("config saved", zap.String("path", savePath))
				if !asYAML && len(args) == 0 {
					return nil
				}
			}
			if asYAML {
				return writeYAML(out, c.cfg)
			}

			sim, err := c.newSim()
			if err != nil {
				return err
			}
			provider, ok := sim.(core.ParameterProvider)
			if !ok {
				return fmt.Errorf("sim %q exposes no parameters", sim.Name())
			}
			snap := provider.Parameters()

			if len(args) > 0 {
				for _, key := range args {
					p, ok := snap.Lookup(key)
					if !ok {
						return fmt.Errorf("unknown parameter %q", key)
					}
					fmt.Fprintf(out, "%s=%s\n", p.Key, p.Value)
				}
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Sims\t%s\n", strings.Join(core.Names(), ", "))
			for _, group := range snap.Groups {
				fmt.Fprintf(tw, "%s\n", group.Name)
				for _, p := range group.Params {
					fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.Key, p.Value, p.Label)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the full configuration as YAML")
	cmd.Flags().StringVar(&savePath, "save", "", "write the full configuration as YAML to this path")
	return cmd
}
