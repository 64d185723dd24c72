package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"enigma/internal/rotor"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the rotors and reflectors that can be fitted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tNOTCH\tWIRING")
			for _, s := range rotor.Catalog() {
				notch := "-"
				if s.HasNotch() {
					notch = string(s.Notch)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.Kind, notch, s.Wiring)
			}
			return tw.Flush()
		},
	}
}
