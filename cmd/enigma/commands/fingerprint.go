package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"enigma/internal/keysheet"
	"enigma/internal/machine"
)

func fingerprintCmd() *cobra.Command {
	var setting settingFlags
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of a setting",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setting.resolve()
			if err != nil {
				return err
			}
			if _, err := machine.New(cfg); err != nil {
				return err
			}
			fp, err := keysheet.Fingerprint(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	setting.register(cmd)
	return cmd
}
