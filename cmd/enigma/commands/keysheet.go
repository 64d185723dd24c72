package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"enigma/internal/domain"
	"enigma/internal/keysheet"
	keysheetsvc "enigma/internal/services/keysheet"
)

func keysheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keysheet",
		Short: "Write, seal and show key sheets",
	}
	cmd.AddCommand(keysheetInitCmd(), keysheetSealCmd(), keysheetShowCmd())
	return cmd
}

func keysheetInitCmd() *cobra.Command {
	var (
		setting settingFlags
		random  bool
	)
	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write a key sheet, sealed when -p is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg domain.Config
				err error
			)
			if random {
				cfg, err = keysheetsvc.Generate()
			} else {
				cfg, err = setting.config()
			}
			if err != nil {
				return err
			}
			fp, err := wire.KeySheets.Issue(args[0], passphrase, cfg)
			if err != nil {
				return err
			}
			wire.Log.Info("key sheet written", "path", args[0], "sealed", passphrase != "")
			fmt.Fprintf(cmd.OutOrStdout(), "Key sheet written.\nFingerprint: %s\n", fp)
			return nil
		},
	}
	setting.register(cmd)
	cmd.Flags().BoolVar(&random, "random", false, "draw a random setting instead of using the setting flags")
	return cmd
}

func keysheetSealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seal <path>",
		Short: "Seal a plain key sheet in place with the -p passphrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			cfg, err := wire.KeySheets.Load(args[0], "")
			if err != nil {
				return err
			}
			fp, err := wire.KeySheets.Issue(args[0], passphrase, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key sheet sealed.\nFingerprint: %s\n", fp)
			return nil
		},
	}
}

func keysheetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Print a key sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := wire.KeySheets.Load(args[0], passphrase)
			if err != nil {
				return err
			}
			raw, err := keysheet.Marshal(cfg)
			if err != nil {
				return err
			}
			fp, err := keysheet.Fingerprint(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n# fingerprint %s\n", cfg, fp)
			_, err = out.Write(raw)
			return err
		},
	}
}
