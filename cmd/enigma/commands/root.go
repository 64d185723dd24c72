package commands

import (
	"github.com/spf13/cobra"

	"enigma/internal/app"
)

var (
	logLevel   string
	logFormat  string
	sheetPath  string
	passphrase string
	wire       *app.Wire
)

// Execute runs the enigma CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "enigma",
		Short:         "Enigma rotor machine simulator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(app.Config{
				LogLevel:  logLevel,
				LogFormat: logFormat,
				LogOutput: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().StringVar(&sheetPath, "keysheet", "", "read the machine setting from this key sheet")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for sealed key sheets")

	root.AddCommand(encodeCmd(), interactiveCmd(), catalogCmd(), keysheetCmd(), fingerprintCmd())
	return root
}
