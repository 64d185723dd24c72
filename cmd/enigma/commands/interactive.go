package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"enigma/internal/machine"
	"enigma/internal/tui"
)

func interactiveCmd() *cobra.Command {
	var setting settingFlags
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Type on the lampboard one key at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setting.resolve()
			if err != nil {
				return err
			}
			m, err := machine.New(cfg)
			if err != nil {
				return err
			}
			wire.Log.Debug("lampboard started", "setting", cfg.String())
			return tui.Run(m,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}
	setting.register(cmd)
	return cmd
}
