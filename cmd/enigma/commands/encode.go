package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/domain"
)

func encodeCmd() *cobra.Command {
	var (
		setting settingFlags
		opts    domain.TextOptions
	)
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encipher or decipher text",
		Long: "Encode the arguments as one message, or each line of stdin as a separate message.\n" +
			"Every message starts from the configured rotor positions unless --continuous is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setting.resolve()
			if err != nil {
				return err
			}
			sess, err := wire.Sessions.Open(cfg, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				ct, err := sess.EncodeMessage(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ct)
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				ct, err := sess.EncodeMessage(sc.Text())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ct)
			}
			return sc.Err()
		},
	}
	setting.register(cmd)
	cmd.Flags().BoolVar(&opts.LettersOnly, "letters-only", false, "drop everything but letters before encoding")
	cmd.Flags().IntVar(&opts.Group, "group", 0, "split output into groups of N letters")
	cmd.Flags().BoolVar(&opts.Continuous, "continuous", false, "keep rotor positions across messages")
	return cmd
}
