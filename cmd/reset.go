package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vimquiz/internal/i18n"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every stored quiz result",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		d, err := buildDeps(cmd, modeCLI, true)
		if err != nil {
			return err
		}
		defer d.Close()

		repo := d.results()
		if repo == nil {
			return errNoHistory
		}

		out := cmd.OutOrStdout()
		if !yes {
			fmt.Fprint(out, "Delete all quiz results? [y/N] ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		n, err := repo.Reset(cmd.Context())
		if err != nil {
			return fmt.Errorf("reset results: %w", err)
		}
		fmt.Fprintln(out, d.text.Resolve("history.reset_done", i18n.Params{"count": n}))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
