package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vimquiz/internal/i18n"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the available interface languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		d, err := buildDeps(cmd, modeCLI, false)
		if err != nil {
			return err
		}
		defer d.Close()

		info := d.text.Info()
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, info)
		}

		for _, code := range info.Supported {
			var marks []string
			if code == info.Current {
				marks = append(marks, "current")
			}
			if code == info.Default {
				marks = append(marks, "default")
			}
			if code == info.System {
				marks = append(marks, "system")
			}
			line := fmt.Sprintf("%-4s  %-12s", code, info.Names[code])
			if len(marks) > 0 {
				line += "  (" + strings.Join(marks, ", ") + ")"
			}
			fmt.Fprintln(out, strings.TrimRight(line, " "))
		}
		return nil
	},
}

var textCmd = &cobra.Command{
	Use:   "text KEY",
	Short: "Resolve a translation key in the active language",
	Long: `Resolve a dotted translation key such as menu.start. Keys under
questions.* read questions.json. Placeholders are filled from --param.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetStringToString("param")

		d, err := buildDeps(cmd, modeCLI, false)
		if err != nil {
			return err
		}
		defer d.Close()

		var params i18n.Params
		if len(raw) > 0 {
			params = make(i18n.Params, len(raw))
			for k, v := range raw {
				params[k] = i18n.ParseParam(v)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.text.Resolve(args[0], params))
		return nil
	},
}

func init() {
	languagesCmd.Flags().Bool("json", false, "Print the language state as JSON")
	textCmd.Flags().StringToString("param", nil, "Placeholder value as name=value (repeatable)")
}
