package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many questions each category and difficulty has",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		d, err := buildDeps(cmd, modeCLI, false)
		if err != nil {
			return err
		}
		defer d.Close()

		st := d.catalog.Statistics()
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, st)
		}

		t := d.text.Resolve
		fmt.Fprintf(out, "%s %d\n", t("statistics.total_questions", nil), st.TotalQuestions)
		fmt.Fprintf(out, "%s %d\n\n", t("statistics.total_categories", nil), st.TotalCategories)

		fmt.Fprintln(out, t("statistics.questions_by_category", nil))
		rule(out, 48)
		for _, c := range st.Categories {
			fmt.Fprintf(out, "%-36s  %5d\n", truncate(c, 36), st.QuestionsByCategory[c])
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, t("statistics.questions_by_difficulty", nil))
		rule(out, 48)
		for _, diff := range st.Difficulties {
			fmt.Fprintf(out, "%-36s  %5d\n", diff, st.QuestionsByDifficulty[diff])
		}

		if warnings := d.catalog.Warnings(); len(warnings) > 0 {
			fmt.Fprintf(out, "\n%d source files were skipped:\n", len(warnings))
			for _, w := range warnings {
				fmt.Fprintf(out, "  %v\n", w)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print the statistics as JSON")
}
