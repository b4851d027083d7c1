package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoHistory = errors.New("result history is disabled (--no-history)")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		missed, _ := cmd.Flags().GetBool("missed")
		asJSON, _ := cmd.Flags().GetBool("json")

		d, err := buildDeps(cmd, modeCLI, true)
		if err != nil {
			return err
		}
		defer d.Close()

		repo := d.results()
		if repo == nil {
			return errNoHistory
		}
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if missed {
			cmds, err := repo.MostMissed(ctx, limit)
			if err != nil {
				return fmt.Errorf("query missed commands: %w", err)
			}
			if asJSON {
				return writeJSON(out, cmds)
			}
			fmt.Fprintf(out, "%-16s  %-30s  %s\n", "Command", "Category", "Misses")
			rule(out, 56)
			for _, m := range cmds {
				fmt.Fprintf(out, "%-16s  %-30s  %6d\n", m.Command, truncate(m.Category, 30), m.Misses)
			}
			return nil
		}

		results, err := repo.Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		if asJSON {
			return writeJSON(out, results)
		}
		if len(results) == 0 {
			fmt.Fprintln(out, d.text.Resolve("history.empty", nil))
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-4s  %7s  %7s  %-24s  %s\n",
			"Date", "Lang", "Score", "Percent", "Category", "Difficulty")
		rule(out, 84)
		for _, r := range results {
			fmt.Fprintf(out, "%-16s  %-4s  %7s  %6.1f%%  %-24s  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Language,
				fmt.Sprintf("%d/%d", r.Score, r.Total), r.Percentage,
				truncate(r.Category, 24), r.Difficulty)
		}

		totals, err := repo.Totals(ctx)
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}
		fmt.Fprintf(out, "\n%d quizzes, %d/%d correct, best %.1f%%, average %.1f%%\n",
			totals.Quizzes, totals.Correct, totals.Questions, totals.BestPercentage, totals.AvgPercentage)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of rows (0 for all)")
	historyCmd.Flags().Bool("missed", false, "Show the commands missed most often instead")
	historyCmd.Flags().Bool("json", false, "Print the rows as JSON")
}
