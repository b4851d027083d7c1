package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vimquiz/internal/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Browse the question categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories (optionally filtered by difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		if difficulty != "" {
			if _, ok := catalog.ParseDifficulty(difficulty); !ok {
				return fmt.Errorf("invalid difficulty %q: must be beginner, intermediate or advanced", difficulty)
			}
		}

		d, err := buildDeps(cmd, modeCLI, false)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-30s  %-30s  %-12s  %s\n", "Category", "Name", "Difficulty", "Questions")
		rule(out, 88)

		n := 0
		for _, g := range d.catalog.Groups() {
			if difficulty != "" && string(g.Difficulty) != difficulty {
				continue
			}
			name := d.text.ResolveQuestion("categories."+d.catalog.Namespace(g.Category), nil)
			fmt.Fprintf(out, "%-30s  %-30s  %-12s  %9d\n",
				truncate(g.Category, 30), truncate(name, 30), g.Difficulty, len(g.Questions))
			n++
		}

		fmt.Fprintf(out, "\n%d categories\n", n)
		return nil
	},
}

var categoriesShowCmd = &cobra.Command{
	Use:   "show CATEGORY",
	Short: "List the commands of one category with their descriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd, modeCLI, false)
		if err != nil {
			return err
		}
		defer d.Close()

		qs := d.catalog.ByCategory(args[0])
		if len(qs) == 0 {
			return fmt.Errorf("no category named %q (see 'vimquiz categories list')", args[0])
		}

		out := cmd.OutOrStdout()
		for _, q := range qs {
			fmt.Fprintf(out, "%-16s  %s\n", q.Command, q.Description)
		}
		fmt.Fprintf(out, "\n%d commands\n", len(qs))
		return nil
	},
}

var categoriesSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Find commands whose token or description contains QUERY",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd, modeCLI, false)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		qs := d.catalog.Search(args[0])
		for _, q := range qs {
			fmt.Fprintf(out, "%-16s  %-24s  %s\n", q.Command, truncate(q.SourceCategory, 24), q.Description)
		}
		fmt.Fprintf(out, "\n%d matches\n", len(qs))
		return nil
	},
}

func init() {
	categoriesListCmd.Flags().String("difficulty", "", "Filter by difficulty (beginner, intermediate or advanced)")

	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesShowCmd)
	categoriesCmd.AddCommand(categoriesSearchCmd)
}
