package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/vimquiz/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check question files against the source schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err == nil {
				err = catalog.ValidateSource(data)
			}
			if err != nil {
				failed++
				fmt.Fprintf(out, "FAIL  %s\n      %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "ok    %s\n", path)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files are invalid", failed, len(args))
		}
		return nil
	},
}
