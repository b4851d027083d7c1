package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vimquiz",
	Short: "Multiple-choice quiz for learning Vim commands",
	Long: `vimquiz shows the description of a Vim command and asks which of four
commands does it. Questions and translations are plain JSON files.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, tuiOptions{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a config file (default ./config/config.yaml or $XDG_CONFIG_HOME/vimquiz/config.yaml)")
	pf.String("lang", "", "Interface language code, or \"auto\" for the system language")
	pf.String("questions", "", "Directory of question files (default: built-in questions)")
	pf.String("locales", "", "Directory of translations, one sub-directory per language (default: built-in)")
	pf.String("db", "", "Path to SQLite database file (overrides VIMQUIZ_DB env var)")
	pf.Bool("no-history", false, "Do not read or write the result history")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("log-file", "", "Write logs to this file")

	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
