package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/app"
	"github.com/abhisek/vimquiz/internal/screen"
)

// tuiOptions override the configured quiz settings for one launch.
type tuiOptions struct {
	category   string
	difficulty string
	limit      int
	skipSplash bool
	startQuiz  bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz right away",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		limit, _ := cmd.Flags().GetInt("limit")
		return runApp(cmd, tuiOptions{
			category:   category,
			difficulty: difficulty,
			limit:      limit,
			startQuiz:  true,
		})
	},
}

func init() {
	playCmd.Flags().String("category", "", "Only ask questions from this category")
	playCmd.Flags().String("difficulty", "", "Only ask questions of this difficulty (beginner, intermediate, advanced)")
	playCmd.Flags().Int("limit", 0, "Number of questions (clamped to the configured bounds)")
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, opts tuiOptions) error {
	d, err := buildDeps(cmd, modeTUI, true)
	if err != nil {
		return err
	}
	defer d.Close()

	sess := d.newSession()
	if opts.category != "" || opts.difficulty != "" || opts.limit > 0 {
		st := sess.Settings()
		if opts.category != "" {
			st.Category = opts.category
		}
		if opts.difficulty != "" {
			st.Difficulty = opts.difficulty
		}
		if opts.limit > 0 {
			st.Limit = opts.limit
		}
		st = sess.Configure(st.Category, st.Difficulty, st.Limit)
		d.log.Info("quiz settings from flags",
			zap.String("category", st.Category),
			zap.String("difficulty", st.Difficulty),
			zap.Int("limit", st.Limit))
	}

	if f := cmd.Flags().Lookup("no-splash"); f != nil && f.Changed {
		opts.skipSplash = true
	}

	env := &screen.Env{
		Session: sess,
		Text:    d.text,
		Results: d.results(),
		Logger:  d.log,
	}
	return app.Run(env, app.Options{
		SkipWelcome: opts.skipSplash,
		StartQuiz:   opts.startQuiz,
	})
}
