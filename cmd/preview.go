package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer a few questions in the plain terminal (no history)",
	Long: `Run a short quiz on stdin/stdout without the full-screen interface.

Nothing is stored. Useful for checking new question files or translations:
answer with the option number or the command itself.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions")
	previewCmd.Flags().String("category", "", "Only ask questions from this category")
	previewCmd.Flags().String("difficulty", "", "Only ask questions of this difficulty")
	previewCmd.Flags().Int64("seed", 0, "Random seed (0 uses the clock)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	category, _ := cmd.Flags().GetString("category")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d, err := buildDeps(cmd, modeCLI, false)
	if err != nil {
		return err
	}
	defer d.Close()

	// Preview bypasses the configured minimum so a single question works.
	sess := session.New(d.catalog,
		session.WithRand(rand.New(rand.NewSource(seed))),
		session.WithLimits(1, d.cfg.Quiz.MaxLimit))
	sess.Configure(category, difficulty, count)
	sess.Start()

	out := cmd.OutOrStdout()
	t := d.text.Resolve
	if sess.Phase() == session.PhaseCompleted {
		fmt.Fprintln(out, t("quiz.no_questions", nil))
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for sess.Phase() != session.PhaseCompleted {
		p, err := sess.CurrentQuestion()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "── %s ──\n", t("quiz.question_label", i18n.Params{"current": p.Ordinal, "total": p.Total}))
		fmt.Fprintln(out, t("quiz.prompt", nil))
		fmt.Fprintf(out, "  %s\n\n", p.Description)
		for i, opt := range p.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}

		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return nil
		}
		token := pickOption(strings.TrimSpace(scanner.Text()), p.Options)

		outcome, err := sess.SubmitAnswer(token)
		if errors.Is(err, session.ErrNoSelection) {
			fmt.Fprintln(out, t("messages.select_answer", nil))
			fmt.Fprintln(out)
			continue
		}
		if err != nil {
			return err
		}
		printOutcome(out, d.text, outcome)

		if err := sess.Advance(); err != nil {
			return err
		}
	}

	sum, err := sess.FinalSummary()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "── %s ──\n", t("messages.quiz_completed", nil))
	fmt.Fprintf(out, "%s %d/%d (%.1f%%)\n", t("messages.final_score", nil), sum.Score, sum.Total, sum.Percentage)
	fmt.Fprintln(out, t(sum.Tier.MessageKey(), nil))
	for _, w := range sum.Wrong {
		fmt.Fprintln(out, "  "+t("messages.wrong_item", i18n.Params{
			"question":    w.Ordinal,
			"selected":    w.Selected,
			"correct":     w.Correct,
			"description": w.Description,
		}))
	}
	return nil
}

// pickOption maps a 1-based option number to its token. Anything else is
// taken as the token itself.
func pickOption(input string, options []string) string {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	return input
}

func printOutcome(w io.Writer, text *i18n.Store, o session.Outcome) {
	params := i18n.Params{"command": o.Token, "description": o.Question.Description}
	if o.Correct {
		fmt.Fprintln(w, "\033[32m✓\033[0m "+text.Resolve("messages.correct_answer", params))
	} else {
		fmt.Fprintln(w, "\033[31m✗\033[0m "+text.Resolve("messages.wrong_answer", params))
	}
	if o.Question.Explanation != "" {
		fmt.Fprintln(w, o.Question.Explanation)
	}
	fmt.Fprintln(w)
}
