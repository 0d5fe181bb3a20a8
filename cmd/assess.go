package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/iamfit/internal/answers"
	"github.com/abhisek/iamfit/internal/app"
	"github.com/abhisek/iamfit/internal/assessment"
	"github.com/abhisek/iamfit/internal/catalog"
)

// errInputClosed is returned when stdin ends before the last answer.
var errInputClosed = errors.New("input ended before the assessment was complete")

const unansweredText = "Please answer the current question before proceeding."

var warnColor = color.New(color.FgYellow)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take the career assessment",
	Long: `Take the eight-question WISCAR assessment.

In a terminal the interactive stepper is shown. With --plain, or when stdin
is not a terminal, questions are asked one per line so answers can be typed
or piped in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		if !plain && isTerminal(os.Stdin) {
			return runApp(cmd, app.RouteAssessment)
		}
		return runPlainAssessment(cmd)
	},
}

func init() {
	assessCmd.Flags().Bool("plain", false, "Ask questions line by line instead of the interactive stepper")
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runPlainAssessment(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	cat := catalog.Default()
	started := time.Now()
	set, err := askAll(cmd.InOrStdin(), out, cat)
	if err != nil {
		return err
	}

	result := assessment.Evaluate(cat, set)
	result.Duration = time.Since(started)
	if err := e.slot().Save(ctx, result.Answers); err != nil {
		return err
	}
	if err := assessment.Record(ctx, e.store.EventRepo(), cat, result); err != nil {
		return err
	}
	e.logger.Info("assessment completed",
		zap.String("session_id", result.SessionID),
		zap.Int("overall", result.Scores.Overall),
		zap.String("category", string(result.Recommendation.Category)),
		zap.Bool("plain", true))

	fmt.Fprintln(out)
	printResult(out, result.Scores, result.Recommendation)
	return nil
}

// askAll walks the catalog reading one answer per line from in. An empty
// line is a "next" press.
func askAll(in io.Reader, out io.Writer, cat *catalog.Catalog) (*answers.Set, error) {
	flow := assessment.NewFlow(cat)
	sc := bufio.NewScanner(in)

	for {
		q := flow.Current()
		printQuestion(out, flow, q)

		for {
			fmt.Fprint(out, "> ")
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("read answer: %w", err)
				}
				fmt.Fprintln(out)
				return nil, errInputClosed
			}

			if line := strings.TrimSpace(sc.Text()); line != "" {
				v, err := parseAnswer(q, line)
				if err == nil {
					err = flow.Answer(v)
				}
				if err != nil {
					warnColor.Fprintln(out, invalidAnswerText(q))
					continue
				}
			}

			done, err := flow.Next()
			if errors.Is(err, assessment.ErrUnanswered) {
				warnColor.Fprintln(out, unansweredText)
				continue
			}
			if err != nil {
				return nil, err
			}
			if done {
				return flow.Answers(), nil
			}
			break
		}
	}
}

func printQuestion(w io.Writer, flow *assessment.Flow, q catalog.Question) {
	secs := flow.Catalog().Sections()
	step := flow.CurrentStep()
	fmt.Fprintln(w)
	headingColor.Fprintf(w, "── Question %d/%d ── %s (step %d of %d)\n",
		flow.Index()+1, flow.Total(), secs[step].Title, step+1, len(secs))
	fmt.Fprintln(w, q.Prompt)
	if q.Hint != "" {
		fmt.Fprintln(w, dimColor.Sprint(q.Hint))
	}

	switch q.Kind {
	case catalog.KindRating, catalog.KindChoice:
		for i, o := range q.Options {
			fmt.Fprintf(w, "  %d) %s\n", i+1, o)
		}
	case catalog.KindRange:
		fmt.Fprintf(w, "  Enter %d-%d %s\n", q.Min, q.Max, q.Unit)
	}
}

// parseAnswer reads a typed line as an answer to q. Choice questions accept
// the option number or its text.
func parseAnswer(q catalog.Question, line string) (answers.Value, error) {
	n, numErr := strconv.Atoi(line)
	switch q.Kind {
	case catalog.KindRating, catalog.KindRange:
		if numErr != nil {
			return answers.Value{}, fmt.Errorf("not a number: %q", line)
		}
		return answers.Int(n), nil
	case catalog.KindChoice:
		if numErr == nil && n >= 1 && n <= len(q.Options) {
			return answers.Text(q.Options[n-1]), nil
		}
		for _, o := range q.Options {
			if strings.EqualFold(o, line) {
				return answers.Text(o), nil
			}
		}
		return answers.Value{}, fmt.Errorf("not an option: %q", line)
	default:
		return answers.Value{}, fmt.Errorf("unknown question kind %q", q.Kind)
	}
}

func invalidAnswerText(q catalog.Question) string {
	if q.Kind == catalog.KindRange {
		return fmt.Sprintf("Enter a value between %d and %d.", q.Min, q.Max)
	}
	return fmt.Sprintf("Enter a number from 1 to %d.", len(q.Options))
}
