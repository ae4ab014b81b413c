// Package drill runs a session as a plain line-oriented prompt loop, for
// terminals where the TUI is unavailable or unwanted and for scripting.
package drill

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/lexiz/internal/session"
)

// Result is what a drill run ended with.
type Result struct {
	Summary session.Summary

	// Completed is false when input ran out before every item was mastered.
	Completed bool
}

// Runner reads answers from In and writes prompts and feedback to Out.
type Runner struct {
	In  io.Reader
	Out io.Writer
}

// Run starts s and drives it until it completes, In reaches EOF or ctx is
// canceled. Running out of input abandons the session without error.
func (r *Runner) Run(ctx context.Context, s *session.Session) (Result, error) {
	if err := s.Start(); err != nil {
		return Result{}, err
	}

	lines := bufio.NewScanner(r.In)
	read := func() (string, bool) {
		if !lines.Scan() {
			return "", false
		}
		return strings.TrimRight(lines.Text(), "\r"), true
	}

	for s.Phase() == session.PhaseActive {
		if err := ctx.Err(); err != nil {
			return r.abandon(s), err
		}

		p, _ := s.Prompt()
		prog := s.Progress()
		fmt.Fprintf(r.Out, "\n[%d left, %.0f%%] %s\n> ", prog.Remaining, prog.Completion*100, p.Question())

		answer, ok := read()
		if !ok {
			return r.abandon(s), lines.Err()
		}

		out, err := s.SubmitAnswer(answer)
		if err != nil {
			return Result{Summary: s.Summary()}, err
		}
		if out.Kind == session.Resolved {
			r.correct(out)
			continue
		}

		fmt.Fprintf(r.Out, "Not quite. Correct answer: %s\n", out.CorrectAnswer)
		if out.Notes != "" {
			fmt.Fprintf(r.Out, "Notes: %s\n", out.Notes)
		}
		fmt.Fprintf(r.Out, "Your answer: %s\nAccept anyway? [y/N] ", out.Answer)

		reply, ok := read()
		if !ok {
			return r.abandon(s), lines.Err()
		}
		accept := isYes(reply)
		out, err = s.ResolveOverride(accept)
		if err != nil {
			return Result{Summary: s.Summary()}, err
		}
		if accept {
			r.correct(out)
		}
	}

	sum := s.Summary()
	fmt.Fprintf(r.Out, "\nSession complete: %s\n", FormatSummary(sum))
	return Result{Summary: sum, Completed: true}, nil
}

func (r *Runner) correct(out session.Outcome) {
	switch {
	case out.Mastered:
		fmt.Fprintln(r.Out, "Correct! Mastered.")
	case out.Overridden:
		fmt.Fprintln(r.Out, "Accepted.")
	default:
		fmt.Fprintln(r.Out, "Correct!")
	}
}

func (r *Runner) abandon(s *session.Session) Result {
	sum := s.Summary()
	fmt.Fprintf(r.Out, "\nSession abandoned: %s\n", FormatSummary(sum))
	return Result{Summary: sum}
}

// FormatSummary renders a summary as "3 correct out of 4 asked (75% accuracy)".
func FormatSummary(sum session.Summary) string {
	return fmt.Sprintf("%d correct out of %d asked (%.0f%% accuracy)",
		sum.CorrectCount, sum.TotalAsked, sum.Accuracy*100)
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
