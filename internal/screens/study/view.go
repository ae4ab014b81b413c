package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case !s.started:
		return theme.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "\n\n\n  Preparing your session...")
	case s.quitConfirm:
		return renderQuitConfirm(width)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")

	if s.pending != nil {
		b.WriteString(s.renderMismatch(width))
		return b.String()
	}

	if s.last != nil {
		b.WriteString(renderFlash(width, *s.last))
	}
	b.WriteString("\n\n")
	b.WriteString(s.renderPrompt(width))
	return b.String()
}

// renderInfoLine shows counts and the completion bar.
func (s *StudyScreen) renderInfoLine(width int) string {
	p := s.sess.Progress()

	counts := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Q %d   ✓ %d   %d/%d mastered", p.Asked, p.Correct, p.Mastered, p.Total))

	bar := components.NewProgressBar("", p.Completion, true, min(width-8, 60))

	return counts + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())
}

func (s *StudyScreen) renderPrompt(width int) string {
	prompt, ok := s.sess.Prompt()
	if !ok {
		return ""
	}

	label, color := "Define", theme.BandForward
	if prompt.Direction == session.DefinitionToTerm {
		label, color = "What is the term for", theme.BandReverse
	}

	var b strings.Builder
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(color), width, label))
	b.WriteString("\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width, prompt.Text))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Answer: "+s.input.View()))
	return b.String()
}

// renderMismatch shows the graded answer and the two ways forward.
func (s *StudyScreen) renderMismatch(width int) string {
	out := s.pending
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.Centered(theme.Incorrect, width, "Not quite"))
	b.WriteString("\n\n")
	b.WriteString(theme.Centered(dim, width, "Your answer: "+out.Answer))
	b.WriteString("\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width, "Correct answer: "+out.CorrectAnswer))
	b.WriteString("\n")
	if out.Notes != "" {
		b.WriteString(theme.Centered(theme.Hint, width, "Notes: "+out.Notes))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Centered(dim, width, "[Enter] Mark wrong    [I] I was right"))
	return b.String()
}

func renderFlash(width int, out session.Outcome) string {
	switch {
	case out.Mastered:
		return theme.Centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), width, "Mastered! "+out.CorrectAnswer)
	case out.Overridden:
		return theme.Centered(theme.Correct, width, "Accepted")
	case out.Correct:
		return theme.Centered(theme.Correct, width, "Correct!")
	}
	return theme.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "Marked wrong: "+out.CorrectAnswer)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width, "End session early?"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "Your answers so far are kept in the history."))
	b.WriteString("\n\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Success), width, "[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Primary), width, "[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return theme.Centered(lipgloss.NewStyle().Foreground(theme.Error), width,
		fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
