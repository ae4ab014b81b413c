// Package summary shows the statistics of a finished session.
package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	listTitle string
	summary   session.Summary
	items     int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a completed session over items words.
func New(listTitle string, sum session.Summary, items int) *SummaryScreen {
	return &SummaryScreen{listTitle: listTitle, summary: sum, items: items}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), width, "Session complete!"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
		fmt.Sprintf("%s: all %d words mastered", s.listTitle, s.items)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Asked: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalAsked, sum.CorrectCount, sum.Accuracy*100)
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Text), width, stats))
	b.WriteString("\n\n")

	bar := components.ProgressBar{
		Label:       "Accuracy",
		Percent:     sum.Accuracy,
		ShowPercent: true,
		Width:       min(width-8, 50),
		Fill:        accuracyColor(sum.Accuracy),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(theme.Centered(theme.Hint, width, verdict(sum)))
	return b.String()
}

func accuracyColor(acc float64) color.Color {
	switch {
	case acc >= 0.8:
		return theme.Success
	case acc >= 0.5:
		return theme.Accent
	}
	return theme.Error
}

// verdict is a one-line remark on how the session went.
func verdict(sum session.Summary) string {
	switch {
	case sum.TotalAsked > 0 && sum.CorrectCount == sum.TotalAsked:
		return "Flawless. Every answer right the first time."
	case sum.Accuracy >= 0.8:
		return "Strong session."
	case sum.Accuracy >= 0.5:
		return "Getting there. Another round will make these stick."
	}
	return "Tough list. Try studying a smaller selection."
}
