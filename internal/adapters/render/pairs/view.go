package pairs

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pairup/internal/domain"
	"github.com/bnema/pairup/internal/pairing"
)

type RenderOptions struct {
	Title string
	Date  time.Time
}

func renderPlan(plan pairing.Plan, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = "Pair rotation"
	}

	header := fmt.Sprintf("pairs: %d  score: %d", len(plan.Pairs), plan.Score)
	if !opts.Date.IsZero() {
		header = "date: " + opts.Date.Format(time.DateOnly) + "  " + header
	}

	lines := []string{s.title.Render(title), s.header.Render(header)}

	if len(plan.Pairs) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("Not enough available members to form a pair.")))
	} else {
		pairLines := make([]string, 0, len(plan.Pairs))
		for i, pair := range plan.Pairs {
			pairLines = append(pairLines, pairLine(i, pair, repeatsAt(plan.Repeats, i), s))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, pairLines...)))
	}

	var extra []string
	if len(plan.Unpaired) > 0 {
		extra = append(extra, memberList("unpaired", plan.Unpaired, s))
	}
	if len(plan.Absent) > 0 {
		extra = append(extra, memberList("absent", plan.Absent, s))
	}
	if !plan.Exhaustive {
		extra = append(extra, s.warning.Render(fmt.Sprintf("[best effort: search stopped after %d expansions]", plan.Expansions)))
	}
	if len(extra) > 0 {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, extra...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func pairLine(i int, pair domain.Pair, repeats int, s styles) string {
	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.index.Render(fmt.Sprintf("%d.", i+1)),
		" ",
		s.name.Render(pair.First.DisplayName()),
		" & ",
		s.name.Render(pair.Second.DisplayName()),
	)
	if repeats > 0 {
		line += " " + s.repeat.Render(fmt.Sprintf("(paired %s before)", times(repeats)))
	}
	return line
}

func memberList(label string, members []domain.Member, s styles) string {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.DisplayName())
	}
	return s.label.Render(label+":") + " " + strings.Join(names, ", ")
}

func repeatsAt(repeats []int, i int) int {
	if i < len(repeats) {
		return repeats[i]
	}
	return 0
}

func times(n int) string {
	if n == 1 {
		return "once"
	}
	return fmt.Sprintf("%d times", n)
}
