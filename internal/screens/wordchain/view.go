package wordchain

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/karandv/lingua/internal/ui/components"
	"github.com/karandv/lingua/internal/ui/theme"
	chain "github.com/karandv/lingua/internal/wordchain"
)

const historyLines = 6

func (s *GameScreen) View(width, height int) string {
	if s.round.Over {
		return s.renderGameOver(width, height)
	}
	return s.renderPlaying(width, height)
}

func (s *GameScreen) renderPlaying(width, height int) string {
	cw := width - 8
	if cw > 64 {
		cw = 64
	}

	var sections []string

	sections = append(sections, renderTurns(s.round.Turns, cw))

	bar := components.NewProgressBar("", float64(s.round.SecondsLeft)/chain.TurnSeconds, false, cw-12)
	timer := fmt.Sprintf("%s  %2ds", bar.View(), s.round.SecondsLeft)
	sections = append(sections, timer)

	prompt := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Your word must start with '%s'", s.round.RequiredLetter()))
	sections = append(sections, prompt)

	if s.round.Suspended {
		sections = append(sections, theme.Hint.Render("Checking your word..."))
	} else {
		sections = append(sections, s.input.View())
	}

	score := theme.Hint.Render(fmt.Sprintf("Score %d   +%d XP this round", s.round.Score, s.xpEarned))
	sections = append(sections, score)

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.NewStyle().Width(cw).Render(content))
}

func renderTurns(turns []chain.Turn, cw int) string {
	start := 0
	if len(turns) > historyLines {
		start = len(turns) - historyLines
	}

	var b strings.Builder
	for _, t := range turns[start:] {
		if t.Player == chain.PlayerOpponent {
			line := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(t.Word)
			if t.Definition != "" {
				line += "\n" + theme.Hint.Render("  "+t.Definition)
			}
			b.WriteString(line)
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("you: " + t.Word))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (s *GameScreen) renderGameOver(width, height int) string {
	title := "GAME OVER"
	titleStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	if s.round.Won {
		title = "YOU WIN!"
		titleStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	}

	lines := []string{
		titleStyle.Render(title),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(s.round.Reason),
		"",
		theme.Hint.Render(fmt.Sprintf("Words chained: %d    XP earned: %d", s.round.Score, s.xpEarned)),
		"",
		components.NewButton("PLAY AGAIN", true, nil).View(),
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
