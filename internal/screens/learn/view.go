package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/karandv/lingua/internal/content"
	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/quiz"
	"github.com/karandv/lingua/internal/ui/theme"
)

const chatLines = 8

func (s *LearnScreen) View(width, height int) string {
	cw := width - 8
	if cw > 64 {
		cw = 64
	}

	var body string
	switch s.phase {
	case phaseContext:
		body = s.viewContext(cw)
	case phaseScanning:
		body = s.viewWaiting("Scanning your surroundings...")
	case phaseThemes:
		body = s.viewThemes(cw)
	case phaseRoles:
		body = s.viewRoles()
	case phaseGenerating:
		body = s.viewWaiting("Building your lesson...")
	case phaseVocab:
		body = s.viewVocab(cw)
	case phaseQuiz:
		body = s.viewQuiz(cw)
	case phaseRecap:
		body = s.viewRecap()
	case phaseChat:
		body = s.viewChat(cw)
	}

	if s.notice != "" {
		banner := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(s.notice)
		body = banner + "\n\n" + body
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.NewStyle().Width(cw).Render(body))
}

func (s *LearnScreen) viewContext(cw int) string {
	lines := []string{
		theme.Title.Render("SCAN YOUR WORLD"),
		theme.Hint.Render("Describe where you are or what you see.\nWe'll turn it into a lesson."),
		"",
	}
	if s.errMsg != "" {
		lines = append(lines, theme.Incorrect.Render(s.errMsg), "")
	}
	lines = append(lines, s.contextInput.View())
	return strings.Join(lines, "\n")
}

func (s *LearnScreen) viewWaiting(message string) string {
	return theme.Hint.Render(message)
}

func (s *LearnScreen) viewThemes(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("PICK A THEME") + "\n")
	b.WriteString(theme.Hint.Render(s.scan.Description) + "\n\n")
	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n\n")
	}

	for i, t := range s.scan.Themes {
		title := "    " + t.Title
		if i == s.themeIdx {
			title = theme.Selected.Render("  ▸ " + t.Title)
		}
		b.WriteString(title + "\n")
		b.WriteString(theme.Hint.Render("      "+t.Tagline) + "\n")
	}
	return b.String()
}

func (s *LearnScreen) viewRoles() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("WHO ARE YOU HERE?") + "\n")
	b.WriteString(theme.Hint.Render(s.theme.Title) + "\n\n")

	for i, role := range s.theme.AvailableRoles {
		if i == s.roleIdx {
			b.WriteString(theme.Selected.Render("  ▸ "+role) + "\n")
		} else {
			b.WriteString("    " + role + "\n")
		}
	}
	return b.String()
}

func (s *LearnScreen) viewVocab(cw int) string {
	if len(s.vocab) == 0 {
		return theme.Hint.Render("No new words this time. Press any key for the quiz.")
	}
	item := s.vocab[s.vocabIdx]

	word := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(item.Word)
	if s.tracker.State().WordSaved(item.Word) {
		word += lipgloss.NewStyle().Foreground(theme.Accent).Render("  ♥ saved")
	}

	lines := []string{
		word,
		theme.Hint.Render(item.Pronunciation),
		"",
		item.Meaning,
		"",
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(item.Example),
		theme.Hint.Render(item.ExampleTranslation),
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 4).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	pos := theme.Hint.Render(fmt.Sprintf("Card %d of %d", s.vocabIdx+1, len(s.vocab)))
	return card + "\n\n" + pos
}

func (s *LearnScreen) viewQuiz(cw int) string {
	switch s.session.Phase() {
	case quiz.PhaseComplete:
		return s.viewQuizComplete()
	case quiz.PhaseEmpty:
		return theme.Hint.Render("No questions this time. Press Enter to continue.")
	}

	q := s.session.Current()
	position := theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.session.Position()+1, s.session.Total()))
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(q.Prompt)

	var body string
	switch q.Kind {
	case quiz.KindMultipleChoice:
		body = s.viewChoice(q)
	case quiz.KindScramble:
		body = s.viewScramble(q, cw)
	case quiz.KindMatching:
		body = s.viewMatching(cw)
	}

	sections := []string{position, prompt, body}
	if s.session.Phase() == quiz.PhaseExplaining {
		sections = append(sections, s.viewExplanation(q, cw))
	}
	return strings.Join(sections, "\n\n")
}

func (s *LearnScreen) viewChoice(q *quiz.Question) string {
	resolved := s.session.Phase() == quiz.PhaseExplaining
	var b strings.Builder
	for i, opt := range q.Options {
		switch {
		case resolved && opt == q.CorrectAnswer:
			b.WriteString(theme.Correct.Render("  ✓ "+opt) + "\n")
		case resolved:
			b.WriteString(theme.Hint.Render("    "+opt) + "\n")
		case i == s.optionCursor:
			b.WriteString(theme.Selected.Render("  ▸ "+opt) + "\n")
		default:
			b.WriteString("    " + opt + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *LearnScreen) viewScramble(q *quiz.Question, cw int) string {
	assembled := strings.Join(s.session.Assembled(), " ")
	if assembled == "" {
		assembled = theme.Hint.Render("(pick words below)")
	}
	slot := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Border).
		Width(cw - 4).
		Render(assembled)

	var bank strings.Builder
	for i, w := range q.ShuffledWords {
		label := fmt.Sprintf("[%d]%s", i+1, w)
		if s.session.BankUsed(i) {
			bank.WriteString(theme.Hint.Render(label) + "  ")
		} else {
			bank.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(label) + "  ")
		}
	}

	source := theme.Hint.Render(q.SourceSentence)
	return source + "\n\n" + slot + "\n\n" + strings.TrimRight(bank.String(), " ")
}

func (s *LearnScreen) viewMatching(cw int) string {
	cards := s.session.Cards()
	var b strings.Builder
	for i, c := range cards {
		label := fmt.Sprintf(" %d. %s ", c.ID+1, c.Text)
		switch {
		case c.Matched:
			b.WriteString(theme.Correct.Render(label))
		case c.ID == s.session.SelectedCard():
			b.WriteString(theme.Selected.Render(label))
		default:
			b.WriteString(label)
		}
		if i%2 == 1 {
			b.WriteString("\n")
		} else {
			b.WriteString("   ")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *LearnScreen) viewExplanation(q *quiz.Question, cw int) string {
	verdict := theme.Correct.Render("Correct!")
	if !s.session.LastCorrect() {
		verdict = theme.Incorrect.Render("Not quite.")
	}
	explanation := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 4).Render(q.Explanation)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(verdict + "\n" + explanation)
}

func (s *LearnScreen) viewQuizComplete() string {
	score := s.session.Score()
	total := s.session.Total()

	title := theme.Title.Render("QUIZ COMPLETE")
	result := fmt.Sprintf("You got %d of %d on the first try.", score, total)

	lines := []string{title, "", result, ""}
	if n := len(s.session.Mistakes()); n > 0 {
		lines = append(lines,
			theme.Hint.Render(fmt.Sprintf("%d to review. Press R to retry just those,", n)),
			theme.Hint.Render("F to restart, or Enter to continue."))
	} else {
		lines = append(lines,
			theme.Correct.Render("Perfect pass!"),
			theme.Hint.Render("Press Enter to continue."))
	}
	return strings.Join(lines, "\n")
}

func (s *LearnScreen) viewRecap() string {
	state := s.tracker.State()

	lines := []string{
		theme.Title.Render("THEME COMPLETE"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(s.theme.Title),
	}
	if s.themeBonus {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("+%d XP theme bonus!", progress.ThemeBonusXP)))
	}
	lines = append(lines, "",
		theme.Hint.Render(fmt.Sprintf("✦ %d XP total    ★ %d day streak", state.XP, state.StreakDays)),
		"")

	options := []string{"PRACTICE CONVERSATION", "FINISH"}
	for i, opt := range options {
		if i == s.recapCursor {
			lines = append(lines, theme.Selected.Render("  ▸ "+opt))
		} else {
			lines = append(lines, "    "+opt)
		}
	}
	return strings.Join(lines, "\n")
}

func (s *LearnScreen) viewChat(cw int) string {
	start := 0
	if len(s.chatHistory) > chatLines {
		start = len(s.chatHistory) - chatLines
	}

	var b strings.Builder
	for _, m := range s.chatHistory[start:] {
		text := lipgloss.NewStyle().Width(cw - 10).Render(m.Text)
		if m.Role == content.ChatRoleUser {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("you: ") + text + "\n")
		} else {
			name := strings.ToLower(s.aiRole)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(name+": ") + text + "\n")
		}
	}

	transcript := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))

	sections := []string{transcript}

	if fb := s.feedback; fb != nil && fb.HasError {
		coach := theme.Incorrect.Render("✎ "+fb.CorrectedText) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-6).Render(fb.Explanation)
		sections = append(sections, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Width(cw-2).
			Padding(0, 1).
			Render(coach))
	}

	if s.awaitingChat {
		sections = append(sections, theme.Hint.Render(strings.ToLower(s.aiRole)+" is typing..."))
	} else {
		sections = append(sections, s.chatInput.View())
	}
	return strings.Join(sections, "\n\n")
}
