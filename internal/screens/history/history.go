package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karandv/lingua/internal/content"
	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/quiz"
	"github.com/karandv/lingua/internal/router"
	"github.com/karandv/lingua/internal/screen"
	"github.com/karandv/lingua/internal/store"
	"github.com/karandv/lingua/internal/ui/layout"
	"github.com/karandv/lingua/internal/ui/theme"
)

type tab int

const (
	tabLessons tab = iota
	tabChats
)

// HistoryScreen lists past lessons and saved conversations.
type HistoryScreen struct {
	historyRepo store.HistoryRepo
	chatRepo    store.ChatRepo

	loaded bool
	items  []*store.HistoryItem
	chats  []*store.ChatSession

	tab      tab
	cursor   int
	detail   bool
	loadFail bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// loadedMsg carries the stored history read off the update loop.
type loadedMsg struct {
	items []*store.HistoryItem
	chats []*store.ChatSession
	err   error
}

// New creates the history screen. Data loads on Init.
func New(historyRepo store.HistoryRepo, chatRepo store.ChatRepo) *HistoryScreen {
	return &HistoryScreen{
		historyRepo: historyRepo,
		chatRepo:    chatRepo,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	historyRepo := s.historyRepo
	chatRepo := s.chatRepo
	return func() tea.Msg {
		ctx := context.Background()
		items, err := historyRepo.Recent(ctx, 0)
		if err != nil {
			return loadedMsg{err: err}
		}
		chats, err := chatRepo.All(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{items: items, chats: chats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.detail {
		return []layout.KeyHint{{Key: "Esc", Description: "Back to list"}}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch list"},
		{Key: "Enter", Description: "Open"},
	}
	if s.tab == tabLessons {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Delete"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.err != nil {
			s.loadFail = true
			return s, nil
		}
		s.items = msg.items
		s.chats = msg.chats
		if s.cursor >= s.listLen() {
			s.cursor = s.listLen() - 1
		}
		if s.cursor < 0 {
			s.cursor = 0
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *HistoryScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if s.detail {
		if key == "esc" {
			s.detail = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab":
		if s.tab == tabLessons {
			s.tab = tabChats
		} else {
			s.tab = tabLessons
		}
		s.cursor = 0
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.listLen()-1 {
			s.cursor++
		}
	case "enter":
		if s.listLen() > 0 {
			s.detail = true
		}
	case "d":
		if s.tab == tabLessons && s.cursor < len(s.items) {
			return s, s.deleteCmd(s.items[s.cursor].ID)
		}
	}
	return s, nil
}

func (s *HistoryScreen) listLen() int {
	if s.tab == tabLessons {
		return len(s.items)
	}
	return len(s.chats)
}

// deleteCmd removes the item and reloads the list.
func (s *HistoryScreen) deleteCmd(id string) tea.Cmd {
	historyRepo := s.historyRepo
	reload := s.Init()
	return func() tea.Msg {
		_ = historyRepo.Delete(context.Background(), id)
		return reload()
	}
}

func (s *HistoryScreen) View(width, height int) string {
	cw := width - 8
	if cw > 64 {
		cw = 64
	}

	var body string
	switch {
	case !s.loaded:
		body = theme.Hint.Render("Loading...")
	case s.loadFail:
		body = theme.Incorrect.Render("Couldn't read your history.")
	case s.detail:
		body = s.viewDetail(cw)
	default:
		body = s.viewList(cw)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.NewStyle().Width(cw).Render(body))
}

func (s *HistoryScreen) viewList(cw int) string {
	var b strings.Builder
	b.WriteString(s.renderTabs() + "\n\n")

	if s.tab == tabLessons {
		if len(s.items) == 0 {
			b.WriteString(theme.Hint.Render("No lessons yet. Scan something to start!"))
			return b.String()
		}
		for i, item := range s.items {
			line := fmt.Sprintf("%s  %s", item.Timestamp.Format("Jan 2"), item.Theme)
			if i == s.cursor {
				b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
			} else {
				b.WriteString("    " + line + "\n")
			}
			b.WriteString(theme.Hint.Render("      "+truncate(item.ContextDescription, cw-8)) + "\n")
		}
		return b.String()
	}

	if len(s.chats) == 0 {
		b.WriteString(theme.Hint.Render("No conversations saved yet."))
		return b.String()
	}
	for i, c := range s.chats {
		line := fmt.Sprintf("%s  %s as %s", c.Timestamp.Format("Jan 2"), c.Theme, c.UserRole)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}
	return b.String()
}

func (s *HistoryScreen) renderTabs() string {
	lessons := fmt.Sprintf(" Lessons (%d) ", len(s.items))
	chats := fmt.Sprintf(" Chats (%d) ", len(s.chats))

	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
	inactive := theme.Hint

	if s.tab == tabLessons {
		return active.Render(lessons) + inactive.Render(chats)
	}
	return inactive.Render(lessons) + active.Render(chats)
}

func (s *HistoryScreen) viewDetail(cw int) string {
	if s.tab == tabLessons {
		return s.viewLessonDetail(cw)
	}
	return s.viewChatDetail(cw)
}

// lessonPayload mirrors the content JSON the learn flow writes.
type lessonPayload struct {
	Vocabulary []progress.VocabularyItem `json:"vocabulary"`
	Quizzes    []quiz.Question           `json:"quizzes"`
}

func (s *HistoryScreen) viewLessonDetail(cw int) string {
	item := s.items[s.cursor]

	var b strings.Builder
	b.WriteString(theme.Title.Render(item.Theme) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %s · %s",
		item.Timestamp.Format("Jan 2, 2006"), item.Language, item.Difficulty)) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).
		Render(item.ContextDescription) + "\n\n")

	var payload lessonPayload
	if err := json.Unmarshal(item.Content, &payload); err != nil || len(payload.Vocabulary) == 0 {
		b.WriteString(theme.Hint.Render("(no vocabulary recorded)"))
		return b.String()
	}

	for _, v := range payload.Vocabulary {
		word := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(v.Word)
		b.WriteString(word + "  " + theme.Hint.Render(truncate(v.Meaning, cw-20)) + "\n")
	}
	if len(payload.Quizzes) > 0 {
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("%d quiz questions", len(payload.Quizzes))))
	}
	return b.String()
}

func (s *HistoryScreen) viewChatDetail(cw int) string {
	c := s.chats[s.cursor]

	var b strings.Builder
	b.WriteString(theme.Title.Render(c.Theme) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("You as %s · Partner as %s", c.UserRole, c.PartnerRole)) + "\n\n")

	var messages []content.ChatMessage
	if err := json.Unmarshal(c.Messages, &messages); err != nil || len(messages) == 0 {
		b.WriteString(theme.Hint.Render("(empty conversation)"))
		return b.String()
	}

	for _, m := range messages {
		text := lipgloss.NewStyle().Width(cw - 10).Render(m.Text)
		if m.Role == content.ChatRoleUser {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("you: ") + text + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("them: ") + text + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
